package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chesspuzzle-go/internal/errors"
)

// BatchConfig holds settings for verifying many candidates at once.
type BatchConfig struct {
	// Workers is the number of verification goroutines.
	Workers int

	// BufferSize is the capacity of the work and result channels.
	BufferSize int

	// FlagDuplicates marks candidates whose final position was already
	// produced by an earlier candidate in the same batch.
	FlagDuplicates bool
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	workers := runtime.NumCPU()
	return &BatchConfig{
		Workers:        workers,
		BufferSize:     workers * 2,
		FlagDuplicates: true,
	}
}

// Validate checks the worker settings.
func (b *BatchConfig) Validate() error {
	if b.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 0 {
		return fmt.Errorf("buffer size (%d) must not be negative: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
