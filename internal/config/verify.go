package config

import (
	"fmt"

	"github.com/lgbarn/chesspuzzle-go/internal/errors"
)

// Default bounds on the number of plies in a puzzle solution.
const (
	DefaultMinMoves = 2
	DefaultMaxMoves = 6
)

// VerifyConfig holds settings for puzzle verification.
type VerifyConfig struct {
	// MinMoves is the smallest accepted number of plies (inclusive).
	MinMoves int

	// MaxMoves is the largest accepted number of plies (inclusive).
	MaxMoves int
}

// NewVerifyConfig creates a VerifyConfig with default values.
func NewVerifyConfig() *VerifyConfig {
	return &VerifyConfig{
		MinMoves: DefaultMinMoves,
		MaxMoves: DefaultMaxMoves,
	}
}

// Validate checks that the move bounds are usable.
func (v *VerifyConfig) Validate() error {
	if v.MinMoves < 1 {
		return fmt.Errorf("minimum moves (%d) must be at least 1: %w", v.MinMoves, errors.ErrInvalidConfig)
	}
	if v.MinMoves > v.MaxMoves {
		return fmt.Errorf("minimum moves (%d) > maximum moves (%d): %w",
			v.MinMoves, v.MaxMoves, errors.ErrInvalidConfig)
	}
	return nil
}
