package config

import (
	"fmt"

	"github.com/lgbarn/chesspuzzle-go/internal/errors"
)

// ScoringConfig holds the constants of the solve score formula:
//
//	max(0, Base - (difficulty-1)*DifficultyStep
//	          - (elapsed seconds - FreeSeconds)
//	          - extra moves*ExtraMovePenalty)
//
// Each penalty term is floored at zero.
type ScoringConfig struct {
	// Base is the score of a perfect solve.
	Base int

	// DifficultyStep is deducted per difficulty level above 1.
	DifficultyStep int

	// FreeSeconds is the grace period before time is deducted.
	FreeSeconds int

	// ExtraMovePenalty is deducted per submitted ply beyond the solution length.
	ExtraMovePenalty int
}

// NewScoringConfig creates a ScoringConfig with default values.
func NewScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		Base:             100,
		DifficultyStep:   15,
		FreeSeconds:      10,
		ExtraMovePenalty: 5,
	}
}

// Validate checks that no scoring constant is negative.
func (s *ScoringConfig) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"base score", s.Base},
		{"difficulty step", s.DifficultyStep},
		{"free seconds", s.FreeSeconds},
		{"extra move penalty", s.ExtraMovePenalty},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s (%d) must not be negative: %w", f.name, f.value, errors.ErrInvalidConfig)
		}
	}
	return nil
}
