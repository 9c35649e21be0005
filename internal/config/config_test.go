package config

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chesspuzzle-go/internal/errors"
)

// TestVerifyConfig_Defaults verifies VerifyConfig has sensible defaults
func TestVerifyConfig_Defaults(t *testing.T) {
	cfg := NewVerifyConfig()

	if cfg.MinMoves != 2 {
		t.Errorf("MinMoves = %d, want 2", cfg.MinMoves)
	}
	if cfg.MaxMoves != 6 {
		t.Errorf("MaxMoves = %d, want 6", cfg.MaxMoves)
	}
}

// TestScoringConfig_Defaults verifies ScoringConfig has sensible defaults
func TestScoringConfig_Defaults(t *testing.T) {
	cfg := NewScoringConfig()

	if cfg.Base != 100 {
		t.Errorf("Base = %d, want 100", cfg.Base)
	}
	if cfg.DifficultyStep != 15 {
		t.Errorf("DifficultyStep = %d, want 15", cfg.DifficultyStep)
	}
	if cfg.FreeSeconds != 10 {
		t.Errorf("FreeSeconds = %d, want 10", cfg.FreeSeconds)
	}
	if cfg.ExtraMovePenalty != 5 {
		t.Errorf("ExtraMovePenalty = %d, want 5", cfg.ExtraMovePenalty)
	}
}

// TestBatchConfig_Defaults verifies BatchConfig has sensible defaults
func TestBatchConfig_Defaults(t *testing.T) {
	cfg := NewBatchConfig()

	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if cfg.BufferSize != cfg.Workers*2 {
		t.Errorf("BufferSize = %d, want %d", cfg.BufferSize, cfg.Workers*2)
	}
	if !cfg.FlagDuplicates {
		t.Error("FlagDuplicates should be true by default")
	}
}

// TestStoreConfig_Defaults verifies the store defaults to memory
func TestStoreConfig_Defaults(t *testing.T) {
	cfg := NewStoreConfig()

	if !cfg.InMemory() {
		t.Error("InMemory() should be true by default")
	}
	cfg.Dir = "/tmp/puzzles"
	if cfg.InMemory() {
		t.Error("InMemory() should be false once Dir is set")
	}
}

// TestNewConfig verifies the composed Config is fully populated and valid
func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verify == nil || cfg.Scoring == nil || cfg.Batch == nil ||
		cfg.Store == nil || cfg.Log == nil || cfg.Output == nil {
		t.Fatal("NewConfig left a section nil")
	}
	if cfg.Output.Writer == nil {
		t.Error("Output.Writer should default to stdout")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"single move puzzles", func(c *Config) { c.Verify.MinMoves, c.Verify.MaxMoves = 1, 1 }, false},
		{"zero minimum", func(c *Config) { c.Verify.MinMoves = 0 }, true},
		{"inverted bounds", func(c *Config) { c.Verify.MinMoves, c.Verify.MaxMoves = 5, 3 }, true},
		{"negative base", func(c *Config) { c.Scoring.Base = -1 }, true},
		{"negative free seconds", func(c *Config) { c.Scoring.FreeSeconds = -10 }, true},
		{"zero penalties", func(c *Config) { c.Scoring.DifficultyStep, c.Scoring.ExtraMovePenalty = 0, 0 }, false},
		{"no workers", func(c *Config) { c.Batch.Workers = 0 }, true},
		{"negative buffer", func(c *Config) { c.Batch.BufferSize = -1 }, true},
		{"unbuffered", func(c *Config) { c.Batch.BufferSize = 0 }, false},
		{"debug logging", func(c *Config) { c.Log.Level = "debug" }, false},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfigBuilder verifies the fluent builder sets every field it names
func TestConfigBuilder(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().
		WithMoveBounds(3, 5).
		WithFreeSeconds(30).
		WithWorkers(4).
		WithDuplicateFlagging(false).
		WithStoreDir("/var/lib/puzzles").
		WithLogLevel("warn").
		WithOutput(&buf).
		Build()

	if cfg.Verify.MinMoves != 3 || cfg.Verify.MaxMoves != 5 {
		t.Errorf("move bounds = [%d, %d], want [3, 5]", cfg.Verify.MinMoves, cfg.Verify.MaxMoves)
	}
	if cfg.Scoring.FreeSeconds != 30 {
		t.Errorf("FreeSeconds = %d, want 30", cfg.Scoring.FreeSeconds)
	}
	if cfg.Scoring.Base != 100 {
		t.Errorf("Base = %d, want untouched default 100", cfg.Scoring.Base)
	}
	if cfg.Batch.Workers != 4 || cfg.Batch.BufferSize != 8 {
		t.Errorf("workers/buffer = %d/%d, want 4/8", cfg.Batch.Workers, cfg.Batch.BufferSize)
	}
	if cfg.Batch.FlagDuplicates {
		t.Error("FlagDuplicates should be false")
	}
	if cfg.Store.Dir != "/var/lib/puzzles" {
		t.Errorf("Store.Dir = %q", cfg.Store.Dir)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Output.Writer != &buf {
		t.Error("Output.Writer not set")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestConfigBuilder_WithScoring(t *testing.T) {
	cfg := NewConfigBuilder().
		WithScoring(ScoringConfig{Base: 50, DifficultyStep: 10, FreeSeconds: 0, ExtraMovePenalty: 1}).
		Build()

	want := ScoringConfig{Base: 50, DifficultyStep: 10, FreeSeconds: 0, ExtraMovePenalty: 1}
	if *cfg.Scoring != want {
		t.Errorf("Scoring = %+v, want %+v", *cfg.Scoring, want)
	}
}
