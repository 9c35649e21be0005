// Package config provides configuration for puzzle verification, scoring,
// batch processing, storage and logging.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verify  *VerifyConfig
	Scoring *ScoringConfig
	Batch   *BatchConfig
	Store   *StoreConfig
	Log     *LogConfig
	Output  *OutputConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verify:  NewVerifyConfig(),
		Scoring: NewScoringConfig(),
		Batch:   NewBatchConfig(),
		Store:   NewStoreConfig(),
		Log:     NewLogConfig(),
		Output:  NewOutputConfig(),
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	validators := []interface{ Validate() error }{
		c.Verify, c.Scoring, c.Batch, c.Log,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// OutputConfig holds settings for report output.
type OutputConfig struct {
	// Writer receives reports. Defaults to standard output.
	Writer io.Writer

	// Indent is the JSON indentation; empty means compact output.
	Indent string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Writer: os.Stdout,
		Indent: "  ",
	}
}
