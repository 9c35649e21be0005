package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMoveBounds sets the accepted solution length range.
func (b *ConfigBuilder) WithMoveBounds(lower, upper int) *ConfigBuilder {
	b.cfg.Verify.MinMoves = lower
	b.cfg.Verify.MaxMoves = upper
	return b
}

// WithFreeSeconds sets the scoring grace period.
func (b *ConfigBuilder) WithFreeSeconds(seconds int) *ConfigBuilder {
	b.cfg.Scoring.FreeSeconds = seconds
	return b
}

// WithScoring replaces all scoring constants.
func (b *ConfigBuilder) WithScoring(s ScoringConfig) *ConfigBuilder {
	*b.cfg.Scoring = s
	return b
}

// WithWorkers sets the batch worker count and sizes the buffers to match.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	b.cfg.Batch.BufferSize = n * 2
	return b
}

// WithDuplicateFlagging enables duplicate final position flagging.
func (b *ConfigBuilder) WithDuplicateFlagging(enabled bool) *ConfigBuilder {
	b.cfg.Batch.FlagDuplicates = enabled
	return b
}

// WithStoreDir selects the file store rooted at dir.
func (b *ConfigBuilder) WithStoreDir(dir string) *ConfigBuilder {
	b.cfg.Store.Dir = dir
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithOutput sets the report writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}
