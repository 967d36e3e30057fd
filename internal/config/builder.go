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

// WithValidation sets the coordinate validation mode.
func (b *ConfigBuilder) WithValidation(mode ValidationMode) *ConfigBuilder {
	b.cfg.Validation = mode
	return b
}

// WithCaseInsensitiveFiles controls whether upper-case file letters are accepted.
func (b *ConfigBuilder) WithCaseInsensitiveFiles(enabled bool) *ConfigBuilder {
	b.cfg.CaseInsensitiveFiles = enabled
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFile sets the diagnostic writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
