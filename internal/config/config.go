// Package config provides configuration for square parsing.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/packed-board-go/internal/errors"
)

// ValidationMode selects the bounds rules applied to coordinates and
// algebraic squares.
type ValidationMode int

const (
	// Strict accepts exactly the 64 on-board squares.
	Strict ValidationMode = iota
	// Legacy reproduces the historical acceptance rules: coordinates pass
	// when either component is in range, and algebraic ranks 1-8 are
	// rejected while out-of-range ranks wrap. Results may be off-board.
	Legacy
)

// String returns the string representation of a validation mode.
func (m ValidationMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Legacy:
		return "legacy"
	}
	return fmt.Sprintf("ValidationMode(%d)", int(m))
}

// Config holds parser configuration.
type Config struct {
	Validation ValidationMode

	// Accept A-H as well as a-h.
	CaseInsensitiveFiles bool

	Verbosity int // 0=nothing, 1=warnings, 2=every rejected input

	// Diagnostic output
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Validation:           Strict,
		CaseInsensitiveFiles: true,
		Verbosity:            1,
		LogFile:              os.Stderr,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Validation != Strict && c.Validation != Legacy {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown validation mode %v", c.Validation)
	}
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "negative verbosity (%d)", c.Verbosity)
	}
	if c.Verbosity > 0 && c.LogFile == nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d requires a log writer", c.Verbosity)
	}
	return nil
}
