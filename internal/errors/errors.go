// Package errors provides sentinel errors and error types for square parsing.
// It defines common error conditions and a structured error type that
// preserves context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates input that is not a two-character square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFile indicates a file letter outside a-h.
	ErrInvalidFile = errors.New("invalid file")

	// ErrInvalidRank indicates a rank outside 1-8.
	ErrInvalidRank = errors.New("invalid rank")

	// ErrOutOfRange indicates board coordinates outside [0,8).
	ErrOutOfRange = errors.New("coordinates out of range")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError describes a rejected square or coordinate input.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text that was parsed
	Column   int    // 1-based position of the offending character (0 if not applicable)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var b strings.Builder
	sep := func() {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
	}

	if e.Input != "" {
		fmt.Fprintf(&b, "%q", e.Input)
		if e.Column > 0 {
			fmt.Fprintf(&b, " at column %d", e.Column)
		}
	}

	switch {
	case e.Expected != "":
		sep()
		b.WriteString("expected " + e.Expected)
		if e.Got != "" {
			b.WriteString(", got " + e.Got)
		}
	case e.Got != "":
		sep()
		b.WriteString("unexpected " + e.Got)
	}

	if e.Err != nil {
		sep()
		b.WriteString(e.Err.Error())
	}

	if b.Len() == 0 {
		return "parse error"
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrapf prefixes err with formatted context. The result still matches err
// under errors.Is and errors.As. A nil err stays nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Wrap is Wrapf with a fixed context string.
func Wrap(err error, context string) error {
	return Wrapf(err, "%s", context)
}
