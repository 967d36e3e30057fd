//go:build chessdebug

package chess

// Building with -tags chessdebug turns on invariant checks in the encoders.
const debugAssertions = true
