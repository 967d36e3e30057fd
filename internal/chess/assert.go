//go:build !chessdebug

package chess

const debugAssertions = false
