package testutil

import (
	"testing"

	"github.com/lgbarn/packed-board-go/internal/chess"
)

// MustParsePos parses an algebraic square name and calls t.Fatal if it is
// not a valid square.
func MustParsePos(t *testing.T, s string) chess.Pos {
	t.Helper()
	p, ok := chess.ParsePos(s)
	if !ok {
		t.Fatalf("invalid square %q", s)
	}
	return p
}

// AllPositions returns every on-board position, a1 first and h8 last,
// file-major within each rank.
func AllPositions() []chess.Pos {
	out := make([]chess.Pos, 0, chess.BoardSize*chess.BoardSize)
	for y := uint8(0); y < chess.BoardSize; y++ {
		for x := uint8(0); x < chess.BoardSize; x++ {
			out = append(out, chess.PosFromRawCoords(x, y))
		}
	}
	return out
}

// Occupants maps the name of every occupied square to its piece
// description. The result diffs readably with AssertEqual.
func Occupants(b chess.Board) map[string]string {
	m := make(map[string]string)
	for _, p := range AllPositions() {
		if piece, ok := b.At(p); ok {
			m[p.String()] = piece.String()
		}
	}
	return m
}
