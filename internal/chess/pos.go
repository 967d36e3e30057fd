package chess

import "unicode/utf8"

// Pos addresses one board square as x<<4 | y, where x is the file (0 = a)
// and y the rank (0 = rank 1).
type Pos uint8

const coordMask = 0b111

// PosFromCoords returns the Pos for (x, y), or false if either coordinate
// is off the board.
func PosFromCoords(x, y uint8) (Pos, bool) {
	if x < BoardSize && y < BoardSize {
		return Pos(x<<4 | y), true
	}
	return 0, false
}

// PosFromRawCoords builds a Pos without validation. Each coordinate is
// masked to three bits, so out-of-range input wraps silently. Callers must
// guarantee x < 8 and y < 8.
func PosFromRawCoords(x, y uint8) Pos {
	if debugAssertions {
		assertf(x < BoardSize, "chess: x out of range: %d", x)
		assertf(y < BoardSize, "chess: y out of range: %d", y)
	}
	return Pos((x&coordMask)<<4 | y&coordMask)
}

// PosFromAlgebraic converts a file letter (a-h, either case) and a rank
// number (1-8) to a Pos.
func PosFromAlgebraic(file rune, rank uint8) (Pos, bool) {
	if rank == 0 || rank > BoardSize {
		return 0, false
	}
	x, ok := FileIndex(file)
	if !ok {
		return 0, false
	}
	return PosFromCoords(x, rank-1)
}

// ParsePos parses a two-character square name such as "e4".
func ParsePos(s string) (Pos, bool) {
	file, rank, ok := SplitSquare(s)
	if !ok {
		return 0, false
	}
	return PosFromAlgebraic(file, rank)
}

// SplitSquare splits s into its file rune and decimal rank digit. It fails
// unless s is exactly two runes and the second is 0-9.
func SplitSquare(s string) (file rune, rank uint8, ok bool) {
	file, size := utf8.DecodeRuneInString(s)
	if size == 0 || file == utf8.RuneError {
		return 0, 0, false
	}
	rest := s[size:]
	if len(rest) != 1 || rest[0] < '0' || rest[0] > '9' {
		return 0, 0, false
	}
	return file, rest[0] - '0', true
}

// FileIndex maps a file letter in a-h or A-H to 0-7.
func FileIndex(file rune) (uint8, bool) {
	switch {
	case file >= 'a' && file <= 'h':
		return uint8(file - 'a'), true
	case file >= 'A' && file <= 'H':
		return uint8(file - 'A'), true
	}
	return 0, false
}

// X returns the file index.
func (p Pos) X() uint8 {
	return uint8(p) >> 4
}

// Y returns the rank index.
func (p Pos) Y() uint8 {
	return uint8(p) & 0xf
}

// Coords returns (x, y).
func (p Pos) Coords() (uint8, uint8) {
	return p.X(), p.Y()
}

// IsValid reports whether both coordinates are on the board.
func (p Pos) IsValid() bool {
	return p.X() < BoardSize && p.Y() < BoardSize
}

// File returns the file letter 'a'-'h'.
func (p Pos) File() byte {
	return FileBase + p.X()
}

// Rank returns the rank digit '1'-'8'.
func (p Pos) Rank() byte {
	return RankBase + p.Y()
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Pos) String() string {
	if !p.IsValid() {
		return "??"
	}
	return string([]byte{p.File(), p.Rank()})
}
