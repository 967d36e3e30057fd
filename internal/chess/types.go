// Package chess provides a compact, value-typed chess board representation.
//
// A piece is one non-zero byte, two optional pieces share one byte, and a
// board square address is one byte. A full board occupies 32 bytes.
package chess

// Player identifies the owner of a piece.
type Player uint8

const (
	White Player = iota
	Black
)

// AllPlayers lists every player in tag order.
var AllPlayers = [...]Player{White, Black}

// String returns the string representation of a player.
func (p Player) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "Unknown"
}

// Opposite returns the other player.
func (p Player) Opposite() Player {
	if p == White {
		return Black
	}
	return White
}

// IsValid reports whether p is one of the defined players.
func (p Player) IsValid() bool {
	return p <= Black
}

// Chessman is the kind of a piece, independent of its owner.
// The zero value is reserved so that no valid piece encodes to zero.
type Chessman uint8

const (
	NoChessman Chessman = iota
	Pawn
	Bishop
	Knight
	Rook
	King
	Queen
)

// AllChessmen lists every real chessman in tag order.
var AllChessmen = [...]Chessman{Pawn, Bishop, Knight, Rook, King, Queen}

// String returns the string representation of a chessman.
func (c Chessman) String() string {
	names := []string{"None", "Pawn", "Bishop", "Knight", "Rook", "King", "Queen"}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Letter returns the single upper-case letter for a chessman.
func (c Chessman) Letter() byte {
	letters := []byte{'?', 'P', 'B', 'N', 'R', 'K', 'Q'}
	if int(c) < len(letters) {
		return letters[c]
	}
	return '?'
}

// IsValid reports whether c is a real chessman.
func (c Chessman) IsValid() bool {
	return c >= Pawn && c <= Queen
}

// Board dimensions.
const (
	BoardSize = 8
	// HalfRows is the number of DoublePiece cells per file.
	HalfRows = BoardSize / 2

	FileBase = 'a'
	RankBase = '1'
)
