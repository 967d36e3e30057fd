package chess

import "fmt"

// Piece is a (Player, Chessman) pair packed into one byte.
//
// Bits 0-2 hold the chessman tag and bit 3 holds the player tag. The upper
// four bits are unused. Because every chessman tag is at least 1, a Piece
// built by NewPiece is never zero.
type Piece uint8

// PlayerShift is the bit offset of the player tag within a Piece.
const PlayerShift = 3

const chessmanMask = 0b111

// NewPiece packs player and chessman into a Piece.
func NewPiece(player Player, chessman Chessman) Piece {
	if debugAssertions {
		assertf(player.IsValid(), "chess: invalid player tag %d", player)
		assertf(chessman.IsValid(), "chess: invalid chessman tag %d", chessman)
	}
	return Piece(uint8(player)<<PlayerShift | uint8(chessman))
}

// Player returns the owner of the piece.
func (p Piece) Player() Player {
	return Player(p >> PlayerShift)
}

// Chessman returns the kind of the piece.
func (p Piece) Chessman() Chessman {
	return Chessman(p & chessmanMask)
}

// Info returns both the player and the chessman of p.
func (p Piece) Info() (Player, Chessman) {
	v := uint8(p)
	return Player(v >> PlayerShift), Chessman(v & chessmanMask)
}

// IsValid reports whether p could have been produced by NewPiece.
func (p Piece) IsValid() bool {
	player, chessman := p.Info()
	return player.IsValid() && chessman.IsValid()
}

// String returns a description such as "Black Rook".
func (p Piece) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Piece(%#x)", uint8(p))
	}
	player, chessman := p.Info()
	return player.String() + " " + chessman.String()
}

// Letter returns the chessman letter, upper-case for White and lower-case
// for Black.
func (p Piece) Letter() byte {
	player, chessman := p.Info()
	l := chessman.Letter()
	if player == Black && l != '?' {
		l += 'a' - 'A'
	}
	return l
}

func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
