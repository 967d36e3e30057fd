package chess

import "strings"

// Board is a fixed grid of 8 files by 4 DoublePiece cells: 64 squares in
// 32 bytes. Cell [x][y>>1] holds rank y in its top half when y is even and
// in its bottom half when y is odd.
//
// Board is a value type; copies are independent and == compares contents.
type Board struct {
	cells [BoardSize][HalfRows]DoublePiece
}

var backRank = [BoardSize]Chessman{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position. White occupies ranks 1
// and 2, Black ranks 7 and 8.
func NewBoard() Board {
	var b Board
	for x, c := range backRank {
		b.cells[x][0] = NewDoublePiece(
			Some(NewPiece(White, c)),
			Some(NewPiece(White, Pawn)),
		)
		b.cells[x][HalfRows-1] = NewDoublePiece(
			Some(NewPiece(Black, Pawn)),
			Some(NewPiece(Black, c)),
		)
	}
	return b
}

// NewEmptyBoard returns a board with every square empty.
func NewEmptyBoard() Board {
	return Board{}
}

// At returns the piece on pos, if any. pos must be valid; an off-board
// position panics.
func (b Board) At(pos Pos) (Piece, bool) {
	if debugAssertions {
		assertf(pos.IsValid(), "chess: position out of range: %#x", uint8(pos))
	}
	x := uint8(pos) >> 4
	y := uint8(pos) & 0xf
	shift := ^y & 1
	return b.cells[x][y>>1].Access(shift)
}

// Square returns the contents of pos as a Square.
func (b Board) Square(pos Pos) Square {
	p, ok := b.At(pos)
	if !ok {
		return None
	}
	return Some(p)
}

// String draws the board from rank 8 down to rank 1, one rank per line.
// Empty squares are shown as '.'.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((BoardSize*2 + 2) * (BoardSize + 1))
	for y := BoardSize - 1; y >= 0; y-- {
		sb.WriteByte(byte(RankBase + y))
		for x := 0; x < BoardSize; x++ {
			sb.WriteByte(' ')
			if p, ok := b.At(PosFromRawCoords(uint8(x), uint8(y))); ok {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
