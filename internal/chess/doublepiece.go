package chess

// Square is an optional Piece: the contents of one board square.
type Square struct {
	Piece    Piece
	Occupied bool
}

// None is the empty Square.
var None = Square{}

// Some returns a Square holding p.
func Some(p Piece) Square {
	return Square{Piece: p, Occupied: true}
}

// Get returns the piece and whether the square is occupied.
func (s Square) Get() (Piece, bool) {
	return s.Piece, s.Occupied
}

// String returns the piece description, or "empty".
func (s Square) String() string {
	if !s.Occupied {
		return "empty"
	}
	return s.Piece.String()
}

// nibble returns the 4-bit storage form of s; 0 means empty.
func (s Square) nibble() uint8 {
	if !s.Occupied {
		return 0
	}
	if debugAssertions {
		assertf(s.Piece.IsValid(), "chess: storing invalid piece %#x", uint8(s.Piece))
	}
	return uint8(s.Piece) & nibbleMask
}

// DoublePiece stores two optional pieces in one byte. The high nibble is the
// top half and the low nibble the bottom half; a zero nibble is empty.
type DoublePiece uint8

// EmptyDoublePiece has both halves empty.
const EmptyDoublePiece DoublePiece = 0

// Shift selectors for DoublePiece.Access.
const (
	BottomShift uint8 = 0
	TopShift    uint8 = 1
)

const nibbleMask = 0xf

// NewDoublePiece packs top and bottom into one byte.
func NewDoublePiece(top, bottom Square) DoublePiece {
	return DoublePiece(top.nibble()<<4 | bottom.nibble())
}

// Access returns the top half for shift 1 and the bottom half for shift 0.
func (d DoublePiece) Access(shift uint8) (Piece, bool) {
	if debugAssertions {
		assertf(shift <= TopShift, "chess: invalid half selector %d", shift)
	}
	v := (uint8(d) >> (4 * shift)) & nibbleMask
	return Piece(v), v != 0
}

// Top returns the top half.
func (d DoublePiece) Top() (Piece, bool) {
	return d.Access(TopShift)
}

// Bottom returns the bottom half.
func (d DoublePiece) Bottom() (Piece, bool) {
	return d.Access(BottomShift)
}

// Square returns the half selected by shift as a Square.
func (d DoublePiece) Square(shift uint8) Square {
	p, ok := d.Access(shift)
	if !ok {
		return None
	}
	return Some(p)
}
