package chess

import "testing"

func TestPosFromCoordsRoundTrip(t *testing.T) {
	for x := uint8(0); x < BoardSize; x++ {
		for y := uint8(0); y < BoardSize; y++ {
			p, ok := PosFromCoords(x, y)
			if !ok {
				t.Fatalf("PosFromCoords(%d, %d) rejected a valid square", x, y)
			}
			if gx, gy := p.Coords(); gx != x || gy != y {
				t.Errorf("PosFromCoords(%d, %d).Coords() = (%d, %d)", x, y, gx, gy)
			}
			if uint8(p) != x<<4|y {
				t.Errorf("PosFromCoords(%d, %d) = %#x; want %#x", x, y, uint8(p), x<<4|y)
			}
			if raw := PosFromRawCoords(x, y); raw != p {
				t.Errorf("PosFromRawCoords(%d, %d) = %#x; want %#x", x, y, uint8(raw), uint8(p))
			}
			if !p.IsValid() {
				t.Errorf("%v.IsValid() = false", p)
			}
		}
	}
}

func TestPosFromCoordsRejectsOffBoard(t *testing.T) {
	tests := []struct {
		x, y uint8
	}{
		{8, 0},
		{0, 8},
		{8, 8},
		{3, 200},
		{255, 255},
	}
	for _, tt := range tests {
		if p, ok := PosFromCoords(tt.x, tt.y); ok {
			t.Errorf("PosFromCoords(%d, %d) = %v; want rejection", tt.x, tt.y, p)
		}
	}
}

func TestPosFromRawCoordsMasks(t *testing.T) {
	if debugAssertions {
		t.Skip("out-of-range raw coordinates panic under chessdebug")
	}
	if got, want := PosFromRawCoords(9, 10), PosFromRawCoords(1, 2); got != want {
		t.Errorf("PosFromRawCoords(9, 10) = %#x; want %#x", uint8(got), uint8(want))
	}
}

func TestPosFromAlgebraic(t *testing.T) {
	tests := []struct {
		name   string
		file   rune
		rank   uint8
		wantX  uint8
		wantY  uint8
		wantOK bool
	}{
		{"a1", 'a', 1, 0, 0, true},
		{"h8", 'h', 8, 7, 7, true},
		{"e4", 'e', 4, 4, 3, true},
		{"upper-case D2", 'D', 2, 3, 1, true},
		{"rank zero", 'a', 0, 0, 0, false},
		{"rank nine", 'a', 9, 0, 0, false},
		{"file i", 'i', 1, 0, 0, false},
		{"file I", 'I', 1, 0, 0, false},
		{"digit as file", '1', 1, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := PosFromAlgebraic(tt.file, tt.rank)
			if ok != tt.wantOK {
				t.Fatalf("PosFromAlgebraic(%q, %d) ok = %t; want %t", tt.file, tt.rank, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if p.X() != tt.wantX || p.Y() != tt.wantY {
				t.Errorf("PosFromAlgebraic(%q, %d) = (%d, %d); want (%d, %d)",
					tt.file, tt.rank, p.X(), p.Y(), tt.wantX, tt.wantY)
			}
		})
	}
}

func TestParsePos(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"e4", "e4", true},
		{"a8", "a8", true},
		{"H1", "h1", true},
		{"i9", "", false},
		{"e", "", false},
		{"", "", false},
		{"e44", "", false},
		{"e4 ", "", false},
		{"e9", "", false},
		{"e0", "", false},
		{"ex", "", false},
		{"é4", "", false},
		{"\xff4", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, ok := ParsePos(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParsePos(%q) ok = %t; want %t", tt.input, ok, tt.wantOK)
			}
			if ok && p.String() != tt.want {
				t.Errorf("ParsePos(%q) = %q; want %q", tt.input, p.String(), tt.want)
			}
		})
	}

	e4, _ := ParsePos("e4")
	if e4.X() != 4 || e4.Y() != 3 {
		t.Errorf("ParsePos(\"e4\") = (%d, %d); want (4, 3)", e4.X(), e4.Y())
	}
}

func TestPosString(t *testing.T) {
	for x := uint8(0); x < BoardSize; x++ {
		for y := uint8(0); y < BoardSize; y++ {
			p := PosFromRawCoords(x, y)
			back, ok := ParsePos(p.String())
			if !ok || back != p {
				t.Errorf("ParsePos(%q) = (%v, %t); want (%v, true)", p.String(), back, ok, p)
			}
		}
	}
	if got := Pos(0x88).String(); got != "??" {
		t.Errorf("Pos(0x88).String() = %q; want \"??\"", got)
	}
}

func TestSplitSquare(t *testing.T) {
	file, rank, ok := SplitSquare("g7")
	if !ok || file != 'g' || rank != 7 {
		t.Errorf("SplitSquare(\"g7\") = (%q, %d, %t); want ('g', 7, true)", file, rank, ok)
	}
	file, rank, ok = SplitSquare("z0")
	if !ok || file != 'z' || rank != 0 {
		t.Errorf("SplitSquare(\"z0\") = (%q, %d, %t); want ('z', 0, true)", file, rank, ok)
	}
	if _, _, ok := SplitSquare("g"); ok {
		t.Error("SplitSquare(\"g\") succeeded")
	}
}

func BenchmarkParsePos(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ParsePos("e4")
	}
}
