package chess

// Square identifies one of the 64 board squares by file and rank characters.
type Square struct {
	Col  Col
	Rank Rank
}

// NoSquare is the zero Square; it is never on the board.
var NoSquare = Square{}

// Sq builds a square from its file and rank characters.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= FirstCol && s.Col <= LastCol && s.Rank >= FirstRank && s.Rank <= LastRank
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// Offset returns the square dc files and dr ranks away. The result may be
// off the board; check with Valid.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: Col(int(s.Col) + dc), Rank: Rank(int(s.Rank) + dr)}
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (int(s.Col-FirstCol)+int(s.Rank-FirstRank))%2 == 1
}

// ParseSquare parses a two-character square name such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	sq := Square{Col: Col(s[0]), Rank: Rank(s[1])}
	if !sq.Valid() {
		return NoSquare, false
	}
	return sq, true
}
