package chess

// Board represents a chess position with all state needed to continue play.
//
// A Board holds only value fields, so assigning or copying it produces a
// fully independent position. The rules engine treats boards it is given as
// read-only and returns a new Board for every applied move.
type Board struct {
	// The board squares with a hedge of 2 around for knight move calculation.
	// board[col][rank] where col and rank are 0-11 (with hedge).
	Squares [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece

	// Who has the next move.
	ToMove Colour

	// The full-move number, starting at 1 and incremented after Black moves.
	MoveNumber uint

	// Remaining castling rights.
	Castling CastlingRights

	// Keep track of where the two kings are for check detection.
	WKingCol  Col
	WKingRank Rank
	BKingCol  Col
	BKingRank Rank

	// Is EnPassant capture possible? If so then EPRank and EPCol have
	// the square on which this can be made.
	EnPassant bool
	EPRank    Rank
	EPCol     Col

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	// Initialize all squares to Off (hedge) or Empty
	for col := 0; col < Hedge+BoardSize+Hedge; col++ {
		for rank := 0; rank < Hedge+BoardSize+Hedge; rank++ {
			if col >= Hedge && col < Hedge+BoardSize &&
				rank >= Hedge && rank < Hedge+BoardSize {
				b.Squares[col][rank] = Empty
			} else {
				b.Squares[col][rank] = Off
			}
		}
	}
	return b
}

// NewInitialBoard returns a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	// Clear the board first
	for col := Hedge; col < Hedge+BoardSize; col++ {
		for rank := Hedge; rank < Hedge+BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col+Hedge][Hedge] = W(backRank[col])
		b.Squares[col+Hedge][Hedge+1] = W(Pawn)
		b.Squares[col+Hedge][Hedge+6] = B(Pawn)
		b.Squares[col+Hedge][Hedge+7] = B(backRank[col])
	}

	b.WKingCol = 'e'
	b.WKingRank = '1'
	b.BKingCol = 'e'
	b.BKingRank = '8'

	b.Castling = AllCastling
	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.EPCol = 0
	b.EPRank = 0
	b.HalfmoveClock = 0
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c == 0 || r == 0 {
		return Off
	}
	return b.Squares[c][r]
}

// At returns the piece on a square.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Set places a piece at the given coordinates.
// Only used while constructing a position; boards returned by the engine are
// never modified afterwards.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c != 0 && r != 0 {
		b.Squares[c][r] = piece
	}
}

// Put places a piece on a square.
func (b *Board) Put(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// KingSquare returns the tracked king square of the given colour.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return Square{Col: b.WKingCol, Rank: b.WKingRank}
	}
	return Square{Col: b.BKingCol, Rank: b.BKingRank}
}

// SetKingSquare updates the tracked king square of the given colour.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WKingCol, b.WKingRank = sq.Col, sq.Rank
	} else {
		b.BKingCol, b.BKingRank = sq.Col, sq.Rank
	}
}

// EnPassantSquare returns the en-passant target square, if any.
func (b *Board) EnPassantSquare() (Square, bool) {
	if !b.EnPassant {
		return NoSquare, false
	}
	return Square{Col: b.EPCol, Rank: b.EPRank}, true
}

// SamePosition reports positional equality: identical placement, side to
// move, castling rights and en-passant target. Move counters are ignored.
func (b *Board) SamePosition(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.Squares != other.Squares || b.ToMove != other.ToMove || b.Castling != other.Castling {
		return false
	}
	if b.EnPassant != other.EnPassant {
		return false
	}
	return !b.EnPassant || (b.EPCol == other.EPCol && b.EPRank == other.EPRank)
}

// ForEachPiece calls fn for every occupied square, from a1 to h8 file by file.
func (b *Board) ForEachPiece(fn func(sq Square, piece Piece)) {
	for col := Col(FirstCol); col <= LastCol; col++ {
		for rank := Rank(FirstRank); rank <= LastRank; rank++ {
			if p := b.Get(col, rank); IsOccupied(p) {
				fn(Square{Col: col, Rank: rank}, p)
			}
		}
	}
}

// CountPieces returns how many copies of the coloured piece are on the board.
func (b *Board) CountPieces(colouredPiece Piece) int {
	n := 0
	b.ForEachPiece(func(_ Square, p Piece) {
		if p == colouredPiece {
			n++
		}
	})
	return n
}
