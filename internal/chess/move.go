package chess

// Move is a move descriptor: origin and destination squares plus an optional
// promotion piece. It says nothing about legality.
type Move struct {
	From Square
	To   Square

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece
}

// NewMove creates a move descriptor without promotion.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Promotion: Empty}
}

// HasPromotion reports whether the descriptor names a promotion piece.
func (m Move) HasPromotion() bool {
	return m.Promotion != Empty && m.Promotion != Off
}

// AppliedMove is a move that the engine accepted, with the details needed to
// describe it.
type AppliedMove struct {
	Move

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The piece type being moved.
	PieceToMove Piece

	// The piece type captured (Empty if no capture).
	CapturedPiece Piece

	// Whether this move gives check or checkmate.
	CheckStatus CheckStatus
}

// IsCapture returns true if this move is a capture.
func (m *AppliedMove) IsCapture() bool {
	return m.CapturedPiece != Empty || m.Class == EnPassantPawnMove
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *AppliedMove) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m *AppliedMove) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}
