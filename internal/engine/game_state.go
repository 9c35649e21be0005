package engine

import "github.com/lgbarn/chesspuzzle-go/internal/chess"

// Status summarises a position for the side to move.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	InsufficientMaterial
)

// String returns the lowercase name used in reports.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "ongoing"
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// PositionStatus classifies a position. Mate and stalemate take precedence
// over insufficient material.
func PositionStatus(board *chess.Board) Status {
	if !HasLegalMoves(board) {
		if IsInCheck(board, board.ToMove) {
			return Checkmate
		}
		return Stalemate
	}
	if HasInsufficientMaterial(board) {
		return InsufficientMaterial
	}
	return Ongoing
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
