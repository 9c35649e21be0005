package engine

import (
	"github.com/lgbarn/chesspuzzle-go/internal/chess"
	"github.com/lgbarn/chesspuzzle-go/internal/errors"
)

// applyPieceMove applies a knight, bishop, rook, queen or single-step king
// move to a copy of the board.
func applyPieceMove(board *chess.Board, move chess.Move, applied *chess.AppliedMove) (*chess.Board, *chess.AppliedMove, error) {
	colour := board.ToMove
	pieceType := applied.PieceToMove

	if move.HasPromotion() {
		return nil, nil, illegal("only pawns can promote")
	}
	if !canPieceMove(board, pieceType, move.From, move.To) {
		return nil, nil, illegal("%s cannot move from %s to %s", pieceType, move.From, move.To)
	}

	target := board.At(move.To)
	if chess.IsOccupied(target) && chess.ExtractColour(target) == colour {
		return nil, nil, illegal("%s is occupied by a friendly piece", move.To)
	}
	if chess.ExtractPiece(target) == chess.King {
		return nil, nil, illegal("kings cannot be captured")
	}

	next := board.Copy()
	next.Put(move.From, chess.Empty)
	next.Put(move.To, board.At(move.From))

	if pieceType == chess.King {
		next.SetKingSquare(colour, move.To)
	}

	applied.Class = chess.PieceMove
	if chess.IsOccupied(target) {
		applied.CapturedPiece = chess.ExtractPiece(target)
	}

	finishMove(next, move, applied.IsCapture())

	if IsInCheck(next, colour) {
		return nil, nil, illegal("move leaves the %s king in check", colour)
	}
	return next, applied, nil
}

// canPieceMove checks if a piece's movement pattern connects two squares,
// including that sliding paths are unobstructed.
func canPieceMove(board *chess.Board, pieceType chess.Piece, from, to chess.Square) bool {
	colDiff := abs(int(to.Col) - int(from.Col))
	rankDiff := abs(int(to.Rank) - int(from.Rank))
	if colDiff == 0 && rankDiff == 0 {
		return false
	}

	switch pieceType {
	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if colDiff != rankDiff {
			return false
		}
		return isDiagonalClear(board, from, to)

	case chess.Rook:
		if colDiff != 0 && rankDiff != 0 {
			return false
		}
		return isStraightClear(board, from, to)

	case chess.Queen:
		if colDiff == rankDiff {
			return isDiagonalClear(board, from, to)
		}
		if colDiff == 0 || rankDiff == 0 {
			return isStraightClear(board, from, to)
		}
		return false

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1
	}

	return false
}

// illegal builds an error wrapping ErrIllegalMove.
func illegal(format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrIllegalMove, format, args...)
}
