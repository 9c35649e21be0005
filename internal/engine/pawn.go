package engine

import (
	"github.com/lgbarn/chesspuzzle-go/internal/chess"
)

// applyPawnMove applies a pawn push, capture, en-passant capture or
// promotion to a copy of the board.
func applyPawnMove(board *chess.Board, move chess.Move, applied *chess.AppliedMove) (*chess.Board, *chess.AppliedMove, error) {
	colour := board.ToMove
	dir := chess.ColourOffset(colour)
	colDiff := int(move.To.Col) - int(move.From.Col)
	rankDiff := int(move.To.Rank) - int(move.From.Rank)
	target := board.At(move.To)

	applied.Class = chess.PawnMove
	doubleStep := false

	switch {
	case colDiff == 0 && rankDiff == dir:
		if target != chess.Empty {
			return nil, nil, illegal("pawn push to %s is blocked", move.To)
		}

	case colDiff == 0 && rankDiff == 2*dir:
		if move.From.Rank != chess.PawnRank(colour) {
			return nil, nil, illegal("pawn on %s cannot advance two squares", move.From)
		}
		if board.At(move.From.Offset(0, dir)) != chess.Empty || target != chess.Empty {
			return nil, nil, illegal("pawn push to %s is blocked", move.To)
		}
		doubleStep = true

	case abs(colDiff) == 1 && rankDiff == dir:
		if chess.IsOccupied(target) {
			if chess.ExtractColour(target) == colour {
				return nil, nil, illegal("%s is occupied by a friendly piece", move.To)
			}
			if chess.ExtractPiece(target) == chess.King {
				return nil, nil, illegal("kings cannot be captured")
			}
			applied.CapturedPiece = chess.ExtractPiece(target)
		} else if ep, ok := board.EnPassantSquare(); ok && ep == move.To {
			applied.Class = chess.EnPassantPawnMove
		} else {
			return nil, nil, illegal("pawn on %s has nothing to capture on %s", move.From, move.To)
		}

	default:
		return nil, nil, illegal("pawn cannot move from %s to %s", move.From, move.To)
	}

	if move.To.Rank == chess.PromotionRank(colour) {
		if !move.HasPromotion() {
			return nil, nil, illegal("pawn reaching %s must promote", move.To)
		}
		if !chess.IsPromotionPiece(move.Promotion) {
			return nil, nil, illegal("cannot promote to %s", move.Promotion)
		}
		applied.Class = chess.PawnMoveWithPromotion
	} else if move.HasPromotion() {
		return nil, nil, illegal("pawn on %s cannot promote", move.To)
	}

	next := board.Copy()
	next.Put(move.From, chess.Empty)
	if applied.Class == chess.PawnMoveWithPromotion {
		next.Put(move.To, chess.MakeColouredPiece(colour, move.Promotion))
	} else {
		next.Put(move.To, board.At(move.From))
	}
	if applied.Class == chess.EnPassantPawnMove {
		// The captured pawn sits beside the origin, behind the target square.
		next.Put(move.To.Offset(0, -dir), chess.Empty)
		applied.CapturedPiece = chess.Pawn
	}

	finishMove(next, move, true)

	if doubleStep {
		next.EnPassant = true
		next.EPCol = move.From.Col
		next.EPRank = move.From.Offset(0, dir).Rank
	}

	if IsInCheck(next, colour) {
		return nil, nil, illegal("move leaves the %s king in check", colour)
	}
	return next, applied, nil
}
