package engine

import (
	"github.com/lgbarn/chesspuzzle-go/internal/chess"
)

// Apply checks a move against the rules and returns the position after it,
// together with a description of what the move did.
//
// The given board is never modified. On failure the returned error wraps
// errors.ErrIllegalMove and no state has changed.
func Apply(board *chess.Board, move chess.Move) (*chess.Board, *chess.AppliedMove, error) {
	next, applied, err := applyMove(board, move)
	if err != nil {
		return nil, nil, err
	}
	applied.CheckStatus = checkStatus(next)
	return next, applied, nil
}

// checkStatus reports what the last move delivered to the side now to move.
func checkStatus(board *chess.Board) chess.CheckStatus {
	if !IsInCheck(board, board.ToMove) {
		return chess.NoCheck
	}
	if HasLegalMoves(board) {
		return chess.Check
	}
	return chess.Checkmate
}

// applyMove validates and applies a move without computing its check status.
// Legal move generation uses it directly.
func applyMove(board *chess.Board, move chess.Move) (*chess.Board, *chess.AppliedMove, error) {
	if board == nil {
		return nil, nil, illegal("no board")
	}
	if move.Promotion == chess.Off {
		move.Promotion = chess.Empty
	}
	if !move.From.Valid() || !move.To.Valid() {
		return nil, nil, illegal("square off the board")
	}
	if move.From == move.To {
		return nil, nil, illegal("origin and destination are both %s", move.From)
	}

	colour := board.ToMove
	mover := board.At(move.From)
	if !chess.IsOccupied(mover) {
		return nil, nil, illegal("no piece on %s", move.From)
	}
	if chess.ExtractColour(mover) != colour {
		return nil, nil, illegal("%s is not %s's piece", move.From, colour)
	}

	applied := &chess.AppliedMove{
		Move:          move,
		PieceToMove:   chess.ExtractPiece(mover),
		CapturedPiece: chess.Empty,
	}

	switch {
	case applied.PieceToMove == chess.Pawn:
		return applyPawnMove(board, move, applied)
	case isCastlingMove(board, move, applied.PieceToMove):
		return applyCastle(board, move, applied)
	default:
		return applyPieceMove(board, move, applied)
	}
}

// castlingCorners maps the king and rook home squares to the rights that are
// lost once anything leaves or lands on them.
var castlingCorners = map[chess.Square]chess.CastlingRights{
	chess.Sq('e', '1'): chess.WhiteKingside | chess.WhiteQueenside,
	chess.Sq('h', '1'): chess.WhiteKingside,
	chess.Sq('a', '1'): chess.WhiteQueenside,
	chess.Sq('e', '8'): chess.BlackKingside | chess.BlackQueenside,
	chess.Sq('h', '8'): chess.BlackKingside,
	chess.Sq('a', '8'): chess.BlackQueenside,
}

// finishMove performs the bookkeeping shared by every move type once the
// pieces have been placed on next.
func finishMove(next *chess.Board, move chess.Move, resetsClock bool) {
	next.Castling = next.Castling.
		Without(castlingCorners[move.From]).
		Without(castlingCorners[move.To])

	next.EnPassant = false
	next.EPCol = 0
	next.EPRank = 0

	if resetsClock {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if next.ToMove == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = next.ToMove.Opposite()
}
