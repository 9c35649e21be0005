package engine

import "github.com/lgbarn/chesspuzzle-go/internal/chess"

// EnPassantCapturable reports whether the side to move has a legal
// en-passant capture onto the board's target square.
func EnPassantCapturable(board *chess.Board) bool {
	ep, ok := board.EnPassantSquare()
	if !ok {
		return false
	}
	pawn := chess.MakeColouredPiece(board.ToMove, chess.Pawn)
	behind := -chess.ColourOffset(board.ToMove)
	for _, dc := range []int{-1, 1} {
		from := ep.Offset(dc, behind)
		if board.At(from) != pawn {
			continue
		}
		if _, _, err := applyMove(board, chess.NewMove(from, ep)); err == nil {
			return true
		}
	}
	return false
}

// SamePosition reports whether two boards are the same position in the
// repetition sense. Move counters are ignored and an en-passant target only
// counts when the capture is available.
func SamePosition(a, b *chess.Board) bool {
	if a == nil || b == nil {
		return a == b
	}
	return withoutDeadEnPassant(a).SamePosition(withoutDeadEnPassant(b))
}

func withoutDeadEnPassant(board *chess.Board) *chess.Board {
	if !board.EnPassant || EnPassantCapturable(board) {
		return board
	}
	clean := board.Copy()
	clean.EnPassant = false
	clean.EPCol, clean.EPRank = 0, 0
	return clean
}
