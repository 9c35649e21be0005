package engine

import (
	"github.com/lgbarn/chesspuzzle-go/internal/chess"
)

// HasInsufficientMaterial returns true if neither side can possibly mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool
	sufficient := false

	board.ForEachPiece(func(sq chess.Square, piece chess.Piece) {
		pieceType := chess.ExtractPiece(piece)
		switch pieceType {
		case chess.King:
			return
		case chess.Pawn, chess.Rook, chess.Queen:
			sufficient = true
			return
		}

		if chess.ExtractColour(piece) == chess.White {
			whitePieces = append(whitePieces, pieceType)
			if pieceType == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, pieceType)
			if pieceType == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	})
	if sufficient {
		return false
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return isMinorPiece(blackPieces[0])
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return isMinorPiece(whitePieces[0])
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

func isMinorPiece(p chess.Piece) bool {
	return p == chess.Bishop || p == chess.Knight
}

// checkPlacement reports the first placement problem that legal play can
// never produce: a missing or extra king, or a pawn on a back rank.
func checkPlacement(board *chess.Board) string {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.CountPieces(chess.MakeColouredPiece(colour, chess.King)); n != 1 {
			return colour.String() + " must have exactly one king"
		}
	}
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for _, rank := range []chess.Rank{chess.FirstRank, chess.LastRank} {
			if chess.ExtractPiece(board.Get(col, rank)) == chess.Pawn {
				return "pawn on " + chess.Sq(col, rank).String()
			}
		}
	}
	return ""
}
