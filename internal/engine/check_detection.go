package engine

import "github.com/lgbarn/chesspuzzle-go/internal/chess"

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs  = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	pawnCaptureCols = []int{-1, 1}
)

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)

	// If king position not tracked, search for it
	if !king.Valid() || board.At(king) != chess.MakeColouredPiece(colour, chess.King) {
		var ok bool
		if king, ok = findKing(board, colour); !ok {
			return false // No king found
		}
	}

	return IsSquareAttacked(board, king, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if board.Get(col, rank) == king {
				return chess.Sq(col, rank), true
			}
		}
	}
	return chess.NoSquare, false
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack from one rank behind the target, seen from the attacker.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	for _, dc := range pawnCaptureCols {
		if board.At(sq.Offset(dc, pawnDir)) == pawn {
			return true
		}
	}

	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.At(sq.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.At(sq.Offset(off[0], off[1])) == king {
			return true
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	if rayHits(board, sq, diagonalDirs, bishop, queen) {
		return true
	}
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	return rayHits(board, sq, straightDirs, rook, queen)
}

// rayHits walks each direction from sq and reports whether the first piece
// met is one of the given sliders.
func rayHits(board *chess.Board, sq chess.Square, dirs [][2]int, sliders ...chess.Piece) bool {
	for _, dir := range dirs {
		cur := sq.Offset(dir[0], dir[1])
		for cur.Valid() {
			piece := board.At(cur)
			if piece != chess.Empty {
				for _, s := range sliders {
					if piece == s {
						return true
					}
				}
				break // Blocked
			}
			cur = cur.Offset(dir[0], dir[1])
		}
	}
	return false
}
