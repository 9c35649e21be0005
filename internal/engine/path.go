package engine

import "github.com/lgbarn/chesspuzzle-go/internal/chess"

// isDiagonalClear checks if the diagonal path between two squares is clear.
// The end squares themselves are not inspected.
func isDiagonalClear(board *chess.Board, from, to chess.Square) bool {
	colDir := sign(int(to.Col) - int(from.Col))
	rankDir := sign(int(to.Rank) - int(from.Rank))

	cur := from.Offset(colDir, rankDir)
	for cur.Col != to.Col && cur.Rank != to.Rank {
		if board.At(cur) != chess.Empty {
			return false
		}
		cur = cur.Offset(colDir, rankDir)
	}

	return true
}

// isStraightClear checks if the straight path between two squares is clear.
func isStraightClear(board *chess.Board, from, to chess.Square) bool {
	colDir := sign(int(to.Col) - int(from.Col))
	rankDir := sign(int(to.Rank) - int(from.Rank))

	cur := from.Offset(colDir, rankDir)
	for cur != to {
		if board.At(cur) != chess.Empty {
			return false
		}
		cur = cur.Offset(colDir, rankDir)
	}

	return true
}

// squaresBetween lists the squares strictly between two squares on the same
// rank, in order from the first towards the second.
func squaresBetween(from, to chess.Square) []chess.Square {
	dir := sign(int(to.Col) - int(from.Col))
	var out []chess.Square
	for cur := from.Offset(dir, 0); cur != to; cur = cur.Offset(dir, 0) {
		out = append(out, cur)
	}
	return out
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
