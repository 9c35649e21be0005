package engine

import "github.com/lgbarn/chesspuzzle-go/internal/chess"

// GenerateLegalMoves returns every legal move of the side to move, ordered by
// origin square (a1 to h8, file by file). Check status is not computed.
func GenerateLegalMoves(board *chess.Board) []chess.AppliedMove {
	var moves []chess.AppliedMove
	forEachLegalMove(board, func(_ *chess.Board, applied *chess.AppliedMove) bool {
		moves = append(moves, *applied)
		return true
	})
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	found := false
	forEachLegalMove(board, func(_ *chess.Board, _ *chess.AppliedMove) bool {
		found = true
		return false
	})
	return found
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	forEachLegalMove(board, func(next *chess.Board, _ *chess.AppliedMove) bool {
		if depth == 1 {
			nodes++
		} else {
			nodes += Perft(next, depth-1)
		}
		return true
	})
	return nodes
}

// forEachLegalMove generates candidate moves for every piece of the side to
// move and calls fn with each one the rules accept. Returning false from fn
// stops the walk.
func forEachLegalMove(board *chess.Board, fn func(next *chess.Board, applied *chess.AppliedMove) bool) {
	colour := board.ToMove
	stopped := false
	board.ForEachPiece(func(from chess.Square, piece chess.Piece) {
		if stopped || chess.ExtractColour(piece) != colour {
			return
		}
		for _, move := range candidateMoves(board, from, chess.ExtractPiece(piece)) {
			next, applied, err := applyMove(board, move)
			if err != nil {
				continue
			}
			if !fn(next, applied) {
				stopped = true
				return
			}
		}
	})
}

// candidateMoves lists the pseudo-legal destinations of one piece. The rules
// engine filters them.
func candidateMoves(board *chess.Board, from chess.Square, pieceType chess.Piece) []chess.Move {
	var moves []chess.Move
	colour := board.ToMove

	addIfOpen := func(to chess.Square) {
		target := board.At(to)
		if target == chess.Empty || (chess.IsOccupied(target) && chess.ExtractColour(target) != colour) {
			moves = append(moves, chess.NewMove(from, to))
		}
	}

	switch pieceType {
	case chess.Pawn:
		return pawnCandidates(board, from)

	case chess.Knight:
		for _, off := range knightOffsets {
			addIfOpen(from.Offset(off[0], off[1]))
		}

	case chess.King:
		for _, off := range kingOffsets {
			addIfOpen(from.Offset(off[0], off[1]))
		}
		if from == chess.Sq('e', chess.HomeRank(colour)) {
			moves = append(moves,
				chess.NewMove(from, chess.Sq('g', from.Rank)),
				chess.NewMove(from, chess.Sq('c', from.Rank)))
		}

	case chess.Bishop:
		moves = slidingCandidates(board, from, diagonalDirs)
	case chess.Rook:
		moves = slidingCandidates(board, from, straightDirs)
	case chess.Queen:
		moves = slidingCandidates(board, from, allSlidingDirs)
	}
	return moves
}

// slidingCandidates walks each ray until it leaves the board or meets a piece,
// including that piece's square.
func slidingCandidates(board *chess.Board, from chess.Square, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.Valid(); to = to.Offset(dir[0], dir[1]) {
			target := board.At(to)
			if target == chess.Empty {
				moves = append(moves, chess.NewMove(from, to))
				continue
			}
			if chess.ExtractColour(target) != board.ToMove {
				moves = append(moves, chess.NewMove(from, to))
			}
			break
		}
	}
	return moves
}

// pawnCandidates lists pushes and captures, expanding moves onto the last
// rank into one move per promotion piece.
func pawnCandidates(board *chess.Board, from chess.Square) []chess.Move {
	colour := board.ToMove
	dir := chess.ColourOffset(colour)

	targets := []chess.Square{from.Offset(0, dir)}
	if from.Rank == chess.PawnRank(colour) {
		targets = append(targets, from.Offset(0, 2*dir))
	}
	for _, dc := range pawnCaptureCols {
		targets = append(targets, from.Offset(dc, dir))
	}

	var moves []chess.Move
	for _, to := range targets {
		if !to.Valid() {
			continue
		}
		if to.Rank != chess.PromotionRank(colour) {
			moves = append(moves, chess.NewMove(from, to))
			continue
		}
		for _, promo := range chess.PromotionPieces {
			moves = append(moves, chess.Move{From: from, To: to, Promotion: promo})
		}
	}
	return moves
}
