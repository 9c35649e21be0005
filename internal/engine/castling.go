package engine

import (
	"github.com/lgbarn/chesspuzzle-go/internal/chess"
)

// isCastlingMove reports whether a king move is written as castling: two
// files from e on the home rank.
func isCastlingMove(board *chess.Board, move chess.Move, pieceType chess.Piece) bool {
	if pieceType != chess.King {
		return false
	}
	home := chess.HomeRank(board.ToMove)
	return move.From == chess.Sq('e', home) && move.To.Rank == home &&
		(move.To.Col == 'g' || move.To.Col == 'c')
}

// applyCastle moves king and rook for a castling move after checking every
// castling condition.
func applyCastle(board *chess.Board, move chess.Move, applied *chess.AppliedMove) (*chess.Board, *chess.AppliedMove, error) {
	colour := board.ToMove
	home := chess.HomeRank(colour)
	kingside := move.To.Col == 'g'

	rookFrom, rookTo := chess.Sq('a', home), chess.Sq('d', home)
	applied.Class = chess.QueensideCastle
	if kingside {
		rookFrom, rookTo = chess.Sq('h', home), chess.Sq('f', home)
		applied.Class = chess.KingsideCastle
	}

	if move.HasPromotion() {
		return nil, nil, illegal("only pawns can promote")
	}
	if !board.Castling.Has(chess.CastlingFlag(colour, kingside)) {
		return nil, nil, illegal("%s has lost the right to castle %s", colour, applied.Class)
	}
	if board.At(rookFrom) != chess.MakeColouredPiece(colour, chess.Rook) {
		return nil, nil, illegal("no rook on %s", rookFrom)
	}
	for _, sq := range squaresBetween(move.From, rookFrom) {
		if board.At(sq) != chess.Empty {
			return nil, nil, illegal("%s is occupied", sq)
		}
	}

	opponent := colour.Opposite()
	if IsSquareAttacked(board, move.From, opponent) {
		return nil, nil, illegal("cannot castle out of check")
	}
	// The king crosses rookTo and lands on move.To.
	for _, sq := range []chess.Square{rookTo, move.To} {
		if IsSquareAttacked(board, sq, opponent) {
			return nil, nil, illegal("king would cross attacked square %s", sq)
		}
	}

	next := board.Copy()
	king := board.At(move.From)
	rook := board.At(rookFrom)
	next.Put(move.From, chess.Empty)
	next.Put(rookFrom, chess.Empty)
	next.Put(move.To, king)
	next.Put(rookTo, rook)
	next.SetKingSquare(colour, move.To)

	finishMove(next, move, false)
	next.Castling = next.Castling.Without(chess.BothCastlingFlags(colour))

	return next, applied, nil
}
