package hashing

import (
	"math/rand"

	"github.com/lgbarn/chesspuzzle-go/internal/chess"
	"github.com/lgbarn/chesspuzzle-go/internal/engine"
)

// zobristSeed is fixed so keys are stable across runs.
const zobristSeed = 0x5eed_c0de

const numColouredPieces = int(chess.NumPieceValues) << chess.PieceShift

var (
	// pieceKeys is indexed by coloured piece code, then square index 0-63.
	pieceKeys    [numColouredPieces][64]uint64
	blackToMove  uint64
	castlingKeys [16]uint64
	epFileKeys   [8]uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for p := range pieceKeys {
		for sq := range pieceKeys[p] {
			pieceKeys[p][sq] = r.Uint64()
		}
	}
	blackToMove = r.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = r.Uint64()
	}
}

func squareIndex(sq chess.Square) int {
	return int(sq.Rank-'1')*8 + int(sq.Col-'a')
}

// PositionKey returns the Zobrist key of a position: placement, side to
// move, castling rights and, when the capture is available, the en-passant
// file. The move counters are not part of the key, so boards for which
// engine.SamePosition holds share a key.
func PositionKey(board *chess.Board) uint64 {
	var key uint64
	board.ForEachPiece(func(sq chess.Square, piece chess.Piece) {
		key ^= pieceKeys[piece][squareIndex(sq)]
	})
	if board.ToMove == chess.Black {
		key ^= blackToMove
	}
	key ^= castlingKeys[board.Castling&0xf]
	if board.EnPassant && engine.EnPassantCapturable(board) {
		key ^= epFileKeys[board.EPCol-'a']
	}
	return key
}

// WeakHash is a fast placement checksum used as a second check on key
// collisions.
func WeakHash(board *chess.Board) uint64 {
	var sum uint64
	board.ForEachPiece(func(sq chess.Square, piece chess.Piece) {
		sum += uint64(piece) * uint64(squareIndex(sq)+1) * 0x9e3779b97f4a7c15
	})
	return sum
}
