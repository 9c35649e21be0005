package puzzle

import (
	"strings"

	"github.com/lgbarn/chesspuzzle-go/internal/chess"
	"github.com/lgbarn/chesspuzzle-go/internal/engine"
	"github.com/lgbarn/chesspuzzle-go/internal/errors"
	"github.com/lgbarn/chesspuzzle-go/internal/notation"
)

// line is the part of a move list that applied cleanly.
type line struct {
	board *chess.Board // position after the last applied move
	moves []string     // canonical long-form moves
	san   []string
}

// replay parses and applies raw moves in order from start. It stops at the
// first move that cannot be read or is illegal and returns the line up to
// that point together with the failure. The start board is not modified.
func replay(start *chess.Board, raw []string) (*line, *errors.MoveError) {
	l := &line{
		board: start,
		moves: make([]string, 0, len(raw)),
		san:   make([]string, 0, len(raw)),
	}

	for i, text := range raw {
		text = strings.TrimSpace(text)

		move, err := notation.ParseMove(text, l.board)
		if err == nil {
			var next *chess.Board
			var applied *chess.AppliedMove
			next, applied, err = engine.Apply(l.board, move)
			if err == nil {
				l.moves = append(l.moves, notation.ToLongForm(applied.Move))
				l.san = append(l.san, notation.ToSAN(l.board, applied))
				l.board = next
				continue
			}
		}

		return l, &errors.MoveError{
			Err:      err,
			Index:    i,
			MoveText: text,
			FEN:      engine.BoardToFEN(l.board),
		}
	}
	return l, nil
}
