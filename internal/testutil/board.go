package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesspuzzle-go/internal/chess"
	"github.com/lgbarn/chesspuzzle-go/internal/engine"
	"github.com/lgbarn/chesspuzzle-go/internal/notation"
)

// MustBoard decodes a FEN string, failing the test if it is invalid.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return board
}

// MustPlay applies moves in long-form or algebraic notation to board and
// returns the resulting position. board itself is not modified.
func MustPlay(t testing.TB, board *chess.Board, moves ...string) *chess.Board {
	t.Helper()
	for i, text := range moves {
		move, err := notation.ParseMove(text, board)
		if err != nil {
			t.Fatalf("move %d (%s): %v", i+1, text, err)
		}
		next, _, err := engine.Apply(board, move)
		if err != nil {
			t.Fatalf("move %d (%s): %v", i+1, text, err)
		}
		board = next
	}
	return board
}

// FENAfter plays moves from the starting position and returns the FEN.
func FENAfter(t testing.TB, moves ...string) string {
	t.Helper()
	return engine.BoardToFEN(MustPlay(t, engine.NewInitialBoard(), moves...))
}

// AssertSamePosition fails unless the two boards are the same position as
// engine.SamePosition judges it. The failure shows a diff of their FENs.
func AssertSamePosition(t testing.TB, got, want *chess.Board) {
	t.Helper()
	if !engine.SamePosition(got, want) {
		t.Errorf("positions differ (-want +got):\n%s",
			cmp.Diff(engine.BoardToFEN(want), engine.BoardToFEN(got)))
	}
}
