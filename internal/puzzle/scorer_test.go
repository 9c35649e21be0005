package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chesspuzzle-go/internal/config"
	"github.com/lgbarn/chesspuzzle-go/internal/engine"
	"github.com/lgbarn/chesspuzzle-go/internal/errors"
	"github.com/lgbarn/chesspuzzle-go/internal/testutil"
)

// newPuzzle verifies moves and wraps them in a puzzle of the given difficulty.
func newPuzzle(t *testing.T, difficulty int, moves ...string) *Puzzle {
	t.Helper()
	v, err := NewVerifier(&config.VerifyConfig{MinMoves: 1, MaxMoves: 10}).Verify(moves)
	require.NoError(t, err)
	p := NewPuzzle(v, Metadata{Difficulty: difficulty})
	p.ID = "test"
	return p
}

func TestScore_Correct(t *testing.T) {
	tests := []struct {
		name       string
		solution   []string
		difficulty int
		submitted  []string
		elapsedMs  uint64
		want       int
		penalties  Penalties
	}{
		{
			name:       "exact solution within grace period",
			solution:   []string{"e2e4", "e7e5"},
			difficulty: 1,
			submitted:  []string{"e2e4", "e7e5"},
			elapsedMs:  3000,
			want:       100,
		},
		{
			name:       "algebraic submission",
			solution:   []string{"e2e4", "e7e5"},
			difficulty: 1,
			submitted:  []string{"e4", "e5"},
			elapsedMs:  0,
			want:       100,
		},
		{
			name:       "unset difficulty",
			solution:   []string{"e2e4", "e7e5"},
			difficulty: 0,
			submitted:  []string{"e2e4", "e7e5"},
			want:       100,
		},
		{
			name:       "grace period boundary",
			solution:   []string{"e2e4", "e7e5"},
			difficulty: 1,
			submitted:  []string{"e2e4", "e7e5"},
			elapsedMs:  10999,
			want:       100,
		},
		{
			name:       "time penalty",
			solution:   []string{"e2e4", "e7e5"},
			difficulty: 1,
			submitted:  []string{"e2e4", "e7e5"},
			elapsedMs:  25500,
			want:       85,
			penalties:  Penalties{Time: 15},
		},
		{
			name:       "transposition with difficulty and time",
			solution:   []string{"g1f3", "g8f6", "b1c3", "b8c6"},
			difficulty: 2,
			submitted:  []string{"b1c3", "b8c6", "g1f3", "g8f6"},
			elapsedMs:  15000,
			want:       80,
			penalties:  Penalties{Difficulty: 15, Time: 5},
		},
		{
			name:       "extra moves reaching the same position",
			solution:   []string{"g1f3", "g8f6"},
			difficulty: 1,
			submitted:  []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6"},
			want:       80,
			penalties:  Penalties{MoveCount: 20},
		},
		{
			name:       "score floors at zero",
			solution:   []string{"e2e4", "e7e5"},
			difficulty: 5,
			submitted:  []string{"e2e4", "e7e5"},
			elapsedMs:  600000,
			want:       0,
			penalties:  Penalties{Difficulty: 60, Time: 100},
		},
		{
			name:       "huge difficulty is capped",
			solution:   []string{"e2e4", "e7e5"},
			difficulty: 1 << 62,
			submitted:  []string{"e2e4", "e7e5"},
			elapsedMs:  0,
			want:       0,
			penalties:  Penalties{Difficulty: 100},
		},
		{
			name:       "huge difficulty and elapsed time are capped",
			solution:   []string{"e2e4", "e7e5"},
			difficulty: 1 << 62,
			submitted:  []string{"e2e4", "e7e5"},
			elapsedMs:  ^uint64(0),
			want:       0,
			penalties:  Penalties{Difficulty: 100, Time: 100},
		},
		{
			name:       "transposition ending on a double step",
			solution:   []string{"e2e4", "e7e5", "g1f3", "b8c6"},
			difficulty: 1,
			submitted:  []string{"g1f3", "b8c6", "e2e4", "e7e5"},
			want:       100,
		},
	}

	s := NewScorer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPuzzle(t, tt.difficulty, tt.solution...)
			got, err := s.Score(p, tt.submitted, tt.elapsedMs)
			require.NoError(t, err)

			assert.True(t, got.Correct)
			assert.Equal(t, tt.want, got.Score)
			assert.Equal(t, tt.penalties, got.Penalties)
			assert.Zero(t, got.IllegalMoveIndex)
			testutil.AssertSamePosition(t,
				testutil.MustBoard(t, got.PlayerFinalFEN),
				testutil.MustBoard(t, got.ReferenceFinalFEN))
			assert.Contains(t, got.Reason, "Correct")
		})
	}
}

func TestScore_Incorrect(t *testing.T) {
	p := newPuzzle(t, 1, "e2e4", "e7e5")
	afterE4 := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"

	tests := []struct {
		name        string
		submitted   []string
		wantIndex   int
		wantMove    string
		wantReason  string
		wantPlayed  []string
		wantPlayFEN string
	}{
		{
			name:        "legal but wrong final position",
			submitted:   []string{"e2e4", "d7d5"},
			wantReason:  "final position does not match",
			wantPlayed:  []string{"e2e4", "d7d5"},
			wantPlayFEN: "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
		},
		{
			name:        "unparsable token stops replay",
			submitted:   []string{"e2e4", "zz9"},
			wantIndex:   2,
			wantMove:    "zz9",
			wantReason:  `Move 2 ("zz9") could not be understood`,
			wantPlayed:  []string{"e2e4"},
			wantPlayFEN: afterE4,
		},
		{
			name:        "illegal move stops replay",
			submitted:   []string{"e2e4", "e7e4", "e7e5"},
			wantIndex:   2,
			wantMove:    "e7e4",
			wantReason:  `Move 2 ("e7e4") is illegal`,
			wantPlayed:  []string{"e2e4"},
			wantPlayFEN: afterE4,
		},
		{
			name:        "first move illegal",
			submitted:   []string{"e2e5"},
			wantIndex:   1,
			wantMove:    "e2e5",
			wantReason:  `Move 1 ("e2e5") is illegal`,
			wantPlayed:  []string{},
			wantPlayFEN: engine.InitialFEN,
		},
		{
			name:        "empty submission",
			submitted:   nil,
			wantReason:  "final position does not match",
			wantPlayed:  []string{},
			wantPlayFEN: engine.InitialFEN,
		},
		{
			name:        "too few moves",
			submitted:   []string{"e4"},
			wantReason:  "final position does not match",
			wantPlayed:  []string{"e2e4"},
			wantPlayFEN: afterE4,
		},
	}

	s := NewScorer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Score(p, tt.submitted, 1000)
			require.NoError(t, err)

			assert.False(t, got.Correct)
			assert.Zero(t, got.Score)
			assert.Equal(t, Penalties{}, got.Penalties)
			assert.Equal(t, tt.wantIndex, got.IllegalMoveIndex)
			assert.Equal(t, tt.wantMove, got.IllegalMove)
			assert.Contains(t, got.Reason, tt.wantReason)
			assert.Equal(t, tt.wantPlayed, got.PlayerMoves)
			assert.Equal(t, tt.wantPlayFEN, got.PlayerFinalFEN)
			assert.Equal(t, []string{"e2e4", "e7e5"}, got.ExpectedSolution)
		})
	}
}

func TestScore_IgnoresStoredFinalFEN(t *testing.T) {
	p := newPuzzle(t, 1, "e2e4", "e7e5")
	p.FinalFEN = "8/8/8/8/8/8/8/8 w - - 0 1"

	got, err := NewScorer(nil).Score(p, []string{"e2e4", "e7e5"}, 0)
	require.NoError(t, err)
	assert.True(t, got.Correct)
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", got.ReferenceFinalFEN)
}

func TestScore_CorruptPuzzle(t *testing.T) {
	tests := []struct {
		name   string
		puzzle *Puzzle
	}{
		{"nil puzzle", nil},
		{"unreadable start", &Puzzle{ID: "x", StartFEN: "not a fen", Solution: []string{"e2e4"}}},
		{"illegal solution", &Puzzle{ID: "x", StartFEN: engine.InitialFEN, Solution: []string{"e2e4", "e2e4"}}},
		{"garbage solution", &Puzzle{ID: "x", StartFEN: engine.InitialFEN, Solution: []string{"??"}}},
	}

	s := NewScorer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Score(tt.puzzle, []string{"e2e4"}, 0)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, errors.ErrCorruptPuzzle)
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	p := newPuzzle(t, 3, "d2d4", "d7d5", "c2c4")
	s := NewScorer(nil)

	for _, submitted := range [][]string{
		{"d4", "d5", "c4"},
		{"d4", "d5", "Nf3"},
		{"d4", "Qd5"},
	} {
		first, err := s.Score(p, submitted, 12345)
		require.NoError(t, err)
		second, err := s.Score(p, submitted, 12345)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestScore_CustomConstants(t *testing.T) {
	p := newPuzzle(t, 3, "e2e4", "e7e5")
	s := NewScorer(&config.ScoringConfig{Base: 50, DifficultyStep: 5, FreeSeconds: 0, ExtraMovePenalty: 1})

	got, err := s.Score(p, []string{"e2e4", "e7e5"}, 4000)
	require.NoError(t, err)
	assert.Equal(t, 36, got.Score)
	assert.Equal(t, Penalties{Difficulty: 10, Time: 4}, got.Penalties)
}

func TestScore_BranchesDoNotShareState(t *testing.T) {
	p := newPuzzle(t, 1, "e2e4", "e7e5")
	s := NewScorer(nil)

	wrong, err := s.Score(p, []string{"d2d4", "d7d5"}, 0)
	require.NoError(t, err)
	require.False(t, wrong.Correct)

	right, err := s.Score(p, []string{"e2e4", "e7e5"}, 0)
	require.NoError(t, err)
	assert.True(t, right.Correct)
	assert.Equal(t, right.ReferenceFinalFEN, wrong.ReferenceFinalFEN)
	testutil.AssertSamePosition(t,
		testutil.MustBoard(t, wrong.ReferenceFinalFEN),
		testutil.MustPlay(t, engine.NewInitialBoard(), "e4", "e5"))
}
