package puzzle

import (
	"fmt"

	"github.com/lgbarn/chesspuzzle-go/internal/config"
	"github.com/lgbarn/chesspuzzle-go/internal/engine"
	"github.com/lgbarn/chesspuzzle-go/internal/errors"
)

// Reason texts for incorrect attempts.
const (
	reasonUnreadable = "Move %d (%q) could not be understood in this position"
	reasonIllegal    = "Move %d (%q) is illegal in this position"
	reasonMismatch   = "All moves were legal, but the final position does not match the solution"
	reasonCorrect    = "Correct! Your moves reach the solution position"
)

// Penalties is the breakdown of points deducted from the base score.
type Penalties struct {
	Difficulty int `json:"difficulty"`
	Time       int `json:"time"`
	MoveCount  int `json:"move_count"`
}

// Outcome is the verdict on one attempt.
type Outcome struct {
	Correct bool   `json:"correct"`
	Score   int    `json:"score"`
	Reason  string `json:"reason"`

	// IllegalMoveIndex is the 1-based position of the first move that could
	// not be played, or 0.
	IllegalMoveIndex int    `json:"illegal_move_index,omitempty"`
	IllegalMove      string `json:"illegal_move,omitempty"`

	ExpectedSolution  []string  `json:"expected_solution"`
	PlayerMoves       []string  `json:"player_moves"`
	PlayerFinalFEN    string    `json:"player_final_fen"`
	ReferenceFinalFEN string    `json:"reference_final_fen"`
	Penalties         Penalties `json:"penalties"`
}

func (o Outcome) clone() Outcome {
	o.ExpectedSolution = append([]string(nil), o.ExpectedSolution...)
	o.PlayerMoves = append([]string(nil), o.PlayerMoves...)
	return o
}

// Scorer judges player submissions against stored puzzles.
type Scorer struct {
	cfg *config.ScoringConfig
}

// NewScorer creates a Scorer. A nil config selects the defaults.
func NewScorer(cfg *config.ScoringConfig) *Scorer {
	if cfg == nil {
		cfg = config.NewScoringConfig()
	}
	return &Scorer{cfg: cfg}
}

// Score replays the submission and the stored solution independently from
// the puzzle's start position and compares where they end up. The stored
// final FEN is never trusted.
//
// An incorrect submission is reported in the Outcome, not as an error. An
// error wrapping errors.ErrCorruptPuzzle means the puzzle itself no longer
// replays.
func (s *Scorer) Score(p *Puzzle, submitted []string, elapsedMs uint64) (*Outcome, error) {
	if p == nil {
		return nil, errors.Wrap(errors.ErrCorruptPuzzle, "nil puzzle")
	}

	start, err := engine.NewBoardFromFEN(p.StartFEN)
	if err != nil {
		return nil, fmt.Errorf("puzzle %s start position: %v: %w", p.ID, err, errors.ErrCorruptPuzzle)
	}

	reference, merr := replay(start, p.Solution)
	if merr != nil {
		return nil, fmt.Errorf("puzzle %s solution: %v: %w", p.ID, merr, errors.ErrCorruptPuzzle)
	}

	player, merr := replay(start, submitted)

	out := &Outcome{
		ExpectedSolution:  reference.moves,
		PlayerMoves:       player.moves,
		PlayerFinalFEN:    engine.BoardToFEN(player.board),
		ReferenceFinalFEN: engine.BoardToFEN(reference.board),
	}

	switch {
	case merr != nil:
		out.IllegalMoveIndex = merr.Index + 1
		out.IllegalMove = merr.MoveText
		format := reasonIllegal
		if merr.IsParseFailure() {
			format = reasonUnreadable
		}
		out.Reason = fmt.Sprintf(format, out.IllegalMoveIndex, merr.MoveText)
	case !engine.SamePosition(player.board, reference.board):
		out.Reason = reasonMismatch
	default:
		out.Correct = true
		out.Penalties = s.penalties(p.Metadata.Difficulty, elapsedMs, len(submitted)-len(p.Solution))
		out.Score = max(0, s.cfg.Base-out.Penalties.Difficulty-out.Penalties.Time-out.Penalties.MoveCount)
		out.Reason = reasonCorrect
	}
	return out, nil
}

// penalties computes the deductions for a correct attempt. Each one is
// capped at the base score.
func (s *Scorer) penalties(difficulty int, elapsedMs uint64, extraMoves int) Penalties {
	limit := max(0, s.cfg.Base)

	var p Penalties
	p.Difficulty = capped(difficulty-1, s.cfg.DifficultyStep, limit)

	free := uint64(max(0, s.cfg.FreeSeconds)) * 1000
	if elapsedMs > free {
		p.Time = int(min((elapsedMs-free)/1000, uint64(limit)))
	}

	p.MoveCount = capped(extraMoves, s.cfg.ExtraMovePenalty, limit)
	return p
}

// capped returns units*step, clamped to [0, limit].
func capped(units, step, limit int) int {
	if units <= 0 || step <= 0 {
		return 0
	}
	if units > limit/step {
		return limit
	}
	return units * step
}
