// Package service ties puzzle verification and scoring to a store.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/chesspuzzle-go/internal/config"
	"github.com/lgbarn/chesspuzzle-go/internal/engine"
	"github.com/lgbarn/chesspuzzle-go/internal/errors"
	"github.com/lgbarn/chesspuzzle-go/internal/hashing"
	"github.com/lgbarn/chesspuzzle-go/internal/puzzle"
	"github.com/lgbarn/chesspuzzle-go/internal/store"
)

// Service creates puzzles from generator candidates and scores attempts.
// It is safe for concurrent use when its store is.
type Service struct {
	verifier *puzzle.Verifier
	scorer   *puzzle.Scorer
	store    store.Store
	batch    *config.BatchConfig
	seen     *hashing.ThreadSafeDuplicateDetector
	logger   *zap.Logger
}

// New creates a Service. A nil logger disables logging.
func New(cfg *config.Config, st store.Store, logger *zap.Logger) (*Service, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("nil store: %w", errors.ErrInvalidConfig)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		verifier: puzzle.NewVerifier(cfg.Verify),
		scorer:   puzzle.NewScorer(cfg.Scoring),
		store:    st,
		batch:    cfg.Batch,
		seen:     hashing.NewThreadSafeDuplicateDetector(false, 0),
		logger:   logger,
	}, nil
}

// LoadKnownPositions records the final positions of stored puzzles so
// that new puzzles repeating one of them are reported.
func (s *Service) LoadKnownPositions(ctx context.Context) error {
	all, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range all {
		board, err := engine.NewBoardFromFEN(p.FinalFEN)
		if err != nil {
			s.logger.Warn("stored puzzle has unreadable final position",
				zap.String("puzzle_id", p.ID), zap.Error(err))
			continue
		}
		s.seen.CheckAndAdd(board, len(p.Solution), p.ID)
	}
	s.logger.Debug("loaded known puzzle positions", zap.Int("count", s.seen.UniqueCount()))
	return nil
}

// Verify checks a candidate without persisting anything.
func (s *Service) Verify(c *puzzle.Candidate) (*puzzle.Verification, error) {
	v, err := s.verifier.VerifyCandidate(c)
	if err != nil {
		s.logRejection(c, err)
		return nil, err
	}
	return v, nil
}

// CreatePuzzle verifies a candidate and persists the canonical solution,
// final position and metadata. Rejected candidates return the verification
// error unchanged.
func (s *Service) CreatePuzzle(ctx context.Context, c *puzzle.Candidate) (*puzzle.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err := s.Verify(c)
	if err != nil {
		return nil, err
	}

	saved, err := s.store.Save(ctx, puzzle.NewPuzzle(v, c.Metadata()))
	if err != nil {
		s.logger.Error("failed to save puzzle", zap.Error(err))
		return nil, fmt.Errorf("save puzzle: %w", err)
	}

	fields := []zap.Field{
		zap.String("puzzle_id", saved.ID),
		zap.Strings("solution", saved.Solution),
		zap.String("final_fen", saved.FinalFEN),
		zap.Stringer("final_status", v.FinalStatus),
	}
	if board, err := engine.NewBoardFromFEN(saved.FinalFEN); err == nil {
		if earlier, dup := s.seen.CheckAndAdd(board, len(saved.Solution), saved.ID); dup {
			s.logger.Warn("puzzle repeats a known final position",
				append(fields, zap.String("duplicate_of", earlier))...)
			return saved, nil
		}
	}
	s.logger.Info("puzzle created", fields...)
	return saved, nil
}

// CreateFromText extracts a candidate from raw generator output and
// creates a puzzle from it.
func (s *Service) CreateFromText(ctx context.Context, text string) (*puzzle.Puzzle, error) {
	c, err := puzzle.ExtractCandidate(text)
	if err != nil {
		s.logger.Info("generator output rejected", zap.Error(err), zap.Int("length", len(text)))
		return nil, err
	}
	return s.CreatePuzzle(ctx, c)
}

func (s *Service) logRejection(c *puzzle.Candidate, err error) {
	fields := []zap.Field{zap.Error(err), zap.String("kind", ErrorKind(err))}
	if c != nil {
		fields = append(fields, zap.Int("declared_moves", c.MoveCount), zap.Strings("moves", c.Moves))
	}
	var merr *errors.MoveError
	if errors.As(err, &merr) {
		fields = append(fields, zap.Int("move_index", merr.Index), zap.String("move", merr.MoveText))
	}
	s.logger.Info("puzzle candidate rejected", fields...)
}

// SolveReport is what a player sees after submitting an attempt.
type SolveReport struct {
	PuzzleID   string         `json:"puzzle_id"`
	AttemptID  string         `json:"attempt_id"`
	Title      string         `json:"title,omitempty"`
	Hint       string         `json:"hint,omitempty"`
	Difficulty int            `json:"difficulty"`
	Outcome    puzzle.Outcome `json:"outcome"`
}

// Solve scores a submission against a stored puzzle and records the
// attempt. A puzzle that no longer replays yields an error wrapping
// errors.ErrCorruptPuzzle and no attempt is recorded.
func (s *Service) Solve(ctx context.Context, id string, moves []string, elapsedMs uint64) (*SolveReport, error) {
	p, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	outcome, err := s.scorer.Score(p, moves, elapsedMs)
	if err != nil {
		s.logger.Error("puzzle failed integrity check",
			zap.String("puzzle_id", id), zap.Error(err))
		return nil, err
	}

	attempt, err := s.store.RecordAttempt(ctx, &puzzle.Attempt{
		PuzzleID:  p.ID,
		Moves:     moves,
		ElapsedMs: elapsedMs,
		Outcome:   *outcome,
	})
	if err != nil {
		s.logger.Error("failed to record attempt", zap.String("puzzle_id", id), zap.Error(err))
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	s.logger.Info("puzzle attempt scored",
		zap.String("puzzle_id", p.ID),
		zap.String("attempt_id", attempt.ID),
		zap.Bool("correct", outcome.Correct),
		zap.Int("score", outcome.Score),
		zap.Duration("elapsed", time.Duration(elapsedMs)*time.Millisecond),
		zap.Int("illegal_move_index", outcome.IllegalMoveIndex),
	)

	return &SolveReport{
		PuzzleID:   p.ID,
		AttemptID:  attempt.ID,
		Title:      p.Metadata.Title,
		Hint:       p.Metadata.Hint,
		Difficulty: p.Metadata.Difficulty,
		Outcome:    *outcome,
	}, nil
}

// Puzzle returns a stored puzzle.
func (s *Service) Puzzle(ctx context.Context, id string) (*puzzle.Puzzle, error) {
	return s.store.Load(ctx, id)
}

// Attempts returns the attempts recorded for a puzzle.
func (s *Service) Attempts(ctx context.Context, id string) ([]*puzzle.Attempt, error) {
	return s.store.Attempts(ctx, id)
}

// ErrorKind names the class of a service error for reports.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, errors.ErrMoveCount):
		return "move_count"
	case errors.Is(err, errors.ErrIllegalMove):
		return "illegal_move"
	case errors.Is(err, errors.ErrParseFailure):
		return "parse_failure"
	case errors.Is(err, errors.ErrPuzzleNotFound):
		return "not_found"
	case errors.Is(err, errors.ErrCorruptPuzzle):
		return "corrupt_puzzle"
	case errors.Is(err, errors.ErrInvalidConfig):
		return "invalid_config"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
