package puzzle

import (
	"fmt"

	"github.com/lgbarn/chesspuzzle-go/internal/config"
	"github.com/lgbarn/chesspuzzle-go/internal/engine"
	"github.com/lgbarn/chesspuzzle-go/internal/errors"
)

// Verification is the result of a successful verification.
type Verification struct {
	StartFEN       string        `json:"start_fen"`
	CanonicalMoves []string      `json:"moves"`
	SAN            []string      `json:"san"`
	FinalFEN       string        `json:"final_fen"`
	FinalStatus    engine.Status `json:"final_status"`
}

// Verifier checks that generated move sequences are legal from the
// standard starting position.
type Verifier struct {
	cfg *config.VerifyConfig
}

// NewVerifier creates a Verifier. A nil config selects the defaults.
func NewVerifier(cfg *config.VerifyConfig) *Verifier {
	if cfg == nil {
		cfg = config.NewVerifyConfig()
	}
	return &Verifier{cfg: cfg}
}

// Verify checks the move count, then replays every move from the starting
// position. The first unreadable or illegal move rejects the whole list with
// an *errors.MoveError.
func (v *Verifier) Verify(raw []string) (*Verification, error) {
	if n := len(raw); n < v.cfg.MinMoves || n > v.cfg.MaxMoves {
		return nil, fmt.Errorf("%d moves, want %d to %d: %w",
			n, v.cfg.MinMoves, v.cfg.MaxMoves, errors.ErrMoveCount)
	}

	l, merr := replay(engine.NewInitialBoard(), raw)
	if merr != nil {
		return nil, merr
	}

	return &Verification{
		StartFEN:       engine.InitialFEN,
		CanonicalMoves: l.moves,
		SAN:            l.san,
		FinalFEN:       engine.BoardToFEN(l.board),
		FinalStatus:    engine.PositionStatus(l.board),
	}, nil
}

// VerifyCandidate verifies a generator candidate. A declared move count that
// disagrees with the move list is rejected before any move is replayed.
func (v *Verifier) VerifyCandidate(c *Candidate) (*Verification, error) {
	if c == nil {
		return nil, errors.Wrap(errors.ErrParseFailure, "nil candidate")
	}
	if c.MoveCount != len(c.Moves) {
		return nil, fmt.Errorf("declared %d moves but listed %d: %w",
			c.MoveCount, len(c.Moves), errors.ErrMoveCount)
	}
	return v.Verify(c.Moves)
}

// NewPuzzle builds an unsaved puzzle from a verification and metadata.
func NewPuzzle(v *Verification, meta Metadata) *Puzzle {
	return &Puzzle{
		StartFEN: v.StartFEN,
		Solution: append([]string(nil), v.CanonicalMoves...),
		FinalFEN: v.FinalFEN,
		Metadata: meta.Clone(),
	}
}
