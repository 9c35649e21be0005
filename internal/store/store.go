// Package store persists puzzles and attempts.
package store

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chesspuzzle-go/internal/puzzle"
)

// PuzzleStore saves and loads verified puzzles.
type PuzzleStore interface {
	// Save stores a copy of p under a new ID and returns the stored copy.
	Save(ctx context.Context, p *puzzle.Puzzle) (*puzzle.Puzzle, error)

	// Load returns the puzzle with the given ID. Unknown IDs give an error
	// wrapping errors.ErrPuzzleNotFound.
	Load(ctx context.Context, id string) (*puzzle.Puzzle, error)

	// List returns every puzzle, oldest first.
	List(ctx context.Context) ([]*puzzle.Puzzle, error)
}

// AttemptStore records solve attempts. Attempts are never modified once
// recorded.
type AttemptStore interface {
	RecordAttempt(ctx context.Context, a *puzzle.Attempt) (*puzzle.Attempt, error)
	Attempts(ctx context.Context, puzzleID string) ([]*puzzle.Attempt, error)
}

// Store is both a PuzzleStore and an AttemptStore.
type Store interface {
	PuzzleStore
	AttemptStore
}

// Clock returns the current time. Stores stamp records with it.
type Clock func() time.Time

func newID() string {
	return uuid.NewString()
}

// validID reports whether id could have been issued by a store.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func stampPuzzle(p *puzzle.Puzzle, now Clock) *puzzle.Puzzle {
	out := p.Clone()
	out.ID = newID()
	if out.CreatedAt.IsZero() {
		out.CreatedAt = now().UTC()
	}
	return out
}

func stampAttempt(a *puzzle.Attempt, now Clock) *puzzle.Attempt {
	out := a.Clone()
	out.ID = newID()
	if out.SubmittedAt.IsZero() {
		out.SubmittedAt = now().UTC()
	}
	return out
}

func sortPuzzles(ps []*puzzle.Puzzle) {
	sort.Slice(ps, func(i, j int) bool {
		if !ps[i].CreatedAt.Equal(ps[j].CreatedAt) {
			return ps[i].CreatedAt.Before(ps[j].CreatedAt)
		}
		return ps[i].ID < ps[j].ID
	})
}
