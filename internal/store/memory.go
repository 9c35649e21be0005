package store

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chesspuzzle-go/internal/errors"
	"github.com/lgbarn/chesspuzzle-go/internal/puzzle"
)

// Memory is a Store that keeps everything in process memory.
// It is safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	puzzles  map[string]*puzzle.Puzzle
	attempts map[string][]*puzzle.Attempt
	now      Clock
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		puzzles:  make(map[string]*puzzle.Puzzle),
		attempts: make(map[string][]*puzzle.Attempt),
		now:      time.Now,
	}
}

// WithClock sets the clock used to stamp records.
func (m *Memory) WithClock(now Clock) *Memory {
	m.now = now
	return m
}

// Save implements PuzzleStore.
func (m *Memory) Save(ctx context.Context, p *puzzle.Puzzle) (*puzzle.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stored := stampPuzzle(p, m.now)

	m.mu.Lock()
	m.puzzles[stored.ID] = stored
	m.mu.Unlock()

	return stored.Clone(), nil
}

// Load implements PuzzleStore.
func (m *Memory) Load(ctx context.Context, id string) (*puzzle.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	p, ok := m.puzzles[id]
	m.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(errors.ErrPuzzleNotFound, "id %q", id)
	}
	return p.Clone(), nil
}

// List implements PuzzleStore.
func (m *Memory) List(ctx context.Context) ([]*puzzle.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	snapshot := maps.Clone(m.puzzles)
	m.mu.RUnlock()

	out := make([]*puzzle.Puzzle, 0, len(snapshot))
	for _, p := range snapshot {
		out = append(out, p.Clone())
	}
	sortPuzzles(out)
	return out, nil
}

// RecordAttempt implements AttemptStore.
func (m *Memory) RecordAttempt(ctx context.Context, a *puzzle.Attempt) (*puzzle.Attempt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stored := stampAttempt(a, m.now)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.puzzles[stored.PuzzleID]; !ok {
		return nil, errors.Wrapf(errors.ErrPuzzleNotFound, "id %q", stored.PuzzleID)
	}
	m.attempts[stored.PuzzleID] = append(m.attempts[stored.PuzzleID], stored)
	return stored.Clone(), nil
}

// Attempts implements AttemptStore.
func (m *Memory) Attempts(ctx context.Context, puzzleID string) ([]*puzzle.Attempt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.puzzles[puzzleID]; !ok {
		return nil, errors.Wrapf(errors.ErrPuzzleNotFound, "id %q", puzzleID)
	}
	recorded := m.attempts[puzzleID]
	out := make([]*puzzle.Attempt, len(recorded))
	for i, a := range recorded {
		out[i] = a.Clone()
	}
	return out, nil
}
