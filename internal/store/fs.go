package store

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/lgbarn/chesspuzzle-go/internal/errors"
	"github.com/lgbarn/chesspuzzle-go/internal/puzzle"
)

const (
	puzzleDir  = "puzzles"
	attemptDir = "attempts"
)

// FS is a Store backed by a directory:
//
//	<dir>/puzzles/<id>.json     one puzzle per file
//	<dir>/attempts/<id>.jsonl   attempts for puzzle <id>, one per line
//
// It is safe for concurrent use within one process.
type FS struct {
	dir string
	mu  sync.Mutex
	now Clock
}

// NewFS opens a file store rooted at dir, creating its layout if needed.
func NewFS(dir string) (*FS, error) {
	for _, sub := range []string{puzzleDir, attemptDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	return &FS{dir: dir, now: time.Now}, nil
}

// WithClock sets the clock used to stamp records.
func (s *FS) WithClock(now Clock) *FS {
	s.now = now
	return s
}

func (s *FS) puzzlePath(id string) string {
	return filepath.Join(s.dir, puzzleDir, id+".json")
}

func (s *FS) attemptPath(id string) string {
	return filepath.Join(s.dir, attemptDir, id+".jsonl")
}

// Save implements PuzzleStore. The file is written to a temporary name and
// renamed into place.
func (s *FS) Save(ctx context.Context, p *puzzle.Puzzle) (*puzzle.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stored := stampPuzzle(p, s.now)

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode puzzle: %w", err)
	}

	path := s.puzzlePath(stored.ID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return nil, fmt.Errorf("write puzzle: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("write puzzle: %w", err)
	}
	return stored, nil
}

// Load implements PuzzleStore.
func (s *FS) Load(ctx context.Context, id string) (*puzzle.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, errors.Wrapf(errors.ErrPuzzleNotFound, "id %q", id)
	}
	return s.readPuzzle(s.puzzlePath(id), id)
}

func (s *FS) readPuzzle(path, id string) (*puzzle.Puzzle, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(errors.ErrPuzzleNotFound, "id %q", id)
	}
	if err != nil {
		return nil, fmt.Errorf("read puzzle %s: %w", id, err)
	}

	var p puzzle.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode puzzle %s: %v: %w", id, err, errors.ErrCorruptPuzzle)
	}
	return &p, nil
}

// List implements PuzzleStore.
func (s *FS) List(ctx context.Context) ([]*puzzle.Puzzle, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, puzzleDir))
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}

	var out []*puzzle.Puzzle
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		id, ok := strings.CutSuffix(e.Name(), ".json")
		if e.IsDir() || !ok || !validID(id) {
			continue
		}
		p, err := s.readPuzzle(filepath.Join(s.dir, puzzleDir, e.Name()), id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	sortPuzzles(out)
	return out, nil
}

// RecordAttempt implements AttemptStore.
func (s *FS) RecordAttempt(ctx context.Context, a *puzzle.Attempt) (*puzzle.Attempt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.exists(a.PuzzleID); err != nil {
		return nil, err
	}
	stored := stampAttempt(a, s.now)

	line, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encode attempt: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.attemptPath(stored.PuzzleID), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open attempt log: %w", err)
	}
	if _, err := f.Write(line); err != nil {
		f.Close()
		return nil, fmt.Errorf("append attempt: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("append attempt: %w", err)
	}
	return stored, nil
}

// Attempts implements AttemptStore.
func (s *FS) Attempts(ctx context.Context, puzzleID string) ([]*puzzle.Attempt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.exists(puzzleID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.attemptPath(puzzleID))
	if os.IsNotExist(err) {
		return []*puzzle.Attempt{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open attempt log: %w", err)
	}
	defer f.Close()

	out := []*puzzle.Attempt{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		if len(strings.TrimSpace(scanner.Text())) == 0 {
			continue
		}
		var a puzzle.Attempt
		if err := json.Unmarshal(scanner.Bytes(), &a); err != nil {
			return nil, fmt.Errorf("attempt log %s line %d: %w", puzzleID, n, err)
		}
		out = append(out, &a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read attempt log: %w", err)
	}
	return out, nil
}

func (s *FS) exists(id string) error {
	if !validID(id) {
		return errors.Wrapf(errors.ErrPuzzleNotFound, "id %q", id)
	}
	if _, err := os.Stat(s.puzzlePath(id)); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(errors.ErrPuzzleNotFound, "id %q", id)
		}
		return fmt.Errorf("stat puzzle %s: %w", id, err)
	}
	return nil
}
