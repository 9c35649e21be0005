// Package puzzle verifies generated move sequences into puzzles and scores
// player attempts against them.
package puzzle

import (
	"time"

	"golang.org/x/exp/maps"
)

// Metadata is descriptive puzzle data. Only Difficulty affects scoring.
type Metadata struct {
	Title      string            `json:"title,omitempty"`
	Hint       string            `json:"hint,omitempty"`
	Tags       []string          `json:"tags,omitempty"`
	Difficulty int               `json:"difficulty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// Clone returns a deep copy of the metadata.
func (m Metadata) Clone() Metadata {
	out := m
	if m.Tags != nil {
		out.Tags = append([]string(nil), m.Tags...)
	}
	if m.Extra != nil {
		out.Extra = maps.Clone(m.Extra)
	}
	return out
}

// Puzzle is a verified move sequence from a start position.
type Puzzle struct {
	ID        string    `json:"id"`
	StartFEN  string    `json:"start_fen"`
	Solution  []string  `json:"solution"`
	FinalFEN  string    `json:"final_fen"`
	Metadata  Metadata  `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a deep copy of the puzzle.
func (p *Puzzle) Clone() *Puzzle {
	if p == nil {
		return nil
	}
	out := *p
	out.Solution = append([]string(nil), p.Solution...)
	out.Metadata = p.Metadata.Clone()
	return &out
}

// Attempt records one player submission and its outcome.
type Attempt struct {
	ID          string    `json:"id"`
	PuzzleID    string    `json:"puzzle_id"`
	Moves       []string  `json:"moves"`
	ElapsedMs   uint64    `json:"elapsed_ms"`
	Outcome     Outcome   `json:"outcome"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Clone returns a deep copy of the attempt.
func (a *Attempt) Clone() *Attempt {
	if a == nil {
		return nil
	}
	out := *a
	out.Moves = append([]string(nil), a.Moves...)
	out.Outcome = a.Outcome.clone()
	return &out
}

// Candidate is a move sequence proposed by the generator, before
// verification.
type Candidate struct {
	MoveCount  int      `json:"move_count"`
	Moves      []string `json:"moves"`
	Title      string   `json:"title,omitempty"`
	Hint       string   `json:"hint,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Difficulty int      `json:"difficulty,omitempty"`
}

// Metadata returns the candidate's descriptive fields.
func (c *Candidate) Metadata() Metadata {
	return Metadata{
		Title:      c.Title,
		Hint:       c.Hint,
		Tags:       append([]string(nil), c.Tags...),
		Difficulty: c.Difficulty,
	}
}
