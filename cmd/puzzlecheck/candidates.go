package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chesspuzzle-go/internal/puzzle"
)

// readCandidates reads a JSON array of candidates, or one candidate per
// line. Blank lines are skipped.
func readCandidates(r io.Reader) ([]*puzzle.Candidate, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var out []*puzzle.Candidate
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("decode candidate array: %w", err)
		}
		return out, nil
	}

	var out []*puzzle.Candidate
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var c puzzle.Candidate
		if err := json.Unmarshal(line, &c); err != nil {
			return nil, fmt.Errorf("candidate on line %d: %w", n, err)
		}
		out = append(out, &c)
	}
	return out, scanner.Err()
}
