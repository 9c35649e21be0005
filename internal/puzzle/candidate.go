package puzzle

import (
	"encoding/json"
	"strings"

	"github.com/lgbarn/chesspuzzle-go/internal/errors"
)

// ExtractCandidate reads the first JSON object out of generator output.
// Markdown code fences and any prose before the object are skipped; text
// after the object is ignored. The moves are not checked here.
func ExtractCandidate(text string) (*Candidate, error) {
	text = stripFences(text)

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, errors.Wrap(errors.ErrParseFailure, "no JSON object in generator output")
	}

	var c Candidate
	dec := json.NewDecoder(strings.NewReader(text[start:]))
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrapf(errors.ErrParseFailure, "decode candidate: %v", err)
	}
	if len(c.Moves) == 0 {
		return nil, errors.Wrap(errors.ErrParseFailure, "candidate has no moves")
	}
	return &c, nil
}

// stripFences drops Markdown fence lines such as ``` and ```json.
func stripFences(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "```") {
			continue
		}
		kept = append(kept, l)
	}
	return strings.Join(kept, "\n")
}
