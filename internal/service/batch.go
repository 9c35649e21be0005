package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/lgbarn/chesspuzzle-go/internal/engine"
	"github.com/lgbarn/chesspuzzle-go/internal/errors"
	"github.com/lgbarn/chesspuzzle-go/internal/hashing"
	"github.com/lgbarn/chesspuzzle-go/internal/puzzle"
	"github.com/lgbarn/chesspuzzle-go/internal/worker"
)

// BatchResult is the verdict on one candidate of a batch.
type BatchResult struct {
	Index        int                  `json:"index"`
	Accepted     bool                 `json:"accepted"`
	Verification *puzzle.Verification `json:"verification,omitempty"`
	Error        string               `json:"error,omitempty"`
	Kind         string               `json:"kind,omitempty"`

	// MoveIndex is the 0-based index of the rejected move, if any.
	MoveIndex *int `json:"move_index,omitempty"`

	// DuplicateOf is the index of an earlier accepted candidate that ends
	// in the same position.
	DuplicateOf *int `json:"duplicate_of,omitempty"`
}

// VerifyBatch verifies candidates on the worker pool. Results are in input
// order. Nothing is persisted. Candidates not reached before ctx is done
// are reported with kind "canceled".
func (s *Service) VerifyBatch(ctx context.Context, candidates []*puzzle.Candidate) []BatchResult {
	items := make([]worker.WorkItem, len(candidates))
	for i, c := range candidates {
		items[i] = worker.WorkItem{Candidate: c, Index: i}
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		v, err := s.verifier.VerifyCandidate(item.Candidate)
		return worker.ProcessResult{Index: item.Index, Verification: v, Error: err}
	}, worker.WithWorkers(s.batch.Workers), worker.WithBufferSize(s.batch.BufferSize))
	processed := pool.Map(ctx, items)

	var dups *hashing.DuplicateDetector
	if s.batch.FlagDuplicates {
		dups = hashing.NewDuplicateDetector(false, 0)
	}

	results := make([]BatchResult, len(processed))
	accepted := 0
	for i, r := range processed {
		results[i] = BatchResult{Index: i}
		if r.Error != nil {
			results[i].Error = r.Error.Error()
			results[i].Kind = ErrorKind(r.Error)
			var merr *errors.MoveError
			if errors.As(r.Error, &merr) {
				idx := merr.Index
				results[i].MoveIndex = &idx
			}
			continue
		}

		accepted++
		results[i].Accepted = true
		results[i].Verification = r.Verification
		if dups == nil {
			continue
		}
		board, err := engine.NewBoardFromFEN(r.Verification.FinalFEN)
		if err != nil {
			continue
		}
		if earlier, dup := dups.CheckAndAdd(board, len(r.Verification.CanonicalMoves), strconv.Itoa(i)); dup {
			first, _ := strconv.Atoi(earlier)
			results[i].DuplicateOf = &first
		}
	}

	s.logger.Info("batch verified",
		zap.Int("candidates", len(candidates)),
		zap.Int("accepted", accepted),
		zap.Int("duplicates", duplicateCount(dups)),
		zap.Int("workers", pool.NumWorkers()),
	)
	return results
}

func duplicateCount(d *hashing.DuplicateDetector) int {
	if d == nil {
		return 0
	}
	return d.DuplicateCount()
}
