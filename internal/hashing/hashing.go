// Package hashing provides position keys and duplicate final position
// detection for verified puzzles.
package hashing

import (
	"github.com/lgbarn/chesspuzzle-go/internal/chess"
)

// DuplicateDetector tracks seen final positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by position key
	hashTable map[uint64][]Signature
	// useExactMatch also requires equal move counts
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits recorded signatures; 0 means unlimited
	maxCapacity int
	// entryCount is the number of recorded signatures
	entryCount int
}

// Signature identifies a recorded position.
type Signature struct {
	// Key is the Zobrist key of the position
	Key uint64
	// WeakHash is a fast checksum for collision checks
	WeakHash uint64
	// MoveCount is the number of plies that led to the position
	MoveCount int
	// Label names the first puzzle or candidate that reached it
	Label string
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks whether the position was seen before. If it was, the
// label recorded with the earlier sighting is returned with true. Otherwise
// the position is recorded under label, unless the detector is full.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, moveCount int, label string) (string, bool) {
	if board == nil {
		return "", false
	}

	sig := Signature{
		Key:       PositionKey(board),
		WeakHash:  WeakHash(board),
		MoveCount: moveCount,
		Label:     label,
	}

	for _, existing := range d.hashTable[sig.Key] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.Label, true
		}
	}

	if d.IsFull() {
		return "", false
	}
	d.hashTable[sig.Key] = append(d.hashTable[sig.Key], sig)
	d.entryCount++
	return "", false
}

// signaturesMatch checks if two signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Key != b.Key || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.MoveCount != b.MoveCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.entryCount
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.entryCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
	d.entryCount = 0
}
