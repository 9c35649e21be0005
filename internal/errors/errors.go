// Package errors provides sentinel errors and error types for the puzzle core.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed position string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrParseFailure indicates move or candidate text that could not be parsed.
	ErrParseFailure = errors.New("parse failure")

	// ErrAmbiguousMove indicates algebraic move text matching several legal moves.
	ErrAmbiguousMove = fmt.Errorf("%w: ambiguous move", ErrParseFailure)

	// ErrNoMatchingMove indicates algebraic move text matching no legal move.
	ErrNoMatchingMove = fmt.Errorf("%w: no matching legal move", ErrParseFailure)

	// ErrMoveCount indicates a move list whose length is out of range or
	// disagrees with its declared count.
	ErrMoveCount = errors.New("wrong move count")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCorruptPuzzle indicates persisted puzzle data that no longer replays.
	ErrCorruptPuzzle = errors.New("corrupt puzzle data")

	// ErrPuzzleNotFound indicates an unknown puzzle identifier.
	ErrPuzzleNotFound = errors.New("puzzle not found")
)

// MoveError wraps errors with move context: the ply index, the raw move
// text and the position it was tried on. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Index    int    // 0-based index of the move in its list
	MoveText string // The move text that caused the error
	FEN      string // Position the move was tried on (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	parts := []string{fmt.Sprintf("move %d", e.Index+1)}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("%q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// IsParseFailure reports whether the move could not be read at all, as
// opposed to being read and found illegal.
func (e *MoveError) IsParseFailure() bool {
	return errors.Is(e.Err, ErrParseFailure)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is forwards to the standard library so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As forwards to the standard library so callers need only this package.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
