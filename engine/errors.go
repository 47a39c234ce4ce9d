// Package engine wires board, zobrist, tt, ordering, eval, and search
// together behind the public API spec.md §6 names: Engine, Position,
// FindBestMove, ClearTT, TTStats.
package engine

import (
	"errors"
	"fmt"

	"github.com/asebrech/gomoku/board"
)

// ErrInvalidConfig is returned by New when constructor arguments fall
// outside the documented ranges.
var ErrInvalidConfig = errors.New("engine: invalid config")

// ErrInternalInvariant wraps a failed self-check (hash or pattern-count
// cross-check); it is fatal and never recovered internally.
type ErrInternalInvariant struct {
	Context string
}

func (e *ErrInternalInvariant) Error() string {
	return "engine: internal invariant violated: " + e.Context
}

// CheckInvariants cross-checks pos's incrementally maintained hash and
// pattern counts against a full rescan, returning *ErrInternalInvariant
// on divergence. Tests call this after make/undo sequences; the driver
// never calls it on the hot path.
func CheckInvariants(pos *Position) error {
	if got, want := pos.Hash(), pos.RecomputeHash(); got != want {
		return &ErrInternalInvariant{Context: fmt.Sprintf("hash %d does not match recomputed %d", got, want)}
	}
	got := [2]board.PatternCounts{pos.PatternCounts(board.Max), pos.PatternCounts(board.Min)}
	want := pos.RecomputePatternCounts()
	if got != want {
		return &ErrInternalInvariant{Context: fmt.Sprintf("pattern counts %v do not match recomputed %v", got, want)}
	}
	return nil
}
