package board

import "fmt"

// Move is a cell addressed by 0-indexed row and column.
type Move struct {
	Row, Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// MoveRecord carries everything needed to undo a single make_move call:
// the stone placed, any stones captured by it, the hash and pattern
// counts immediately before the move, and the capture totals before the
// move. Undo is a pure restore from this record, never a recomputation.
type MoveRecord struct {
	Move            Move
	Color           Color
	Captured        []Move
	PrevHash        uint64
	PrevCaptures    [2]int
	PatternSnapshot [2]PatternCounts
}
