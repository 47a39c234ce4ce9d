// Package ordering produces the per-node candidate move list the search
// driver iterates: TT hint first, then killers, then a weighted blend of
// tactical score, history, and static position value, pruned to a
// depth-dependent top-K.
package ordering

import "github.com/asebrech/gomoku/board"

// KillerTable holds two killer-move slots per ply. Slot 0 is always the
// most recently recorded killer at that ply.
type KillerTable struct {
	slots [][2]board.Move
	valid [][2]bool
}

// NewKillerTable allocates a fresh table for a search of up to maxPly
// plies. It is recreated per top-level search call, never reused across
// searches.
func NewKillerTable(maxPly int) *KillerTable {
	return &KillerTable{
		slots: make([][2]board.Move, maxPly+1),
		valid: make([][2]bool, maxPly+1),
	}
}

// Record pushes a new killer at ply, promoting the previous slot-0
// killer to slot-1. A move already present at this ply is not
// duplicated.
func (k *KillerTable) Record(ply int, m board.Move) {
	if ply < 0 || ply >= len(k.slots) {
		return
	}
	if k.valid[ply][0] && k.slots[ply][0] == m {
		return
	}
	if k.valid[ply][1] && k.slots[ply][1] == m {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.valid[ply][1] = k.valid[ply][0]
	k.slots[ply][0] = m
	k.valid[ply][0] = true
}

// Killers returns the two killer moves for a ply (validity flags
// indicate which slots actually hold a move).
func (k *KillerTable) Killers(ply int) (board.Move, bool, board.Move, bool) {
	if ply < 0 || ply >= len(k.slots) {
		return board.Move{}, false, board.Move{}, false
	}
	return k.slots[ply][0], k.valid[ply][0], k.slots[ply][1], k.valid[ply][1]
}
