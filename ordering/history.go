package ordering

import (
	"sync/atomic"

	"github.com/asebrech/gomoku/board"
)

// HistoryTable is a cell-indexed cutoff counter used as a soft ordering
// hint across the whole search (persists across root iterations, unlike
// KillerTable). It is shared by every Lazy-SMP root worker, so every
// entry is an atomic.Int32 and every update goes through atomic
// add/store rather than a plain read-modify-write, per spec.md §5's
// "shared history only with atomic updates".
type HistoryTable struct {
	size     int
	scores   []atomic.Int32
	iters    atomic.Int32
	ageEvery int
}

// NewHistoryTable allocates a table for a board of the given size.
// ageEvery is the number of root iterations between halvings (spec.md's
// "aged by right-shift every K root iterations"); 0 disables aging.
func NewHistoryTable(size int, ageEvery int) *HistoryTable {
	return &HistoryTable{size: size, scores: make([]atomic.Int32, size*size), ageEvery: ageEvery}
}

func (h *HistoryTable) index(m board.Move) int { return m.Row*h.size + m.Col }

// Add records a cutoff at depth for move m: history[m] += depth^2.
func (h *HistoryTable) Add(m board.Move, depth int) {
	d := int32(depth)
	h.scores[h.index(m)].Add(d * d)
}

// Score returns the accumulated history score for a move.
func (h *HistoryTable) Score(m board.Move) int32 { return h.scores[h.index(m)].Load() }

// Clear zeroes every entry, used when the engine's TT/history is reset.
func (h *HistoryTable) Clear() {
	for i := range h.scores {
		h.scores[i].Store(0)
	}
	h.iters.Store(0)
}

// TickIteration is called once per completed root iteration; every
// ageEvery calls it halves every entry to bound unbounded growth without
// discarding the ordering signal outright.
func (h *HistoryTable) TickIteration() {
	iters := h.iters.Add(1)
	if h.ageEvery <= 0 || int(iters)%h.ageEvery != 0 {
		return
	}
	for i := range h.scores {
		for {
			old := h.scores[i].Load()
			if h.scores[i].CompareAndSwap(old, old>>1) {
				break
			}
		}
	}
}
