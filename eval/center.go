package eval

import (
	"math"
	"sync"

	"github.com/asebrech/gomoku/board"
)

// centerCache holds, per board size, a static positional bonus per cell: highest at
// the board's center, falling off with distance, most negative at the
// corners. This is spec.md's S_pos(m), shared by the evaluator's
// position bias and by ordering's move-priority blend.
type centerCache struct {
	mu  sync.Mutex
	byN map[int][]float64
}

var centers = &centerCache{byN: make(map[int][]float64)}

func centerTableFor(size int) []float64 {
	centers.mu.Lock()
	defer centers.mu.Unlock()
	if t, ok := centers.byN[size]; ok {
		return t
	}
	t := buildCenterTable(size)
	centers.byN[size] = t
	return t
}

// PositionBonus returns the static center-bias bonus for a cell on a
// board of the given size, the S_pos(m) term move ordering blends in.
func PositionBonus(size int, m board.Move) float64 {
	return centerTableFor(size)[m.Row*size+m.Col]
}

func buildCenterTable(size int) []float64 {
	table := make([]float64, size*size)
	cr := float64(size-1) / 2
	cc := float64(size-1) / 2
	maxDist := cr
	if cc > maxDist {
		maxDist = cc
	}
	if maxDist == 0 {
		maxDist = 1
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			dr := float64(r) - cr
			dc := float64(c) - cc
			dist := dr*dr + dc*dc
			norm := dist / (maxDist * maxDist)
			// +1 at the center falling off to a negative value at the
			// corners, sharpest in the corners themselves.
			table[r*size+c] = 1.5*math.Exp(-2*norm) - 0.5
		}
	}
	return table
}
