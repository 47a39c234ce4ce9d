package search

import "github.com/asebrech/gomoku/board"

// Result is what one top-level search call returns: the chosen move, its
// score, the deepest fully-completed iteration, and the accumulated
// stats for that call.
type Result struct {
	BestMove     board.Move
	Score        float64
	ReachedDepth int
	Found        bool
	Stats        Snapshot
}
