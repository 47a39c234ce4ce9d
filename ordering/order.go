package ordering

import (
	"sort"

	"github.com/asebrech/gomoku/board"
	"github.com/asebrech/gomoku/eval"
)

// Weights controls the blend of tactical score, history, and static
// position bonus used to order non-killer, non-TT moves, matching
// spec.md's "alpha * T(m) + beta * H[m] + gamma * S_pos(m)" with
// alpha >> beta >> gamma.
type Weights struct {
	Tactical float64
	History  float64
	Position float64
}

// DefaultWeights favors tactical score heavily over history, with
// position acting only as a final tie-breaking nudge.
func DefaultWeights() Weights {
	return Weights{Tactical: 1.0, History: 0.01, Position: 0.001}
}

// TopKForDepth implements spec.md's depth-banded candidate cap.
func TopKForDepth(depth int) int {
	switch {
	case depth >= 10:
		return 6
	case depth >= 8:
		return 8
	case depth >= 6:
		return 12
	case depth >= 4:
		return 16
	default:
		return -1 // unlimited
	}
}

type scoredMove struct {
	move     board.Move
	priority float64
	rank     int // lower sorts first; row-major tie-break key
}

// Order produces the full priority-ordered candidate list for a node: TT
// move, then killer slots, then the remaining frontier moves blended by
// Weights, pruned to TopKForDepth(depth). hasTT indicates whether ttMove
// holds a TT hint; it is used only if it is in frontier.
func Order(pos *board.Position, frontier []board.Move, ttMove board.Move, hasTT bool, killers *KillerTable, ply int, history *HistoryTable, weights Weights, evalWeights eval.Weights, depth int) []board.Move {
	k0, hasK0, k1, hasK1 := killers.Killers(ply)

	used := make(map[board.Move]bool, 4)
	ordered := make([]board.Move, 0, len(frontier))

	if hasTT && isLegalCandidate(frontier, ttMove) {
		ordered = append(ordered, ttMove)
		used[ttMove] = true
	}
	if hasK0 && !used[k0] && isLegalCandidate(frontier, k0) {
		ordered = append(ordered, k0)
		used[k0] = true
	}
	if hasK1 && !used[k1] && isLegalCandidate(frontier, k1) {
		ordered = append(ordered, k1)
		used[k1] = true
	}

	rest := make([]scoredMove, 0, len(frontier))
	size := pos.Size
	for _, m := range frontier {
		if used[m] {
			continue
		}
		t := eval.TacticalMoveScore(pos, m, evalWeights)
		h := float64(history.Score(m))
		s := eval.PositionBonus(size, m)
		priority := weights.Tactical*t + weights.History*h + weights.Position*s
		rest = append(rest, scoredMove{move: m, priority: priority, rank: m.Row*size + m.Col})
	}
	sort.SliceStable(rest, func(i, j int) bool {
		if rest[i].priority != rest[j].priority {
			return rest[i].priority > rest[j].priority
		}
		return rest[i].rank < rest[j].rank
	})

	k := TopKForDepth(depth)
	if k >= 0 && k < len(rest) {
		// The TT move and killers already consumed, at most, three
		// slots outside this cap; top-K bounds the "remaining moves"
		// tier specifically, per spec.md §4.4.
		rest = rest[:k]
	}
	for _, sm := range rest {
		ordered = append(ordered, sm.move)
	}
	return ordered
}

func isLegalCandidate(frontier []board.Move, m board.Move) bool {
	for _, f := range frontier {
		if f == m {
			return true
		}
	}
	return false
}
