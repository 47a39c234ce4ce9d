package search

import (
	"math/rand"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/asebrech/gomoku/board"
	"github.com/asebrech/gomoku/ordering"
	"github.com/asebrech/gomoku/tt"
)

// sequentialDepthCutoff is the root depth at or below which parallel
// dispatch overhead dominates, per spec.md §4.6's "sequential fallback
// for depth <= 3".
const sequentialDepthCutoff = 3

// searchRootParallel distributes root moves across workers goroutines
// (Lazy-SMP root-move splitting): each worker clones the position,
// applies one root move, and negamaxes the child sharing the TT and stop
// flag. Above depth 6, up to two spare workers beyond the move count run
// full-root searches with a perturbed move order purely to warm the
// shared TT; their results are discarded.
func (d *Driver) searchRootParallel(pos *board.Position, depth int, alpha, beta float64, workers int, stop *atomic.Bool, stats *Stats) (board.Move, float64, bool) {
	if depth <= sequentialDepthCutoff || workers <= 1 {
		ws := newWorkerState(depth + 1)
		return d.searchRoot(pos, depth, alpha, beta, ws, stop, stats)
	}

	primaryWS := newWorkerState(depth + 1)
	frontier := pos.Frontier()
	hash := pos.Hash()
	var ttMove board.Move
	hasTT := false
	if entry, ok := d.TT.Probe(hash); ok {
		ttMove = board.Move{Row: entry.BestMove.Row, Col: entry.BestMove.Col}
		hasTT = true
	}
	moves := ordering.Order(pos, frontier, ttMove, hasTT, primaryWS.killers, 0, d.History, d.OrderWeights, d.EvalWeights, depth)
	if len(moves) == 0 {
		return board.Move{}, 0, false
	}

	type rootCandidate struct {
		move  board.Move
		score float64
		ok    bool
	}
	results := make([]rootCandidate, len(moves))

	g := &errgroup.Group{}
	g.SetLimit(workers)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			child := pos.Clone()
			if err := child.MakeMove(m); err != nil {
				return nil
			}
			ws := newWorkerState(depth + 1)
			score := -d.negamax(child, depth-1, 1, -beta, -alpha, ws, stop, stats)
			results[i] = rootCandidate{move: m, score: score, ok: true}
			return nil
		})
	}

	spare := workers - len(moves)
	if spare > 0 && depth > 6 {
		if spare > 2 {
			spare = 2
		}
		for h := 0; h < spare; h++ {
			seed := int64(depth)*1000 + int64(h)
			g.Go(func() error {
				d.warmTT(pos, depth, alpha, beta, seed, stop, stats)
				return nil
			})
		}
	}

	_ = g.Wait()

	best := rootCandidate{score: -(MateValue + 1)}
	bestSet := false
	for _, r := range results {
		if !r.ok {
			continue
		}
		if !bestSet || r.score > best.score || (r.score == best.score && rowMajor(pos, r.move) < rowMajor(pos, best.move)) {
			best = r
			bestSet = true
		}
	}
	if !bestSet {
		return board.Move{}, 0, false
	}

	if d.TT.Store(hash, int16(depth), scoreToTT(best.score, 0), tt.Exact, tt.Move{Row: best.move.Row, Col: best.move.Col}) {
		stats.TTCollisions.Add(1)
	}
	d.History.Add(best.move, depth)
	return best.move, best.score, true
}

// warmTT runs a full root search on a shuffled move order so its
// traversal populates the shared TT without contending for the primary
// worker's result slot.
func (d *Driver) warmTT(pos *board.Position, depth int, alpha, beta float64, seed int64, stop *atomic.Bool, stats *Stats) {
	clone := pos.Clone()
	ws := newWorkerState(depth + 1)
	rng := rand.New(rand.NewSource(seed))
	frontier := clone.Frontier()
	rng.Shuffle(len(frontier), func(i, j int) { frontier[i], frontier[j] = frontier[j], frontier[i] })
	for _, m := range frontier {
		if stop.Load() {
			return
		}
		if err := clone.MakeMove(m); err != nil {
			continue
		}
		d.negamax(clone, depth-1, 1, -beta, -alpha, ws, stop, stats)
		_ = clone.UndoMove()
	}
}
