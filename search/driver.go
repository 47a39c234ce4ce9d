// Package search implements the negamax/PVS driver: iterative deepening
// with aspiration windows, killer/history-guided move ordering, a
// transposition table shared across Lazy-SMP workers, and a polled stop
// flag for time control.
package search

import (
	"sync/atomic"

	"github.com/asebrech/gomoku/board"
	"github.com/asebrech/gomoku/eval"
	"github.com/asebrech/gomoku/ordering"
	"github.com/asebrech/gomoku/tt"
)

// nodeSamplingMask controls how often the stop flag is polled: every
// 4096th node, per spec.md §5, to avoid a syscall/atomic-load storm.
const nodeSamplingMask = 4095

// deepPlyTacticalCutoff is the ply distance from the root beyond which
// leaf evaluation switches to eval.ModeTactical, trading precision for
// throughput the further a node sits from the move actually being
// decided.
const deepPlyTacticalCutoff = 7

// Driver ties the transposition table, move ordering, and evaluator
// together into one negamax search. One Driver is built per Engine and
// reused across searches; per-search state (killers, eval cache) is
// allocated fresh by the caller.
type Driver struct {
	TT           *tt.Table
	History      *ordering.HistoryTable
	OrderWeights ordering.Weights
	EvalWeights  eval.Weights
}

// NewDriver builds a driver around a shared TT and a history table sized
// for boardSize, aged every historyAgeInterval root iterations.
func NewDriver(table *tt.Table, boardSize int, historyAgeInterval int) *Driver {
	return &Driver{
		TT:           table,
		History:      ordering.NewHistoryTable(boardSize, historyAgeInterval),
		OrderWeights: ordering.DefaultWeights(),
		EvalWeights:  eval.DefaultWeights(),
	}
}

// workerState is the per-worker scratch state: its own killer table and
// eval cache. A fresh one is built for every root search pass (each
// iteration and each aspiration re-search), and one per root move on the
// parallel path, so neither survives from one pass to the next.
type workerState struct {
	killers *ordering.KillerTable
	cache   *eval.Cache
}

func newWorkerState(maxPly int) *workerState {
	return &workerState{
		killers: ordering.NewKillerTable(maxPly),
		cache:   eval.NewCache(100_000),
	}
}

// negamax implements spec.md §4.6 steps 1-8. depth is plies remaining to
// search, ply is the distance already traveled from the search root
// (used for mate-score and tactical-eval ply bookkeeping).
func (d *Driver) negamax(pos *board.Position, depth, ply int, alpha, beta float64, ws *workerState, stop *atomic.Bool, stats *Stats) float64 {
	n := stats.Nodes.Add(1)
	if n&nodeSamplingMask == 0 && stop.Load() {
		return d.leafEval(pos, ws, ply, stats)
	}

	if outcome, done := pos.Terminal(); done {
		if outcome.Draw {
			return 0
		}
		// The position is terminal because the side that just moved
		// (pos's opponent of SideToMove) completed a winning line; the
		// side to move here has just been mated.
		return -(MateValue - float64(ply))
	}

	if depth <= 0 {
		return d.leafEval(pos, ws, ply, stats)
	}

	hash := pos.Hash()
	stats.TTProbes.Add(1)
	var ttMove board.Move
	hasTT := false
	if entry, ok := d.TT.Probe(hash); ok {
		stats.TTHits.Add(1)
		ttMove = board.Move{Row: entry.BestMove.Row, Col: entry.BestMove.Col}
		hasTT = true
		if int(entry.Depth) >= depth {
			score := scoreFromTT(entry.Score, ply)
			switch entry.Bound {
			case tt.Exact:
				stats.TTCutoffs.Add(1)
				return score
			case tt.Lower:
				if score >= beta {
					stats.TTCutoffs.Add(1)
					return score
				}
			case tt.Upper:
				if score <= alpha {
					stats.TTCutoffs.Add(1)
					return score
				}
			}
		}
	}

	frontier := pos.Frontier()
	moves := ordering.Order(pos, frontier, ttMove, hasTT, ws.killers, ply, d.History, d.OrderWeights, d.EvalWeights, depth)
	if len(moves) == 0 {
		return d.leafEval(pos, ws, ply, stats)
	}

	origAlpha := alpha
	score := -(MateValue + 1)
	var best board.Move
	bestSet := false

	for i, m := range moves {
		if err := pos.MakeMove(m); err != nil {
			continue
		}
		var childScore float64
		if i == 0 {
			childScore = -d.negamax(pos, depth-1, ply+1, -beta, -alpha, ws, stop, stats)
		} else {
			childScore = -d.negamax(pos, depth-1, ply+1, -alpha-1, -alpha, ws, stop, stats)
			if childScore > alpha && childScore < beta {
				childScore = -d.negamax(pos, depth-1, ply+1, -beta, -alpha, ws, stop, stats)
			}
		}
		_ = pos.UndoMove()

		if childScore > score || !bestSet {
			score = childScore
			best = m
			bestSet = true
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			ws.killers.Record(ply, m)
			d.History.Add(m, depth)
			stats.Cutoffs.Add(1)
			if d.TT.Store(hash, int16(depth), scoreToTT(score, ply), tt.Lower, tt.Move{Row: m.Row, Col: m.Col}) {
				stats.TTCollisions.Add(1)
			}
			return score
		}
	}

	if !bestSet {
		// Every frontier move was illegal (shouldn't happen; defensive).
		return d.leafEval(pos, ws, ply, stats)
	}

	bound := tt.Upper
	if alpha > origAlpha {
		bound = tt.Exact
	}
	if d.TT.Store(hash, int16(depth), scoreToTT(score, ply), bound, tt.Move{Row: best.Row, Col: best.Col}) {
		stats.TTCollisions.Add(1)
	}
	return score
}

func (d *Driver) leafEval(pos *board.Position, ws *workerState, ply int, stats *Stats) float64 {
	mode := eval.ModeFull
	if ply > deepPlyTacticalCutoff {
		mode = eval.ModeTactical
	}
	stats.EvalProbes.Add(1)
	if score, ok := ws.cache.Get(pos.Hash(), mode); ok {
		stats.EvalHits.Add(1)
		return score
	}
	score := eval.Evaluate(pos, d.EvalWeights, mode)
	ws.cache.Put(pos.Hash(), mode, score)
	return score
}
