package search

import (
	"sync/atomic"

	"github.com/asebrech/gomoku/board"
	"github.com/asebrech/gomoku/ordering"
	"github.com/asebrech/gomoku/tt"
)

// searchRoot runs one PVS pass over the root's ordered move list, the
// sequential building block both the depth<=3 fallback and each
// Lazy-SMP worker use.
func (d *Driver) searchRoot(pos *board.Position, depth int, alpha, beta float64, ws *workerState, stop *atomic.Bool, stats *Stats) (board.Move, float64, bool) {
	frontier := pos.Frontier()
	hash := pos.Hash()

	var ttMove board.Move
	hasTT := false
	stats.TTProbes.Add(1)
	if entry, ok := d.TT.Probe(hash); ok {
		stats.TTHits.Add(1)
		ttMove = board.Move{Row: entry.BestMove.Row, Col: entry.BestMove.Col}
		hasTT = true
	}

	moves := ordering.Order(pos, frontier, ttMove, hasTT, ws.killers, 0, d.History, d.OrderWeights, d.EvalWeights, depth)
	if len(moves) == 0 {
		return board.Move{}, 0, false
	}

	origAlpha := alpha
	score := -(MateValue + 1)
	var best board.Move
	bestSet := false

	for i, m := range moves {
		if stop.Load() {
			break
		}
		if err := pos.MakeMove(m); err != nil {
			continue
		}
		var childScore float64
		if i == 0 {
			childScore = -d.negamax(pos, depth-1, 1, -beta, -alpha, ws, stop, stats)
		} else {
			childScore = -d.negamax(pos, depth-1, 1, -alpha-1, -alpha, ws, stop, stats)
			if childScore > alpha && childScore < beta {
				childScore = -d.negamax(pos, depth-1, 1, -beta, -alpha, ws, stop, stats)
			}
		}
		_ = pos.UndoMove()

		if !bestSet || childScore > score || (childScore == score && rowMajor(pos, m) < rowMajor(pos, best)) {
			score = childScore
			best = m
			bestSet = true
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			ws.killers.Record(0, m)
			d.History.Add(m, depth)
			break
		}
	}

	if !bestSet {
		return board.Move{}, 0, false
	}

	bound := tt.Upper
	switch {
	case alpha >= beta:
		bound = tt.Lower
	case alpha > origAlpha:
		bound = tt.Exact
	}
	if d.TT.Store(hash, int16(depth), scoreToTT(score, 0), bound, tt.Move{Row: best.Row, Col: best.Col}) {
		stats.TTCollisions.Add(1)
	}
	return best, score, true
}

// rowMajor gives a move's row-major rank on the board, used to break
// equal-score root-move ties deterministically per spec.md §5 rather
// than by move-ordering accident.
func rowMajor(pos *board.Position, m board.Move) int {
	return m.Row*pos.Size + m.Col
}
