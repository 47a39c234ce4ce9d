package search

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/asebrech/gomoku/board"
)

const initialAspirationDelta = 50.0
const maxAspirationDelta = 1 << 20

// FindBestMove drives iterative deepening from depth 1 to maxDepth (or
// until stop/deadline), narrowing each iteration's window around the
// previous iteration's score and widening on failure, per spec.md
// §4.6's aspiration-window scheme. It returns the best move of the last
// fully-completed depth, never a partially-searched one.
func (d *Driver) FindBestMove(pos *board.Position, maxDepth int, deadline time.Time, workers int, stop *atomic.Bool) Result {
	stats := &Stats{Start: time.Now()}
	var result Result
	if !deadline.IsZero() {
		// The deadline raises the stop flag, so an iteration still running
		// when time is up is abandoned like an explicit stop.
		timer := time.AfterFunc(time.Until(deadline), func() { stop.Store(true) })
		defer timer.Stop()
	}

	prevScore := 0.0
	for depth := 1; depth <= maxDepth; depth++ {
		if stop.Load() || pastDeadline(deadline) {
			break
		}
		d.TT.NextGeneration()
		d.History.TickIteration()

		alpha, beta := -math.Inf(1), math.Inf(1)
		delta := initialAspirationDelta
		if depth > 1 {
			alpha, beta = prevScore-delta, prevScore+delta
		}

		var move board.Move
		var score float64
		var ok bool
		for {
			move, score, ok = d.searchRootParallel(pos, depth, alpha, beta, workers, stop, stats)
			if !ok || stop.Load() {
				break
			}
			if score <= alpha && !math.IsInf(alpha, -1) {
				delta *= 2
				alpha = prevScore - delta
				if delta > maxAspirationDelta {
					alpha = math.Inf(-1)
				}
				log.Debug().Int("depth", depth).Float64("score", score).Float64("alpha", alpha).Msg("search: aspiration re-search (fail low)")
				continue
			}
			if score >= beta && !math.IsInf(beta, 1) {
				delta *= 2
				beta = prevScore + delta
				if delta > maxAspirationDelta {
					beta = math.Inf(1)
				}
				log.Debug().Int("depth", depth).Float64("score", score).Float64("beta", beta).Msg("search: aspiration re-search (fail high)")
				continue
			}
			break
		}

		if !ok || stop.Load() {
			break
		}

		result = Result{BestMove: move, Score: score, ReachedDepth: depth, Found: true}
		prevScore = score
		log.Info().Int("depth", depth).Str("move", move.String()).Float64("score", score).Uint64("nodes", stats.Nodes.Load()).Msg("search: iteration complete")
		if isMateScore(score) {
			break
		}
	}

	stats.Elapsed = time.Since(stats.Start)
	result.Stats = stats.snapshot()
	return result
}

func pastDeadline(deadline time.Time) bool {
	return !deadline.IsZero() && time.Now().After(deadline)
}
