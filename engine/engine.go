package engine

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/asebrech/gomoku/eval"
	"github.com/asebrech/gomoku/search"
	"github.com/asebrech/gomoku/tt"
)

// Engine is the top-level, reusable search handle: one transposition
// table and history table shared across every FindBestMove call, sized
// and tuned by a Config. Matches spec.md §6's Engine::new /
// find_best_move / clear_tt / tt_stats surface.
type Engine struct {
	cfg    Config
	table  *tt.Table
	driver *search.Driver
	stop   atomic.Bool
	backlog *Backlog
}

// New validates cfg and builds an Engine. Invalid configs return
// ErrInvalidConfig; New never panics.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	table := tt.New(cfg.TTSizeMB, cfg.TTWaysPerBucket)
	driver := search.NewDriver(table, cfg.BoardSize, cfg.HistoryAgeEvery)
	if cfg.Weights != (eval.Weights{}) {
		driver.EvalWeights = cfg.Weights
	}
	e := &Engine{cfg: cfg, table: table, driver: driver}
	e.backlog = newBacklog(e)
	return e, nil
}

// SearchResult is spec.md §6's find_best_move return value.
type SearchResult struct {
	BestMove     Move
	Score        float64
	ReachedDepth int
	Stats        search.Snapshot
}

// FindBestMove searches pos to depthLimit plies or until timeLimit
// elapses, whichever comes first. A zero timeLimit means no deadline.
// If an opening book is configured and has a move for pos.Hash(), that
// move is returned immediately without searching.
func (e *Engine) FindBestMove(pos *Position, depthLimit int, timeLimit time.Duration) SearchResult {
	if e.cfg.OpeningBook != nil {
		if m, ok := e.cfg.OpeningBook.Lookup(pos.Hash()); ok {
			return SearchResult{BestMove: m, Score: 0, ReachedDepth: 0}
		}
	}
	e.backlog.cancelFor(pos.Hash())
	e.stop.Store(false)
	var deadline time.Time
	if timeLimit > 0 {
		deadline = time.Now().Add(timeLimit)
	}
	result := e.driver.FindBestMove(pos, depthLimit, deadline, e.cfg.Workers, &e.stop)
	if result.ReachedDepth > 0 && result.ReachedDepth < depthLimit {
		e.backlog.enqueue(pos.Clone(), result.ReachedDepth, depthLimit)
	}
	return SearchResult{BestMove: result.BestMove, Score: result.Score, ReachedDepth: result.ReachedDepth, Stats: result.Stats}
}

// Stop sets the shared stop flag, causing any in-flight FindBestMove to
// return the best move of its last fully-completed depth.
func (e *Engine) Stop() { e.stop.Store(true) }

// ClearTT wipes the transposition table and history heuristic.
func (e *Engine) ClearTT() {
	e.table.Clear()
	e.driver.History.Clear()
	log.Info().Msg("engine: tt cleared")
}

// TTStats reports transposition-table occupancy for diagnostics.
// Collisions is the table's lifetime count (reset by ClearTT), matching
// spec.md §6's tt_stats() -> (size, hit_rate, collisions).
type TTStats struct {
	Capacity   int
	Used       int
	HitRate    float64
	Collisions uint64
}

// TTStats returns table occupancy; hit rate is computed from the given
// stats snapshot, typically the Stats of the latest FindBestMove result.
func (e *Engine) TTStats(last search.Snapshot) TTStats {
	snap := e.table.Snapshot()
	var hitRate float64
	if last.TTProbes > 0 {
		hitRate = float64(last.TTHits) / float64(last.TTProbes)
	}
	return TTStats{Capacity: snap.Capacity, Used: snap.Used, HitRate: hitRate, Collisions: snap.Collisions}
}
