package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Backlog deepens a position further in the background after a timed
// search returns early, so a repeated query for that same position later
// finds a deeper, TT-seeded answer already waiting. It generalizes the
// teacher's search-backlog worker pool to the search core alone, with no
// game/session concepts attached.
type Backlog struct {
	engine *Engine

	mu     sync.Mutex
	cancel map[uint64]context.CancelFunc
}

func newBacklog(e *Engine) *Backlog {
	return &Backlog{engine: e, cancel: make(map[uint64]context.CancelFunc)}
}

// enqueue schedules pos for further deepening up to toDepth; the
// background search runs iterative deepening from depth 1 again, and
// fromDepth is only recorded in the log. A position already queued is
// left alone.
func (b *Backlog) enqueue(pos *Position, fromDepth, toDepth int) {
	hash := pos.Hash()
	b.mu.Lock()
	if _, exists := b.cancel[hash]; exists {
		b.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel[hash] = cancel
	b.mu.Unlock()

	log.Debug().Uint64("hash", hash).Int("from_depth", fromDepth).Int("to_depth", toDepth).Msg("backlog: queued deepening")
	go b.run(ctx, hash, pos, toDepth)
}

func (b *Backlog) run(ctx context.Context, hash uint64, pos *Position, toDepth int) {
	defer func() {
		b.mu.Lock()
		delete(b.cancel, hash)
		b.mu.Unlock()
	}()
	var stop atomic.Bool
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			stop.Store(true)
		case <-done:
		}
	}()
	result := b.engine.driver.FindBestMove(pos, toDepth, time.Time{}, 1, &stop)
	log.Debug().Uint64("hash", hash).Int("reached_depth", result.ReachedDepth).Bool("stopped", stop.Load()).Msg("backlog: deepening finished")
}

// cancelFor aborts any queued deepening for a position hash, called when
// a fresh FindBestMove for that same position arrives.
func (b *Backlog) cancelFor(hash uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if cancel, ok := b.cancel[hash]; ok {
		log.Debug().Uint64("hash", hash).Msg("backlog: cancelled by fresh query")
		cancel()
	}
}
