package search

import (
	"sync/atomic"
	"time"
)

// Stats accumulates counters for one find-best-move call. Every counter
// is updated with atomic adds only, since multiple Lazy-SMP workers
// contribute to the same Stats concurrently; Start and Elapsed are set
// by the driver alone.
type Stats struct {
	Nodes        atomic.Uint64
	TTProbes     atomic.Uint64
	TTHits       atomic.Uint64
	TTCutoffs    atomic.Uint64
	TTCollisions atomic.Uint64
	Cutoffs      atomic.Uint64
	EvalProbes   atomic.Uint64
	EvalHits     atomic.Uint64
	Start        time.Time
	Elapsed      time.Duration
}

// Snapshot is a read-only copy of Stats for returning to callers.
type Snapshot struct {
	Nodes        uint64
	TTProbes     uint64
	TTHits       uint64
	TTCutoffs    uint64
	TTCollisions uint64
	Cutoffs      uint64
	EvalProbes   uint64
	EvalHits     uint64
	Elapsed      time.Duration
}

func (s *Stats) snapshot() Snapshot {
	return Snapshot{
		Nodes:        s.Nodes.Load(),
		TTProbes:     s.TTProbes.Load(),
		TTHits:       s.TTHits.Load(),
		TTCutoffs:    s.TTCutoffs.Load(),
		TTCollisions: s.TTCollisions.Load(),
		Cutoffs:      s.Cutoffs.Load(),
		EvalProbes:   s.EvalProbes.Load(),
		EvalHits:     s.EvalHits.Load(),
		Elapsed:      s.Elapsed,
	}
}
