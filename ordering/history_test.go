package ordering

import (
	"sync"
	"testing"

	"github.com/asebrech/gomoku/board"
)

func TestHistoryAddAccumulatesDepthSquared(t *testing.T) {
	h := NewHistoryTable(9, 0)
	m := board.Move{Row: 2, Col: 3}
	h.Add(m, 4)
	if got := h.Score(m); got != 16 {
		t.Fatalf("expected depth^2 = 16, got %d", got)
	}
	h.Add(m, 2)
	if got := h.Score(m); got != 20 {
		t.Fatalf("expected accumulated score 16+4=20, got %d", got)
	}
}

func TestHistoryTickIterationAgesPeriodically(t *testing.T) {
	h := NewHistoryTable(9, 3)
	m := board.Move{Row: 0, Col: 0}
	h.Add(m, 10) // 100

	h.TickIteration()
	h.TickIteration()
	if got := h.Score(m); got != 100 {
		t.Fatalf("expected no aging before the 3rd tick, got %d", got)
	}
	h.TickIteration()
	if got := h.Score(m); got != 50 {
		t.Fatalf("expected a halving on the 3rd tick, got %d", got)
	}
}

func TestHistoryAgeEveryZeroDisablesAging(t *testing.T) {
	h := NewHistoryTable(9, 0)
	m := board.Move{Row: 0, Col: 0}
	h.Add(m, 10)
	for i := 0; i < 100; i++ {
		h.TickIteration()
	}
	if got := h.Score(m); got != 100 {
		t.Fatalf("expected no aging when ageEvery is 0, got %d", got)
	}
}

// TestHistoryConcurrentAddAndScoreRace exercises the table the way
// Lazy-SMP root workers do: many goroutines calling Add and Score on the
// same shared table at once. Run with -race; a plain []int32 backing
// store would be flagged here.
func TestHistoryConcurrentAddAndScoreRace(t *testing.T) {
	h := NewHistoryTable(9, 0)
	m := board.Move{Row: 4, Col: 4}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				h.Add(m, 3)
				_ = h.Score(m)
				h.TickIteration()
			}
		}()
	}
	wg.Wait()

	if got := h.Score(m); got <= 0 {
		t.Fatalf("expected a positive accumulated score, got %d", got)
	}
}

func TestHistoryClearZeroesEverything(t *testing.T) {
	h := NewHistoryTable(9, 5)
	m := board.Move{Row: 1, Col: 1}
	h.Add(m, 3)
	h.TickIteration()
	h.Clear()
	if got := h.Score(m); got != 0 {
		t.Fatalf("expected score 0 after Clear, got %d", got)
	}
}
