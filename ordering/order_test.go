package ordering

import (
	"testing"

	"github.com/asebrech/gomoku/board"
	"github.com/asebrech/gomoku/eval"
)

func TestTopKForDepthBands(t *testing.T) {
	cases := []struct {
		depth int
		want  int
	}{
		{11, 6}, {10, 6}, {9, 8}, {8, 8}, {7, 12}, {6, 12}, {5, 16}, {4, 16}, {3, -1}, {0, -1},
	}
	for _, c := range cases {
		if got := TopKForDepth(c.depth); got != c.want {
			t.Fatalf("TopKForDepth(%d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestOrderPutsTTMoveFirst(t *testing.T) {
	pos := board.New(9, 5)
	if err := pos.MakeMove(board.Move{Row: 4, Col: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frontier := pos.Frontier()
	ttMove := frontier[len(frontier)/2]

	kt := NewKillerTable(5)
	history := NewHistoryTable(9, 0)
	ordered := Order(pos, frontier, ttMove, true, kt, 0, history, DefaultWeights(), eval.DefaultWeights(), 6)
	if len(ordered) == 0 || ordered[0] != ttMove {
		t.Fatalf("expected the TT move first, got %v", ordered)
	}
}

func TestOrderPutsKillersAfterTTMove(t *testing.T) {
	pos := board.New(9, 5)
	if err := pos.MakeMove(board.Move{Row: 4, Col: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frontier := pos.Frontier()
	ttMove := frontier[0]
	killer := frontier[1]

	kt := NewKillerTable(5)
	kt.Record(0, killer)
	history := NewHistoryTable(9, 0)
	ordered := Order(pos, frontier, ttMove, true, kt, 0, history, DefaultWeights(), eval.DefaultWeights(), 6)
	if len(ordered) < 2 || ordered[0] != ttMove || ordered[1] != killer {
		t.Fatalf("expected TT move then killer, got %v", ordered)
	}
}

func TestOrderDoesNotDuplicateTTMoveAsKiller(t *testing.T) {
	pos := board.New(9, 5)
	if err := pos.MakeMove(board.Move{Row: 4, Col: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frontier := pos.Frontier()
	shared := frontier[0]

	kt := NewKillerTable(5)
	kt.Record(0, shared)
	history := NewHistoryTable(9, 0)
	ordered := Order(pos, frontier, shared, true, kt, 0, history, DefaultWeights(), eval.DefaultWeights(), 6)
	count := 0
	for _, m := range ordered {
		if m == shared {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected the shared TT/killer move to appear exactly once, appeared %d times", count)
	}
}

func TestOrderRespectsTopKCap(t *testing.T) {
	pos := board.New(19, 5)
	if err := pos.MakeMove(board.Move{Row: 9, Col: 9}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frontier := pos.Frontier()
	if len(frontier) <= 6 {
		t.Fatalf("expected a frontier larger than the depth-10 cap to exercise the cap")
	}
	kt := NewKillerTable(5)
	history := NewHistoryTable(19, 0)
	ordered := Order(pos, frontier, board.Move{}, false, kt, 0, history, DefaultWeights(), eval.DefaultWeights(), 10)
	if len(ordered) != TopKForDepth(10) {
		t.Fatalf("expected exactly %d candidates at depth 10, got %d", TopKForDepth(10), len(ordered))
	}
}

func TestOrderIsDeterministicAcrossCalls(t *testing.T) {
	pos := board.New(9, 5)
	for _, m := range []board.Move{{4, 4}, {4, 5}, {5, 4}} {
		if err := pos.MakeMove(m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	frontier := pos.Frontier()
	kt := NewKillerTable(5)
	history := NewHistoryTable(9, 0)

	first := Order(pos, frontier, board.Move{}, false, kt, 0, history, DefaultWeights(), eval.DefaultWeights(), 6)
	second := Order(pos, frontier, board.Move{}, false, kt, 0, history, DefaultWeights(), eval.DefaultWeights(), 6)
	if len(first) != len(second) {
		t.Fatalf("expected repeated ordering calls to agree on length")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected deterministic ordering, differed at index %d: %v vs %v", i, first[i], second[i])
		}
	}
}
