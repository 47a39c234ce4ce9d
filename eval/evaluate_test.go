package eval

import (
	"testing"

	"github.com/asebrech/gomoku/board"
)

func TestEvaluateReturnsFiveWeightOnWin(t *testing.T) {
	pos := board.New(9, 5)
	// Max completes five in a row on row 4 while Min plays harmless moves
	// on row 0 in between, keeping the alternating side-to-move sequence
	// legal without either player threatening anything else.
	moves := []board.Move{
		{Row: 4, Col: 0}, {Row: 0, Col: 0},
		{Row: 4, Col: 1}, {Row: 0, Col: 1},
		{Row: 4, Col: 2}, {Row: 0, Col: 2},
		{Row: 4, Col: 3}, {Row: 0, Col: 3},
		{Row: 4, Col: 4},
	}
	for _, m := range moves {
		if err := pos.MakeMove(m); err != nil {
			t.Fatalf("unexpected error making %v: %v", m, err)
		}
	}
	// After the last move, side to move is Min, facing Max's five.
	w := DefaultWeights()
	score := Evaluate(pos, w, ModeFull)
	if score != -w.Five {
		t.Fatalf("expected -Five (%v) for the side facing a completed five, got %v", -w.Five, score)
	}
}

func TestEvaluateTacticalModeOmitsPositionBias(t *testing.T) {
	pos := board.New(9, 5)
	if err := pos.MakeMove(board.Move{Row: 4, Col: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := DefaultWeights()
	full := Evaluate(pos, w, ModeFull)
	tactical := Evaluate(pos, w, ModeTactical)
	if full == tactical {
		t.Fatalf("expected full and tactical evaluation to differ once position bias is nonzero")
	}
}

func TestForkBonusAppliesForMultipleOpenThrees(t *testing.T) {
	counts := board.PatternCounts{}
	counts[board.OpenThree] = 2
	w := DefaultWeights()
	bonus := forkBonus(counts, w)
	if bonus != w.ForkOpenThree {
		t.Fatalf("expected the open-three fork bonus alone, got %v", bonus)
	}
}

func TestPreciseModeMonotonicity(t *testing.T) {
	if !precise(ModeFull, ModeTactical) {
		t.Fatalf("expected a ModeFull entry to satisfy a ModeTactical request")
	}
	if !precise(ModeFull, ModeFull) {
		t.Fatalf("expected a ModeFull entry to satisfy a ModeFull request")
	}
	if precise(ModeTactical, ModeFull) {
		t.Fatalf("expected a ModeTactical entry to NOT satisfy a ModeFull request")
	}
}
