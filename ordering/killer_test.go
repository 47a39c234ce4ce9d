package ordering

import (
	"testing"

	"github.com/asebrech/gomoku/board"
)

func TestKillerRecordAndRetrieve(t *testing.T) {
	kt := NewKillerTable(10)
	m := board.Move{Row: 1, Col: 2}
	kt.Record(3, m)
	k0, hasK0, _, hasK1 := kt.Killers(3)
	if !hasK0 || k0 != m {
		t.Fatalf("expected slot 0 to hold %v, got %v (hasK0=%v)", m, k0, hasK0)
	}
	if hasK1 {
		t.Fatalf("expected slot 1 empty after a single record")
	}
}

func TestKillerSecondRecordPromotesFirstToSlotOne(t *testing.T) {
	kt := NewKillerTable(10)
	a := board.Move{Row: 1, Col: 1}
	b := board.Move{Row: 2, Col: 2}
	kt.Record(5, a)
	kt.Record(5, b)
	k0, hasK0, k1, hasK1 := kt.Killers(5)
	if !hasK0 || k0 != b {
		t.Fatalf("expected slot 0 to hold the most recent killer %v, got %v", b, k0)
	}
	if !hasK1 || k1 != a {
		t.Fatalf("expected slot 1 to hold the promoted killer %v, got %v", a, k1)
	}
}

func TestKillerDoesNotDuplicateExistingEntry(t *testing.T) {
	kt := NewKillerTable(10)
	m := board.Move{Row: 4, Col: 4}
	kt.Record(2, m)
	kt.Record(2, m)
	k0, hasK0, _, hasK1 := kt.Killers(2)
	if !hasK0 || k0 != m || hasK1 {
		t.Fatalf("expected no duplicate entry across slots, got k0=%v hasK0=%v hasK1=%v", k0, hasK0, hasK1)
	}
}

func TestKillerOutOfRangePlyIsANoop(t *testing.T) {
	kt := NewKillerTable(3)
	kt.Record(99, board.Move{Row: 0, Col: 0})
	_, hasK0, _, hasK1 := kt.Killers(99)
	if hasK0 || hasK1 {
		t.Fatalf("expected an out-of-range ply to report no killers")
	}
}
