package search

import "testing"

func TestIsMateScoreAboveThreshold(t *testing.T) {
	if !isMateScore(MateValue - 1) {
		t.Fatalf("expected a near-MateValue score to register as a mate score")
	}
	if !isMateScore(-(MateValue - 1)) {
		t.Fatalf("expected a near-negative-MateValue score to register as a mate score")
	}
	if isMateScore(100_000) {
		t.Fatalf("expected the largest static eval magnitude to NOT register as a mate score")
	}
}

func TestScoreToTTAndBackRoundTripsAwayFromMate(t *testing.T) {
	stored := scoreToTT(500, 3)
	if got := scoreFromTT(stored, 3); got != 500 {
		t.Fatalf("expected a non-mate score to round-trip unchanged, got %v", got)
	}
}

func TestScoreToTTAdjustsMateDistanceByPly(t *testing.T) {
	score := MateValue - 5 // mate 5 plies from the root, seen at ply 3 (2 plies from this node)
	atPly3 := scoreToTT(score, 3)
	// Converting back at a different ply must reflect that ply's distance,
	// not the ply the score was computed at.
	atRoot := scoreFromTT(atPly3, 0)
	if atRoot <= score {
		t.Fatalf("expected a mate score converted to root-relative terms to increase (closer mate), got %v from %v", atRoot, score)
	}
}

func TestScoreToTTClampsToInt32Range(t *testing.T) {
	stored := scoreToTT(MateValue*10_000, 0)
	if stored != int32(2147483647) {
		t.Fatalf("expected an overflowing score to clamp to MaxInt32, got %d", stored)
	}
}
