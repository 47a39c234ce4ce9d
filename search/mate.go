package search

import "math"

// MateValue anchors the mate-score encoding: a forced win in m plies
// scores MateValue-m, comfortably above any static evaluation magnitude
// (eval.DefaultWeights' largest term is Five at 100000).
const MateValue = 1_000_000.0

const mateThreshold = MateValue - 100_000

func isMateScore(score float64) bool { return math.Abs(score) > mateThreshold }

// scoreToTT converts a score computed at `ply` plies from the search
// root into the root-relative form the transposition table stores, so a
// mate distance retrieved at a different ply still means what it says.
func scoreToTT(score float64, ply int) int32 {
	adjusted := score
	if score > mateThreshold {
		adjusted = score + float64(ply)
	} else if score < -mateThreshold {
		adjusted = score - float64(ply)
	}
	if adjusted > math.MaxInt32 {
		adjusted = math.MaxInt32
	}
	if adjusted < math.MinInt32 {
		adjusted = math.MinInt32
	}
	return int32(math.Round(adjusted))
}

// scoreFromTT reverses scoreToTT, translating a stored root-relative
// score back to ply-relative terms at the probing node.
func scoreFromTT(stored int32, ply int) float64 {
	score := float64(stored)
	if score > mateThreshold {
		score -= float64(ply)
	} else if score < -mateThreshold {
		score += float64(ply)
	}
	return score
}
