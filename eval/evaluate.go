package eval

import "github.com/asebrech/gomoku/board"

// Mode selects how much of the pattern taxonomy a static evaluation
// considers. Tactical mode trades accuracy for throughput at deep
// internal nodes where fine distinctions rarely change a pruning
// decision.
type Mode uint8

const (
	ModeFull Mode = iota
	ModeTactical
)

// precise reports whether mode a is at least as precise as mode b,
// i.e. whether a cached score computed under a may satisfy a request
// for b. ModeFull is strictly more precise than ModeTactical.
func precise(have, want Mode) bool {
	if want == ModeTactical {
		return true
	}
	return have == ModeFull
}

var tacticalKinds = [4]board.PatternKind{board.Five, board.OpenFour, board.HalfOpenFour, board.OpenThree}

// Evaluate scores a position from the perspective of pos.SideToMove(),
// following spec.md's negamax sign convention: positive favors the side
// to move. Win/loss patterns short-circuit to near-absolute scores
// before the weighted sum runs, matching the teacher evaluator's
// early-outs.
func Evaluate(pos *board.Position, weights Weights, mode Mode) float64 {
	me := pos.SideToMove()
	opp := me.Opponent()
	mine := pos.PatternCounts(me)
	theirs := pos.PatternCounts(opp)

	if mine[board.Five] > 0 {
		return weights.Five
	}
	if theirs[board.Five] > 0 {
		return -weights.Five
	}
	if theirs[board.OpenFour] > 0 {
		return -(weights.OpenFour - 1)
	}
	if mine[board.OpenFour] > 0 {
		return weights.OpenFour - 1
	}

	kinds := allKinds
	if mode == ModeTactical {
		kinds = tacticalKinds[:]
	}

	var score float64
	for _, k := range kinds {
		w := weights.byKind(k)
		score += w * float64(mine[k]-theirs[k])
	}
	score += forkBonus(mine, weights) - forkBonus(theirs, weights)

	if mode == ModeFull {
		score += weights.PositionWeight * positionBias(pos, me)
	}
	return score
}

var allKinds = []board.PatternKind{
	board.Five, board.OpenFour, board.HalfOpenFour, board.OpenThree,
	board.HalfOpenThree, board.OpenTwo, board.HalfOpenTwo,
}

func forkBonus(counts board.PatternCounts, w Weights) float64 {
	var bonus float64
	if counts[board.OpenThree] >= 2 {
		bonus += w.ForkOpenThree
	}
	if counts[board.OpenFour]+counts[board.HalfOpenFour] >= 2 {
		bonus += w.ForkFourPlus
	}
	return bonus
}

// positionBias sums a Gaussian-toward-center bonus over both colors'
// stones, positive for the side to move.
func positionBias(pos *board.Position, side board.Color) float64 {
	size := pos.Size
	var bias float64
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			m := board.Move{Row: r, Col: c}
			cell := pos.At(m)
			if cell == board.Empty {
				continue
			}
			v := PositionBonus(size, m)
			if cell == side {
				bias += v
			} else {
				bias -= v
			}
		}
	}
	return bias
}
