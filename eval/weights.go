// Package eval scores a board.Position from its pattern counts. It does
// not maintain those counts — board does that incrementally on every
// make/undo — eval only assigns weights and sums them.
package eval

import "github.com/asebrech/gomoku/board"

// Weights assigns a score magnitude to each pattern kind, plus two fork
// bonuses for multi-threat positions. Concrete values are tunable; the
// taxonomy and relative ordering are what spec.md fixes.
type Weights struct {
	Five           float64
	OpenFour       float64
	HalfOpenFour   float64
	OpenThree      float64
	HalfOpenThree  float64
	OpenTwo        float64
	HalfOpenTwo    float64
	ForkOpenThree  float64 // bonus when a side holds >= 2 open threes
	ForkFourPlus   float64 // bonus when a side holds >= 2 four-class threats
	PositionWeight float64 // scale applied to the static center-bias term
}

// DefaultWeights gives the canonical magnitudes spec.md §4.5 names:
// five is an absolute win, open four ~15000, half-open four ~5000, open
// three ~500, half-open three ~100, with small nudges for twos.
func DefaultWeights() Weights {
	return Weights{
		Five:           100000,
		OpenFour:       15000,
		HalfOpenFour:   5000,
		OpenThree:      500,
		HalfOpenThree:  100,
		OpenTwo:        20,
		HalfOpenTwo:    5,
		ForkOpenThree:  600,
		ForkFourPlus:   8000,
		PositionWeight: 1,
	}
}

func (w Weights) byKind(k board.PatternKind) float64 {
	switch k {
	case board.Five:
		return w.Five
	case board.OpenFour:
		return w.OpenFour
	case board.HalfOpenFour:
		return w.HalfOpenFour
	case board.OpenThree:
		return w.OpenThree
	case board.HalfOpenThree:
		return w.HalfOpenThree
	case board.OpenTwo:
		return w.OpenTwo
	case board.HalfOpenTwo:
		return w.HalfOpenTwo
	default:
		return 0
	}
}
