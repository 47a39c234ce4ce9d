package eval

import "github.com/asebrech/gomoku/board"

// TacticalMoveScore is move ordering's T(m): it plays m on pos, measures
// the own-threats created minus half the opponent-threats it blocks, then
// undoes the move. pos is restored byte-for-byte before returning.
func TacticalMoveScore(pos *board.Position, m board.Move, weights Weights) float64 {
	mover := pos.SideToMove()
	opp := mover.Opponent()
	beforeMine := pos.PatternCounts(mover)
	beforeTheirs := pos.PatternCounts(opp)

	if err := pos.MakeMove(m); err != nil {
		return 0
	}
	afterMine := pos.PatternCounts(mover)
	afterTheirs := pos.PatternCounts(opp)
	_ = pos.UndoMove()

	var created, blocked float64
	for _, k := range allKinds {
		w := weights.byKind(k)
		if d := afterMine[k] - beforeMine[k]; d > 0 {
			created += w * float64(d)
		}
		if d := beforeTheirs[k] - afterTheirs[k]; d > 0 {
			blocked += w * float64(d)
		}
	}
	return created - 0.5*blocked
}
