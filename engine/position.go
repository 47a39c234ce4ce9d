package engine

import "github.com/asebrech/gomoku/board"

// Move, Position, and Color are re-exported from board so callers only
// need to import the engine package for the public API spec.md §6
// describes (Position::new, make_move, undo_move, current_side, hash).
type Move = board.Move
type Position = board.Position
type Color = board.Color

const (
	Max   = board.Max
	Min   = board.Min
	Empty = board.Empty
)

// NewPosition creates a position for the given board size and win
// length, matching Position::new from spec.md §6.
func NewPosition(boardSize, winLength int) *Position {
	return board.New(boardSize, winLength)
}
