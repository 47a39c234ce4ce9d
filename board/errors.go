package board

import "errors"

// ErrIllegalMove is returned by MakeMove when the target cell is occupied
// or the position is already terminal.
var ErrIllegalMove = errors.New("board: illegal move")

// ErrOutOfBounds is returned by MakeMove when the move's coordinates fall
// outside the grid.
var ErrOutOfBounds = errors.New("board: move out of bounds")

// ErrNoMoveToUndo is returned by UndoMove when the move stack is empty.
var ErrNoMoveToUndo = errors.New("board: no move to undo")
