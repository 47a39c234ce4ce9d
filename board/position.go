package board

import "github.com/asebrech/gomoku/zobrist"

// Outcome describes how a terminal position ended.
type Outcome struct {
	Winner Color // Empty for a draw
	Draw   bool
	Line   []Move // the winning line, nil for a draw or capture win
}

// Position is the mutable game state the search mutates in place. It
// owns the grid, the running Zobrist hash, the per-color pattern counts,
// the capture tallies, and the undo stack — everything spec.md's data
// model assigns to the board component.
type Position struct {
	Size              int
	WinLength         int
	CaptureWinStones  int // 0 disables the capture-count win condition

	cells         []Color
	sideToMove    Color
	captures      [2]int // indexed by Color.Index()
	hash          uint64
	patternCounts [2]PatternCounts
	neighborCount []int8
	moveStack     []MoveRecord
	lastMove      Move
	hasLastMove   bool

	z *zobrist.Table
}

// New creates an empty position. winLength must satisfy 3 <= winLength
// <= size and size must satisfy 2 <= size <= 32; callers validate these
// at the engine boundary (see engine.Config) so New itself does not
// return an error — it is only ever called with pre-validated arguments.
func New(size, winLength int) *Position {
	z := zobrist.Get(size)
	p := &Position{
		Size:          size,
		WinLength:     winLength,
		cells:         make([]Color, size*size),
		sideToMove:    Max,
		neighborCount: make([]int8, size*size),
		z:             z,
	}
	// The hash always includes a capture-count term for each color, even
	// at zero captures, so that MakeMove/UndoMove's toggle (XOR out the
	// old count's key, XOR in the new one) has something to XOR out on a
	// color's first capture. RecomputeHash mirrors this baseline.
	p.hash = zobrist.CaptureKey(Max.Index(), 0) ^ zobrist.CaptureKey(Min.Index(), 0)
	return p
}

// Clone deep-copies the position, used by each Lazy-SMP worker so root
// moves can be explored concurrently without sharing mutable state.
func (p *Position) Clone() *Position {
	c := &Position{
		Size:             p.Size,
		WinLength:        p.WinLength,
		CaptureWinStones: p.CaptureWinStones,
		cells:            append([]Color(nil), p.cells...),
		sideToMove:       p.sideToMove,
		captures:         p.captures,
		hash:             p.hash,
		patternCounts:    p.patternCounts,
		neighborCount:    append([]int8(nil), p.neighborCount...),
		moveStack:        make([]MoveRecord, 0, len(p.moveStack)),
		lastMove:         p.lastMove,
		hasLastMove:      p.hasLastMove,
		z:                p.z,
	}
	for _, rec := range p.moveStack {
		c.moveStack = append(c.moveStack, rec)
	}
	return c
}

func (p *Position) index(m Move) int { return m.Row*p.Size + m.Col }

func (p *Position) inBounds(m Move) bool {
	return m.Row >= 0 && m.Row < p.Size && m.Col >= 0 && m.Col < p.Size
}

// At returns the color occupying a cell.
func (p *Position) At(m Move) Color {
	return p.cells[p.index(m)]
}

// SideToMove is the color about to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Hash is the current Zobrist digest.
func (p *Position) Hash() uint64 { return p.hash }

// Captures returns the capture-pair count for a color.
func (p *Position) Captures(c Color) int { return p.captures[c.Index()] }

// PatternCounts returns the pattern-count vector for a color. The
// returned value is a copy; callers cannot mutate the position through
// it.
func (p *Position) PatternCounts(c Color) PatternCounts { return p.patternCounts[c.Index()] }

// Depth is the number of stones played so far (the move stack length).
func (p *Position) Depth() int { return len(p.moveStack) }

// LastMove reports the most recently played move, if any.
func (p *Position) LastMove() (Move, bool) { return p.lastMove, p.hasLastMove }

const neighborRadius = 2

// Frontier enumerates the candidate moves: empty cells within Chebyshev
// distance 2 of any stone, row-major ordered for reproducibility. The
// first move on an empty board returns the center cell only.
func (p *Position) Frontier() []Move {
	if len(p.moveStack) == 0 {
		c := p.Size / 2
		return []Move{{Row: c, Col: c}}
	}
	out := make([]Move, 0, 32)
	for r := 0; r < p.Size; r++ {
		for c := 0; c < p.Size; c++ {
			idx := r*p.Size + c
			if p.cells[idx] == Empty && p.neighborCount[idx] > 0 {
				out = append(out, Move{Row: r, Col: c})
			}
		}
	}
	if len(out) == 0 {
		c := p.Size / 2
		return []Move{{Row: c, Col: c}}
	}
	return out
}

func (p *Position) adjustNeighbors(center Move, delta int8) {
	for dr := -neighborRadius; dr <= neighborRadius; dr++ {
		for dc := -neighborRadius; dc <= neighborRadius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := center.Row+dr, center.Col+dc
			if r < 0 || r >= p.Size || c < 0 || c >= p.Size {
				continue
			}
			p.neighborCount[r*p.Size+c] += delta
		}
	}
}

// MakeMove places a stone for the side to move, resolves captures,
// updates the hash and pattern counts, and flips the side to move. It
// never mutates the position on failure.
func (p *Position) MakeMove(m Move) error {
	if !p.inBounds(m) {
		return ErrOutOfBounds
	}
	if p.At(m) != Empty {
		return ErrIllegalMove
	}
	if _, done := p.Terminal(); done {
		return ErrIllegalMove
	}

	color := p.sideToMove
	rec := MoveRecord{
		Move:            m,
		Color:           color,
		PrevHash:        p.hash,
		PrevCaptures:    p.captures,
		PatternSnapshot: p.patternCounts,
	}

	idx := p.index(m)
	// findCaptures never reads p.At(m), so it can run before m's stone is
	// placed — that lets the "before" snapshot below cover both m's lines
	// and the lines through every stone about to be captured, all read
	// prior to any mutation.
	groups := p.findCaptures(m, color)
	spanGroups := [][]spanWindow{p.spansThrough(m)}
	for _, g := range groups {
		spanGroups = append(spanGroups,
			p.spansThroughExcept(g.cells[0], g.dir),
			p.spansThroughExcept(g.cells[1], g.dir))
	}
	spans := mergeSpans(spanGroups...)
	before := p.classifySpans(spans)

	p.cells[idx] = color
	p.adjustNeighbors(m, 1)
	p.hash ^= p.z.Stone(m.Row, m.Col, color.Index())

	var captured []Move
	for _, g := range groups {
		for _, cm := range g.cells {
			cidx := p.index(cm)
			opp := p.cells[cidx]
			p.cells[cidx] = Empty
			p.adjustNeighbors(cm, -1)
			p.hash ^= p.z.Stone(cm.Row, cm.Col, opp.Index())
			captured = append(captured, cm)
		}
	}
	if len(captured) > 0 {
		rec.Captured = captured
		p.hash ^= zobrist.CaptureKey(color.Index(), p.captures[color.Index()])
		p.captures[color.Index()] += len(captured) / 2
		p.hash ^= zobrist.CaptureKey(color.Index(), p.captures[color.Index()])
	}

	after := p.classifySpans(spans)
	for i := range p.patternCounts {
		p.patternCounts[i].Sub(before[i])
		p.patternCounts[i].Add(after[i])
	}

	p.hash ^= p.z.Side()
	p.sideToMove = color.Opponent()
	p.lastMove = m
	p.hasLastMove = true

	p.moveStack = append(p.moveStack, rec)
	return nil
}

// UndoMove pops and reverts the most recent move exactly, restoring the
// cells, captures, hash, and pattern counts from the move record.
func (p *Position) UndoMove() error {
	n := len(p.moveStack)
	if n == 0 {
		return ErrNoMoveToUndo
	}
	rec := p.moveStack[n-1]
	p.moveStack = p.moveStack[:n-1]

	idx := p.index(rec.Move)
	p.cells[idx] = Empty
	p.adjustNeighbors(rec.Move, -1)
	for _, cm := range rec.Captured {
		cidx := p.index(cm)
		p.cells[cidx] = rec.Color.Opponent()
		p.adjustNeighbors(cm, 1)
	}

	p.hash = rec.PrevHash
	p.captures = rec.PrevCaptures
	p.patternCounts = rec.PatternSnapshot
	p.sideToMove = rec.Color

	if n-1 > 0 {
		p.lastMove = p.moveStack[n-2].Move
		p.hasLastMove = true
	} else {
		p.hasLastMove = false
	}
	return nil
}

// directions used for capture scanning and win detection: the four line
// axes, each walked in both signs.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// captureGroup is one flanked pair along with the index into directions
// it was found on — the capture's own line, which the capturing move's
// spansThrough already rescans.
type captureGroup struct {
	cells [2]Move
	dir   int
}

// findCaptures scans the four directions from m for the `O X X O`
// flanking pattern (O = color, X = opponent) and returns the captured
// pairs. It never reads the cell at m itself, so it gives the same
// answer whether called before or after m's stone is placed.
func (p *Position) findCaptures(m Move, color Color) []captureGroup {
	opp := color.Opponent()
	var captured []captureGroup
	for d, dir := range directions {
		for _, sign := range [2]int{1, -1} {
			dr, dc := dir[0]*sign, dir[1]*sign
			c1 := Move{m.Row + dr, m.Col + dc}
			c2 := Move{m.Row + 2*dr, m.Col + 2*dc}
			c3 := Move{m.Row + 3*dr, m.Col + 3*dc}
			if !p.inBounds(c3) {
				continue
			}
			if p.At(c1) == opp && p.At(c2) == opp && p.At(c3) == color {
				captured = append(captured, captureGroup{cells: [2]Move{c1, c2}, dir: d})
			}
		}
	}
	return captured
}

// Terminal reports whether the position has ended, and if so how: a
// K-in-a-row through the last-played cell, a capture-count win, or a
// draw when the board is full.
func (p *Position) Terminal() (Outcome, bool) {
	if p.hasLastMove {
		mover := p.cells[p.index(p.lastMove)]
		if mover != Empty {
			if line, ok := p.winningLineThrough(p.lastMove, mover); ok {
				return Outcome{Winner: mover, Line: line}, true
			}
		}
		if p.CaptureWinStones > 0 {
			if p.captures[Max.Index()] >= p.CaptureWinStones {
				return Outcome{Winner: Max}, true
			}
			if p.captures[Min.Index()] >= p.CaptureWinStones {
				return Outcome{Winner: Min}, true
			}
		}
	}
	if len(p.moveStack) == p.Size*p.Size {
		return Outcome{Draw: true}, true
	}
	return Outcome{}, false
}

func (p *Position) winningLineThrough(m Move, color Color) ([]Move, bool) {
	for _, d := range directions {
		line := []Move{m}
		for _, sign := range [2]int{1, -1} {
			dr, dc := d[0]*sign, d[1]*sign
			cur := Move{m.Row + dr, m.Col + dc}
			for p.inBounds(cur) && p.At(cur) == color {
				if sign == 1 {
					line = append(line, cur)
				} else {
					line = append([]Move{cur}, line...)
				}
				cur = Move{cur.Row + dr, cur.Col + dc}
			}
		}
		if len(line) >= p.WinLength {
			return line, true
		}
	}
	return nil, false
}

// RecomputeHash rebuilds the Zobrist hash from scratch, used by tests to
// cross-check the incrementally maintained hash.
func (p *Position) RecomputeHash() uint64 {
	var h uint64
	for r := 0; r < p.Size; r++ {
		for c := 0; c < p.Size; c++ {
			color := p.cells[r*p.Size+c]
			if color == Empty {
				continue
			}
			h ^= p.z.Stone(r, c, color.Index())
		}
	}
	if p.sideToMove == Min {
		h ^= p.z.Side()
	}
	h ^= zobrist.CaptureKey(Max.Index(), p.captures[Max.Index()])
	h ^= zobrist.CaptureKey(Min.Index(), p.captures[Min.Index()])
	return h
}

// RecomputePatternCounts rebuilds both colors' pattern counts from a full
// board rescan, used by tests to cross-check the incremental maintenance.
func (p *Position) RecomputePatternCounts() [2]PatternCounts {
	ls := linesFor(p.Size)
	var buf [40]byte
	var counts [2]PatternCounts
	for _, line := range ls.all {
		cells := make([]Color, len(line))
		for i, idx := range line {
			cells[i] = p.cells[idx]
		}
		counts[Max.Index()].Add(classifyLine(cells, Max, p.WinLength, buf[:]))
		counts[Min.Index()].Add(classifyLine(cells, Min, p.WinLength, buf[:]))
	}
	return counts
}
