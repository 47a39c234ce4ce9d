package board

import "sync"

// cellLine is a list of cell indices (row*size+col) forming one straight
// line on the board: a row, a column, or a diagonal of length >= 3.
type cellLine []int

type lineSet struct {
	all         []cellLine
	throughCell [][4]lineRef // for each cell, the 4 lines through it and the cell's position in each
}

// lineRef points at one of the four line directions passing through a
// cell, and the cell's offset within that line — enough to carve out a
// radius-limited window without rescanning the whole line. id identifies
// the physical line within lineSet.all, so two windows carved from the
// same line can be recognized as overlapping even when reached from
// different cells.
type lineRef struct {
	line   cellLine
	offset int
	id     int
}

type lineCache struct {
	mu     sync.Mutex
	bySize map[int]*lineSet
}

var lines = &lineCache{bySize: make(map[int]*lineSet)}

func linesFor(size int) *lineSet {
	lines.mu.Lock()
	defer lines.mu.Unlock()
	if ls, ok := lines.bySize[size]; ok {
		return ls
	}
	ls := buildLineSet(size)
	lines.bySize[size] = ls
	return ls
}

func buildLineSet(size int) *lineSet {
	ls := &lineSet{throughCell: make([][4]lineRef, size*size)}
	addLine := func(cells cellLine) {
		if len(cells) < 3 {
			return
		}
		id := len(ls.all)
		ls.all = append(ls.all, cells)
		for offset, idx := range cells {
			for d := 0; d < 4; d++ {
				if ls.throughCell[idx][d].line == nil {
					ls.throughCell[idx][d] = lineRef{line: cells, offset: offset, id: id}
					break
				}
			}
		}
	}
	for r := 0; r < size; r++ {
		line := make(cellLine, 0, size)
		for c := 0; c < size; c++ {
			line = append(line, r*size+c)
		}
		addLine(line)
	}
	for c := 0; c < size; c++ {
		line := make(cellLine, 0, size)
		for r := 0; r < size; r++ {
			line = append(line, r*size+c)
		}
		addLine(line)
	}
	for c := 0; c < size; c++ {
		addLine(collectDiag(size, c, 0, 1, 1))
	}
	for r := 1; r < size; r++ {
		addLine(collectDiag(size, 0, r, 1, 1))
	}
	for c := 0; c < size; c++ {
		addLine(collectDiag(size, c, 0, -1, 1))
	}
	for r := 1; r < size; r++ {
		addLine(collectDiag(size, size-1, r, -1, 1))
	}
	return ls
}

func collectDiag(size, startCol, startRow, dc, dr int) cellLine {
	var line cellLine
	c, r := startCol, startRow
	for c >= 0 && r >= 0 && c < size && r < size {
		line = append(line, r*size+c)
		c += dc
		r += dr
	}
	return line
}

// window returns the sub-slice of a line centered on `offset` extending
// radius cells each way (clamped to the line's bounds), along with the
// absolute start index it begins at within the line.
func (lr lineRef) window(radius int) (cellLine, int) {
	start := lr.offset - radius
	if start < 0 {
		start = 0
	}
	end := lr.offset + radius + 1
	if end > len(lr.line) {
		end = len(lr.line)
	}
	return lr.line[start:end], start
}
