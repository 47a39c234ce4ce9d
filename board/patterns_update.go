package board

// spanWindow is one line window plus enough identity (which physical line,
// and where the window starts on it) to recognize two windows as covering
// the same stretch of board even when they were carved from different
// cells.
type spanWindow struct {
	cells cellLine
	id    int
	start int
}

// spansThrough returns the windows (radius WinLength-1, widened to at
// least 3 so a capture's flanking stones are always inside the window)
// for the up-to-four lines passing through m.
func (p *Position) spansThrough(m Move) []spanWindow {
	return p.spansThroughExcept(m, -1)
}

// spansThroughExcept is spansThrough but skips direction slot skipDir
// (pass -1 to skip none). Used for a captured stone's own rescan: the
// capture direction's line already runs through the capturing move m and
// is covered by m's own spansThrough, so only the other three need adding.
func (p *Position) spansThroughExcept(m Move, skipDir int) []spanWindow {
	radius := p.WinLength - 1
	if radius < 3 {
		radius = 3
	}
	ls := linesFor(p.Size)
	idx := p.index(m)
	spans := make([]spanWindow, 0, 4)
	for d := 0; d < 4; d++ {
		if d == skipDir {
			continue
		}
		lr := ls.throughCell[idx][d]
		if lr.line == nil {
			continue
		}
		window, start := lr.window(radius)
		spans = append(spans, spanWindow{cells: window, id: lr.id, start: start})
	}
	return spans
}

// mergeSpans unions spans from multiple sources, dropping any window that
// covers a physical line stretch already included by an earlier one. This
// keeps a before/after classification from double-counting a single
// pattern change when the same line is reached from two different cells
// (the capturing move and one of the stones it captures).
func mergeSpans(groups ...[]spanWindow) []spanWindow {
	type key struct{ id, start, length int }
	seen := make(map[key]bool)
	out := make([]spanWindow, 0, 4)
	for _, g := range groups {
		for _, sp := range g {
			k := key{sp.id, sp.start, len(sp.cells)}
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, sp)
		}
	}
	return out
}

// classifySpans classifies every span for both colors and sums the
// per-color pattern counts across spans.
func (p *Position) classifySpans(spans []spanWindow) [2]PatternCounts {
	var buf [96]byte
	var totals [2]PatternCounts
	for _, span := range spans {
		cells := make([]Color, len(span.cells))
		for i, idx := range span.cells {
			cells[i] = p.cells[idx]
		}
		totals[Max.Index()].Add(classifyLine(cells, Max, p.WinLength, buf[:]))
		totals[Min.Index()].Add(classifyLine(cells, Min, p.WinLength, buf[:]))
	}
	return totals
}
