package extract

// BraceEntry is one `{` seen by the scanner. End is nil while the brace is
// still open.
type BraceEntry struct {
	Start Position
	End   *Position
}

// Closed reports whether the entry has seen its matching `}`.
func (e BraceEntry) Closed() bool {
	return e.End != nil
}

// FindOuterSpan scans lines from fromLine and returns the span of the first
// `{` and its matching `}`, plus every brace entry recorded on the way.
//
// A `}` always closes the innermost brace that is still open; a `}` with no
// open brace is ignored. Scanning stops at the end of the line on which the
// first brace closes. If it never closes the span is not found.
func FindOuterSpan(lines []string, fromLine int) (BraceSpan, []BraceEntry, bool) {
	if fromLine < 0 {
		fromLine = 0
	}

	var entries []BraceEntry
	var open []int // indexes into entries, innermost last

	for i := fromLine; i < len(lines); i++ {
		line := lines[i]
		for j := 0; j < len(line); j++ {
			switch line[j] {
			case '{':
				entries = append(entries, BraceEntry{Start: Position{Line: i, Col: j}})
				open = append(open, len(entries)-1)
			case '}':
				if len(open) == 0 {
					continue
				}
				top := open[len(open)-1]
				open = open[:len(open)-1]
				entries[top].End = &Position{Line: i, Col: j}
			}
		}

		if len(entries) > 0 && entries[0].Closed() {
			return BraceSpan{Start: entries[0].Start, End: *entries[0].End}, entries, true
		}
	}

	return BraceSpan{}, entries, false
}
