package extract

import (
	"regexp"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var leadingIdent = regexp.MustCompile(`^\w+`)

// ExtractFields collects the leading identifier of every depth-1 line strictly
// inside span. entries must be the brace entries FindOuterSpan returned for
// span, with the outer brace first.
func ExtractFields(lines []string, span BraceSpan, entries []BraceEntry) *Fields {
	fields := orderedmap.New[string, string]()

	first, last := span.Start.Line+1, span.End.Line-1
	if first > last {
		return fields
	}

	nested := nestedLines(entries, first, last)
	for i := first; i <= last && i < len(lines); i++ {
		if nested[i-first] {
			continue
		}
		ident := leadingIdent.FindString(strings.TrimSpace(lines[i]))
		if ident == "" {
			continue
		}
		fields.Set(ident, ident)
	}

	return fields
}

// nestedLines marks the lines in [first, last] that sit strictly inside a
// brace pair other than the outer one.
func nestedLines(entries []BraceEntry, first, last int) []bool {
	nested := make([]bool, last-first+1)
	for _, e := range entries[min(1, len(entries)):] {
		if !e.Closed() {
			continue
		}
		from := max(e.Start.Line+1, first)
		to := min(e.End.Line-1, last)
		for i := from; i <= to; i++ {
			nested[i-first] = true
		}
	}
	return nested
}
