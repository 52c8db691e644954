package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// Scope controls which declarations a marker annotates.
type Scope string

const (
	// ScopeAll captures every qualifying declaration after the first marker.
	ScopeAll Scope = "all"
	// ScopeNext captures only the first qualifying declaration after each marker.
	ScopeNext Scope = "next"
)

// MarkerDetector gates files in or out and lists annotated declaration names.
type MarkerDetector struct {
	marker string
	scope  Scope
	decl   *regexp.Regexp
}

// NewMarkerDetector builds a detector for the given marker token and
// introducer keywords (e.g. "export interface").
func NewMarkerDetector(marker string, introducers []string, scope Scope) (*MarkerDetector, error) {
	if marker == "" {
		return nil, fmt.Errorf("marker token is empty")
	}
	if len(introducers) == 0 {
		return nil, fmt.Errorf("no declaration introducers given")
	}
	switch scope {
	case "":
		scope = ScopeAll
	case ScopeAll, ScopeNext:
	default:
		return nil, fmt.Errorf("unknown marker scope %q", scope)
	}

	alts := make([]string, 0, len(introducers))
	for _, intro := range introducers {
		alts = append(alts, introducerPattern(intro))
	}
	decl, err := regexp.Compile(`(?m)^(?:` + strings.Join(alts, "|") + `)[ \t]+(\w+)`)
	if err != nil {
		return nil, fmt.Errorf("compile declaration pattern: %w", err)
	}

	return &MarkerDetector{marker: marker, scope: scope, decl: decl}, nil
}

// introducerPattern quotes the words of an introducer and lets any run of
// blanks separate them.
func introducerPattern(intro string) string {
	words := strings.Fields(intro)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, `[ \t]+`)
}

// FileParticipates reports whether the marker token appears anywhere in buffer.
func (m *MarkerDetector) FileParticipates(buffer string) bool {
	return strings.Contains(buffer, m.marker)
}

// ListDeclarationNames returns the names of annotated declarations in match
// order. Duplicates are preserved.
func (m *MarkerDetector) ListDeclarationNames(buffer string) []string {
	markers := markerEnds(buffer, m.marker)
	if len(markers) == 0 {
		return nil
	}

	var names []string
	next := 0 // index into markers of the earliest marker not yet consumed
	for _, loc := range m.decl.FindAllStringSubmatchIndex(buffer, -1) {
		start := loc[0]
		name := buffer[loc[2]:loc[3]]

		switch m.scope {
		case ScopeNext:
			// Skip to the last marker that sits before this line. Markers
			// between two declarations all collapse into one match.
			consumed := false
			for next < len(markers) && markers[next] <= start {
				next++
				consumed = true
			}
			if consumed {
				names = append(names, name)
			}
		default:
			if markers[0] <= start {
				names = append(names, name)
			}
		}
	}
	return names
}

// markerEnds returns the byte offset just past each marker occurrence.
func markerEnds(buffer, marker string) []int {
	var ends []int
	offset := 0
	for {
		i := strings.Index(buffer[offset:], marker)
		if i < 0 {
			return ends
		}
		offset += i + len(marker)
		ends = append(ends, offset)
	}
}
