package extract

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Position is a zero-based line/column location in a source buffer.
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// BraceSpan marks the opening brace of a declaration body and its matching
// closing brace at the same nesting depth.
type BraceSpan struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Fields is the ordered field-name mapping of a declaration. Every key maps to
// itself, which is how the enum renderer wants it.
type Fields = orderedmap.OrderedMap[string, string]

// DeclarationRecord is one annotated declaration with at least one field.
type DeclarationRecord struct {
	Name   string  `json:"name"`
	Fields *Fields `json:"fields"`
}

// FieldNames returns the record's field names in source order.
func (d DeclarationRecord) FieldNames() []string {
	if d.Fields == nil {
		return nil
	}
	names := make([]string, 0, d.Fields.Len())
	for pair := d.Fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// FileResult is the extraction output for one participating file.
type FileResult struct {
	Path         string              `json:"path"`
	Declarations []DeclarationRecord `json:"declarations"`
}

// SplitLines splits a buffer into lines, dropping the carriage return of CRLF
// line endings.
func SplitLines(buffer string) []string {
	lines := strings.Split(buffer, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
