package extract

import "fmt"

// Options configures an Extractor.
type Options struct {
	// Marker is the token that opts a file into generation.
	Marker string
	// Introducers are the keywords that open a declaration, e.g. "export interface".
	Introducers []string
	// Scope selects which declarations a marker annotates.
	Scope Scope
}

// DefaultOptions matches files annotated with "generateInterfaceToEnum".
func DefaultOptions() Options {
	return Options{
		Marker:      "generateInterfaceToEnum",
		Introducers: []string{"export interface"},
		Scope:       ScopeAll,
	}
}

// Extractor turns a source buffer into a FileResult. It holds no per-file
// state and is safe for concurrent use.
type Extractor struct {
	detector    *MarkerDetector
	introducers []string
}

// NewExtractor creates an extractor from opts.
func NewExtractor(opts Options) (*Extractor, error) {
	detector, err := NewMarkerDetector(opts.Marker, opts.Introducers, opts.Scope)
	if err != nil {
		return nil, fmt.Errorf("invalid extractor options: %w", err)
	}
	return &Extractor{detector: detector, introducers: opts.Introducers}, nil
}

// Participates reports whether buffer carries the marker token.
func (e *Extractor) Participates(buffer string) bool {
	return e.detector.FileParticipates(buffer)
}

// Extract returns the declarations of a participating file. ok is false when
// the file does not carry the marker. Declarations that cannot be located,
// never close or have no depth-1 fields are left out.
func (e *Extractor) Extract(path, buffer string) (result FileResult, ok bool) {
	if !e.detector.FileParticipates(buffer) {
		return FileResult{Path: path}, false
	}

	result = FileResult{Path: path, Declarations: []DeclarationRecord{}}
	lines := SplitLines(buffer)
	seen := make(map[string]bool)

	for _, name := range e.detector.ListDeclarationNames(buffer) {
		// The locator always lands on the first declaration with this name,
		// so later duplicates would only repeat it.
		if seen[name] {
			continue
		}
		seen[name] = true

		if record, found := e.declaration(lines, name); found {
			result.Declarations = append(result.Declarations, record)
		}
	}

	return result, true
}

func (e *Extractor) declaration(lines []string, name string) (DeclarationRecord, bool) {
	start, found := e.locate(lines, name)
	if !found {
		return DeclarationRecord{}, false
	}

	span, entries, found := FindOuterSpan(lines, start)
	if !found {
		return DeclarationRecord{}, false
	}

	fields := ExtractFields(lines, span, entries)
	if fields.Len() == 0 {
		return DeclarationRecord{}, false
	}

	return DeclarationRecord{Name: name, Fields: fields}, true
}

// locate finds the earliest start line across all introducers.
func (e *Extractor) locate(lines []string, name string) (int, bool) {
	best, found := 0, false
	for _, intro := range e.introducers {
		if line, ok := FindStartLine(lines, intro, name); ok && (!found || line < best) {
			best, found = line, true
		}
	}
	return best, found
}
