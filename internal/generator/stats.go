package generator

import (
	"errors"
	"sort"
)

// Outcome describes what happened to one source file.
type Outcome string

const (
	OutcomeUnmarked  Outcome = "unmarked"  // no marker, nothing to do
	OutcomeWritten   Outcome = "written"   // output file written
	OutcomeUnchanged Outcome = "unchanged" // source unchanged since the last write
	OutcomeRemoved   Outcome = "removed"   // stale output removed, nothing to write
	OutcomeEmpty     Outcome = "empty"     // marked but no declaration had fields
	OutcomeFailed    Outcome = "failed"
)

// FileReport is the per-file result of a run.
type FileReport struct {
	SourcePath   string
	OutputPath   string
	Outcome      Outcome
	Marked       bool
	Declarations int
	// Content is the rendered output; only kept on dry runs.
	Content string
	Err     error
}

// Stats summarizes a generation run.
type Stats struct {
	FilesScanned   int
	FilesMarked    int
	FilesWritten   int
	FilesUnchanged int
	FilesRemoved   int
	Declarations   int
	Reports        []FileReport
	Errors         []error
}

func (s *Stats) add(r FileReport) {
	s.FilesScanned++
	s.Declarations += r.Declarations
	if r.Marked {
		s.FilesMarked++
	}

	switch r.Outcome {
	case OutcomeWritten:
		s.FilesWritten++
	case OutcomeUnchanged:
		s.FilesUnchanged++
	case OutcomeRemoved:
		s.FilesRemoved++
	case OutcomeFailed:
		s.Errors = append(s.Errors, r.Err)
	}

	s.Reports = append(s.Reports, r)
}

// sortReports orders reports by source path so output is stable regardless of
// worker scheduling.
func (s *Stats) sortReports() {
	sort.Slice(s.Reports, func(i, j int) bool {
		return s.Reports[i].SourcePath < s.Reports[j].SourcePath
	})
}

// Err joins every per-file error, or returns nil.
func (s *Stats) Err() error {
	return errors.Join(s.Errors...)
}
