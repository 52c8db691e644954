// Package generator runs the enum generation pipeline over source trees:
// discover, read and gate, extract, render, then write or remove outputs.
package generator

import (
	"bufio"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mvp-joe/interface-enum/internal/discovery"
	"github.com/mvp-joe/interface-enum/internal/extract"
	"github.com/mvp-joe/interface-enum/internal/render"
)

// ErrNoRoots is returned when a generator is configured without source roots.
var ErrNoRoots = errors.New("no source roots configured")

// generatedHeader starts every file this tool writes.
var generatedHeader = "// This file was generated by " + render.GeneratorName

// Generator turns marked source files into companion enum files.
type Generator struct {
	config    *Config
	extractor *extract.Extractor
	discovery *discovery.FileDiscovery
	progress  ProgressReporter
	cache     *outputCache

	// mu serializes progress callbacks and stats updates across workers
	mu sync.Mutex
}

// New creates a generator. A nil progress reporter disables reporting.
func New(cfg *Config, progress ProgressReporter) (*Generator, error) {
	if cfg == nil || len(cfg.Roots) == 0 {
		return nil, ErrNoRoots
	}
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}

	extractor, err := extract.NewExtractor(cfg.Extract)
	if err != nil {
		return nil, err
	}

	fd, err := discovery.NewFileDiscovery(cfg.Roots, cfg.IncludePatterns, cfg.IgnorePatterns, cfg.Suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create file discovery: %w", err)
	}

	cache, err := newOutputCache()
	if err != nil {
		return nil, fmt.Errorf("failed to create output cache: %w", err)
	}

	return &Generator{
		config:    cfg,
		extractor: extractor,
		discovery: fd,
		progress:  progress,
		cache:     cache,
	}, nil
}

// Extractor returns the extractor the generator was configured with.
func (g *Generator) Extractor() *extract.Extractor {
	return g.extractor
}

// Discover lists the candidate files under all roots.
func (g *Generator) Discover() ([]string, error) {
	return g.discovery.DiscoverFiles()
}

// Run discovers every candidate file and processes it. Per-file failures do
// not stop the run; they are collected in Stats and joined into the error.
func (g *Generator) Run(ctx context.Context) (*Stats, error) {
	g.progress.OnDiscoveryStart()
	files, err := g.discovery.DiscoverFiles()
	if err != nil {
		return nil, fmt.Errorf("file discovery failed: %w", err)
	}
	g.progress.OnDiscoveryComplete(len(files))

	return g.process(ctx, files)
}

// RunFiles processes only the given files, typically a batch reported by the
// watcher. Paths outside the roots, not matching the include patterns, or
// naming generated outputs are ignored. Deleted files have their stale output
// removed.
func (g *Generator) RunFiles(ctx context.Context, files []string) (*Stats, error) {
	var candidates []string
	seen := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil || seen[abs] {
			continue
		}
		seen[abs] = true
		if g.isCandidate(abs) {
			candidates = append(candidates, abs)
		}
	}

	return g.process(ctx, candidates)
}

func (g *Generator) isCandidate(path string) bool {
	if strings.HasSuffix(path, g.config.Suffix) {
		return false
	}
	for _, root := range g.config.Roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		if path == absRoot {
			return true
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		if g.discovery.Matches(filepath.ToSlash(rel)) {
			return true
		}
	}
	return false
}

func (g *Generator) process(ctx context.Context, files []string) (*Stats, error) {
	start := time.Now()
	stats := &Stats{}

	g.progress.OnFileProcessingStart(len(files))

	workers := g.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for _, file := range files {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			report := g.processFile(file)

			g.mu.Lock()
			stats.add(report)
			g.progress.OnFileProcessed(file)
			g.mu.Unlock()
			return nil
		})
	}

	err := eg.Wait()
	stats.sortReports()
	g.progress.OnComplete(stats, time.Since(start))

	if err != nil {
		return stats, err
	}
	return stats, stats.Err()
}

// processFile runs one file through the pipeline. It never panics on bad
// input; read and write failures come back in the report.
func (g *Generator) processFile(path string) FileReport {
	outputPath := render.OutputPath(path, g.config.Extension, g.config.Suffix)
	report := FileReport{SourcePath: path, OutputPath: outputPath}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// The source is gone; clean up whatever it generated before
			g.cache.forget(path)
			report.Outcome = OutcomeUnmarked
			return g.removeStale(report, true)
		}
		report.Outcome = OutcomeFailed
		report.Err = fmt.Errorf("failed to read %s: %w", path, err)
		return report
	}
	buffer := string(data)

	result, marked := g.extractor.Extract(path, buffer)
	if !marked {
		g.cache.forget(path)
		report.Outcome = OutcomeUnmarked
		return g.removeStale(report, true)
	}
	report.Marked = true
	report.Declarations = len(result.Declarations)

	content, ok := render.File(result, render.OutputName(path, g.config.Extension, g.config.Suffix))
	if !ok {
		g.cache.forget(path)
		report.Outcome = OutcomeEmpty
		return g.removeStale(report, false)
	}

	if g.config.DryRun {
		report.Outcome = OutcomeWritten
		report.Content = content
		return report
	}

	sum := sha256.Sum256(data)
	if g.cache.unchanged(path, sum) && fileExists(outputPath) {
		report.Outcome = OutcomeUnchanged
		return report
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		g.cache.forget(path)
		report.Outcome = OutcomeFailed
		report.Err = fmt.Errorf("failed to write %s: %w", outputPath, err)
		return report
	}
	g.cache.remember(path, sum)

	report.Outcome = OutcomeWritten
	return report
}

// removeStale deletes an output left over from an earlier run. With
// onlyGenerated set, files that do not carry the generated header are kept.
// The report's outcome is set to removed only when something was deleted.
func (g *Generator) removeStale(report FileReport, onlyGenerated bool) FileReport {
	if !fileExists(report.OutputPath) {
		return report
	}
	if onlyGenerated && !isGenerated(report.OutputPath) {
		return report
	}

	if !g.config.DryRun {
		if err := os.Remove(report.OutputPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			report.Outcome = OutcomeFailed
			report.Err = fmt.Errorf("failed to remove %s: %w", report.OutputPath, err)
			return report
		}
	}

	report.Outcome = OutcomeRemoved
	return report
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// isGenerated reports whether the file at path starts with the header this
// tool writes.
func isGenerated(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.HasPrefix(line, generatedHeader)
}
