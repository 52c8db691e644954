package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/interface-enum/internal/config"
	"github.com/mvp-joe/interface-enum/internal/discovery"
	"github.com/mvp-joe/interface-enum/internal/generator"
	"github.com/mvp-joe/interface-enum/internal/watcher"
)

var (
	quietFlag  bool
	watchFlag  bool
	dryRunFlag bool
	pathFlags  []string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate enum files for every marked source file",
	Long: `Generate walks the configured paths, finds TypeScript files carrying the
marker and writes <name>.interfaceEnums.ts next to each one.

Stale outputs are removed: a marked file whose annotated interfaces have no
top-level fields gets no output file, and a generated file whose source lost
its marker is deleted.

Examples:
  # Generate for the paths in interface-enum.json
  interface-enum generate

  # Generate for specific directories, without progress output
  interface-enum generate --path src --path lib --quiet

  # Print what would be written without touching disk
  interface-enum generate --dry-run

  # Regenerate whenever a source changes
  interface-enum generate --watch
`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	cmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch for file changes and regenerate incrementally")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Print generated files instead of writing them")
	cmd.Flags().StringSliceVarP(&pathFlags, "path", "p", nil, "Source path to scan (repeatable, overrides config paths)")
}

// generateOptions carries the command-line switches into executeGenerate.
type generateOptions struct {
	quiet   bool
	verbose bool
	watch   bool
	dryRun  bool
	paths   []string
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\nInterrupted! Cancelling generation...")
			cancel()
		case <-ctx.Done():
		}
	}()

	root, err := projectRoot()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	opts := generateOptions{
		quiet:   quietFlag,
		verbose: verbose,
		watch:   watchFlag,
		dryRun:  dryRunFlag,
		paths:   pathFlags,
	}
	_, err = executeGenerate(ctx, root, cfg, opts, cmd.OutOrStdout())
	return err
}

// executeGenerate runs one generation pass, then keeps watching when asked.
// The stats returned are those of the initial pass.
func executeGenerate(ctx context.Context, root string, cfg *config.Config, opts generateOptions, out io.Writer) (*generator.Stats, error) {
	if len(opts.paths) > 0 {
		cfg.Paths = opts.paths
	}

	genConfig := cfg.ToGeneratorConfig(root)
	genConfig.DryRun = opts.dryRun

	var progress generator.ProgressReporter = &generator.NoOpProgressReporter{}
	if !opts.quiet && !opts.dryRun {
		progress = NewCLIProgressReporter(false)
	}

	gen, err := generator.New(genConfig, progress)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	stats, err := gen.Run(ctx)
	if ctx.Err() != nil {
		return stats, fmt.Errorf("generation cancelled")
	}
	if stats != nil && opts.verbose {
		logReports(root, stats)
	}
	if stats != nil && opts.dryRun {
		printDryRun(out, stats)
	}
	if err != nil && !opts.watch {
		return stats, fmt.Errorf("generation failed: %w", err)
	}
	if err != nil {
		log.Printf("Initial generation finished with errors: %v", err)
	}

	if !opts.watch {
		return stats, nil
	}

	return stats, watchAndRegenerate(ctx, root, gen, genConfig, opts)
}

// watchAndRegenerate blocks until ctx is cancelled, regenerating the files
// each debounced batch of changes names.
func watchAndRegenerate(ctx context.Context, root string, gen *generator.Generator, genConfig *generator.Config, opts generateOptions) error {
	quiet := opts.quiet
	var dirs []string
	for _, r := range genConfig.Roots {
		if info, err := os.Stat(r); err == nil && !info.IsDir() {
			r = filepath.Dir(r)
		}
		dirs = append(dirs, r)
	}

	ignore, err := discovery.NewFileDiscovery(nil, nil, genConfig.IgnorePatterns, "")
	if err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(dirs, watcher.Options{
		Extension:     genConfig.Extension,
		ExcludeSuffix: genConfig.Suffix,
		SkipDir: func(path string) bool {
			for _, d := range dirs {
				if rel, err := filepath.Rel(d, path); err == nil && ignore.Ignored(filepath.ToSlash(rel)) {
					return true
				}
			}
			return false
		},
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer fw.Stop()

	if !quiet {
		log.Println("Watching for changes...")
	}

	err = fw.Start(ctx, func(files []string) {
		stats, err := gen.RunFiles(ctx, files)
		if err != nil {
			log.Printf("Regeneration failed: %v", err)
		}
		if opts.verbose && stats != nil {
			logReports(root, stats)
		}
		if !quiet && stats != nil {
			log.Printf("Regenerated: %d written, %d removed, %d unchanged", stats.FilesWritten, stats.FilesRemoved, stats.FilesUnchanged)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	<-ctx.Done()
	if !quiet {
		log.Println("Watch mode stopped")
	}
	return nil
}

// logReports logs one line per file that was touched or failed.
func logReports(root string, stats *generator.Stats) {
	for _, r := range stats.Reports {
		if r.Outcome == generator.OutcomeUnmarked {
			continue
		}
		path := r.SourcePath
		if rel, err := filepath.Rel(root, path); err == nil {
			path = rel
		}
		if r.Err != nil {
			log.Printf("%s: %s: %v", path, r.Outcome, r.Err)
			continue
		}
		log.Printf("%s: %s (%d declarations)", path, r.Outcome, r.Declarations)
	}
}

func printDryRun(out io.Writer, stats *generator.Stats) {
	for _, r := range stats.Reports {
		switch r.Outcome {
		case generator.OutcomeWritten:
			fmt.Fprintf(out, "==> %s\n%s\n", r.OutputPath, r.Content)
		case generator.OutcomeRemoved:
			fmt.Fprintf(out, "==> %s (would be removed)\n\n", r.OutputPath)
		}
	}
}
