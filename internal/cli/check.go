package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/interface-enum/internal/config"
	"github.com/mvp-joe/interface-enum/internal/generator"
	"github.com/mvp-joe/interface-enum/internal/verify"
)

// ErrDiscrepancies is returned by check when the brace scan and the parser disagree.
var ErrDiscrepancies = errors.New("extracted fields differ from parsed interfaces")

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Cross-check extracted fields against a TypeScript parse",
	Long: `Check extracts every annotated interface the way generate does and compares
the field names with the members tree-sitter finds in the same declaration.
Any difference (a field the brace scan missed, or a name it picked up that is
not a member) is reported and the command exits non-zero.

Nothing is written to disk.`,
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringSliceVarP(&pathFlags, "path", "p", nil, "Source path to scan (repeatable, overrides config paths)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root, err := projectRoot()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	return executeCheck(ctx, root, cfg, pathFlags, cmd.OutOrStdout())
}

func executeCheck(ctx context.Context, root string, cfg *config.Config, paths []string, out io.Writer) error {
	if len(paths) > 0 {
		cfg.Paths = paths
	}

	gen, err := generator.New(cfg.ToGeneratorConfig(root), &generator.NoOpProgressReporter{})
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	files, err := gen.Discover()
	if err != nil {
		return fmt.Errorf("failed to discover files: %w", err)
	}

	verifier := verify.NewVerifier(gen.Extractor())
	var found int
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		discrepancies, err := verifier.VerifyFile(ctx, file)
		if err != nil {
			return fmt.Errorf("failed to verify %s: %w", file, err)
		}
		for _, d := range discrepancies {
			found++
			fmt.Fprintln(out, formatDiscrepancy(root, d))
		}
	}

	if found > 0 {
		return fmt.Errorf("%w: %d declarations", ErrDiscrepancies, found)
	}
	fmt.Fprintf(out, "✓ %d files checked, no discrepancies\n", len(files))
	return nil
}

func formatDiscrepancy(root string, d verify.Discrepancy) string {
	path := d.Path
	if rel, err := filepath.Rel(root, path); err == nil {
		path = rel
	}

	if d.NotParsed {
		return fmt.Sprintf("%s: %s: declaration not found by parser", path, d.Name)
	}

	var parts []string
	if len(d.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(d.Missing, ", "))
	}
	if len(d.Extra) > 0 {
		parts = append(parts, "extra "+strings.Join(d.Extra, ", "))
	}
	return fmt.Sprintf("%s: %s: %s", path, d.Name, strings.Join(parts, "; "))
}
