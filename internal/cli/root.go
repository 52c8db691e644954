package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/interface-enum/internal/config"
)

var (
	cfgFile string
	rootDir string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "interface-enum",
	Short: "Generate TypeScript enums from annotated interfaces",
	Long: `interface-enum scans TypeScript sources for files containing the marker
comment (generateInterfaceToEnum by default) and writes a companion
<name>.interfaceEnums.ts file next to each one, holding an enum per annotated
interface whose members mirror the interface's top-level fields.

Running interface-enum without a subcommand is the same as "interface-enum generate".`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./interface-enum.{json,yaml,yml})")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", "", "project root (default is the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	addGenerateFlags(rootCmd)
}

// projectRoot returns the absolute project root from --dir or the working directory.
func projectRoot() (string, error) {
	if rootDir != "" {
		return filepath.Abs(rootDir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// loadConfig loads configuration for root, honoring --config.
func loadConfig(root string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.NewFileLoader(root, cfgFile).Load()
	} else {
		cfg, err = config.LoadConfigFromDir(root)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
