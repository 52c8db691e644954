package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/interface-enum/internal/extract"
	"github.com/mvp-joe/interface-enum/internal/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server exposing extraction as tools",
	Long: `Start a Model Context Protocol (MCP) server on stdio so coding assistants
can extract annotated interfaces and preview enum files without touching disk.

Tools:
- interface_enum_extract: declarations and their fields as JSON
- interface_enum_render: the generated enum file text

Example:
  interface-enum mcp`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	root, err := projectRoot()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	genConfig := cfg.ToGeneratorConfig(root)
	extractor, err := extract.NewExtractor(genConfig.Extract)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	// stdout carries the protocol
	fmt.Fprintf(os.Stderr, "interface-enum MCP Server\n")
	fmt.Fprintf(os.Stderr, "Marker: %s\n\n", cfg.Marker)

	server, err := mcp.NewMCPServer(mcp.ToolConfig{
		Extractor: extractor,
		Extension: genConfig.Extension,
		Suffix:    genConfig.Suffix,
	}, Version)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return server.Serve(context.Background())
}
