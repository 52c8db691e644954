// Package mcp exposes extraction and rendering as MCP tools over stdio.
package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
)

// MCPServer manages the MCP server lifecycle.
type MCPServer struct {
	mcp *server.MCPServer
}

// NewMCPServer creates a server with both tools registered.
func NewMCPServer(cfg ToolConfig, version string) (*MCPServer, error) {
	if cfg.Extractor == nil {
		return nil, fmt.Errorf("extractor is required")
	}

	mcpServer := server.NewMCPServer(
		"interface-enum-mcp",
		version,
		server.WithToolCapabilities(true),
	)

	AddExtractTool(mcpServer, cfg)
	AddRenderTool(mcpServer, cfg)

	return &MCPServer{mcp: mcpServer}, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *MCPServer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		// Logs go to stderr; stdout carries the protocol
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
