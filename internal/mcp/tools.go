package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/interface-enum/internal/extract"
	"github.com/mvp-joe/interface-enum/internal/render"
)

// defaultFileName names the virtual source when the caller gives none.
const defaultFileName = "source.ts"

// ToolConfig carries what the tools need to extract and render.
type ToolConfig struct {
	Extractor *extract.Extractor
	Extension string
	Suffix    string
}

// DeclarationJSON is the wire form of one extracted declaration.
type DeclarationJSON struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// ExtractResponse is returned by the interface_enum_extract tool.
type ExtractResponse struct {
	FileName     string            `json:"file_name"`
	Marked       bool              `json:"marked"`
	Declarations []DeclarationJSON `json:"declarations"`
}

// AddExtractTool registers the interface_enum_extract tool with an MCP server.
func AddExtractTool(s *server.MCPServer, cfg ToolConfig) {
	tool := mcp.NewTool(
		"interface_enum_extract",
		mcp.WithDescription("Extract the top-level field names of marker-annotated TypeScript interfaces. Returns JSON with one entry per declaration that has at least one field."),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("TypeScript source text")),
		mcp.WithString("file_name",
			mcp.Description("File name used for the result (default: source.ts)")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createExtractHandler(cfg))
}

// AddRenderTool registers the interface_enum_render tool with an MCP server.
func AddRenderTool(s *server.MCPServer, cfg ToolConfig) {
	tool := mcp.NewTool(
		"interface_enum_render",
		mcp.WithDescription("Render the companion enum file for a TypeScript source, exactly as the generator would write it."),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("TypeScript source text")),
		mcp.WithString("file_name",
			mcp.Description("Source file name; the output name is derived from it (default: source.ts)")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createRenderHandler(cfg))
}

type toolArgs struct {
	source   string
	fileName string
}

// parseArgs pulls source and file_name out of the request. A non-empty
// message means the caller sent bad arguments.
func parseArgs(request mcp.CallToolRequest) (toolArgs, string) {
	argsMap, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return toolArgs{}, "invalid arguments format"
	}

	source, ok := argsMap["source"].(string)
	if !ok || source == "" {
		return toolArgs{}, "source parameter is required"
	}

	fileName := defaultFileName
	if name, ok := argsMap["file_name"].(string); ok && name != "" {
		fileName = name
	}

	return toolArgs{source: source, fileName: fileName}, ""
}

func createExtractHandler(cfg ToolConfig) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, msg := parseArgs(request)
		if msg != "" {
			return mcp.NewToolResultError(msg), nil
		}

		result, marked := cfg.Extractor.Extract(args.fileName, args.source)
		response := &ExtractResponse{
			FileName:     args.fileName,
			Marked:       marked,
			Declarations: []DeclarationJSON{},
		}
		for _, decl := range result.Declarations {
			response.Declarations = append(response.Declarations, DeclarationJSON{
				Name:   decl.Name,
				Fields: decl.FieldNames(),
			})
		}

		jsonData, err := json.Marshal(response)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}

		// Return as text result (mcp-go convention)
		return mcp.NewToolResultText(string(jsonData)), nil
	}
}

func createRenderHandler(cfg ToolConfig) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, msg := parseArgs(request)
		if msg != "" {
			return mcp.NewToolResultError(msg), nil
		}

		result, marked := cfg.Extractor.Extract(args.fileName, args.source)
		if !marked {
			return mcp.NewToolResultError("source does not contain the marker; nothing to generate"), nil
		}

		content, ok := render.File(result, render.OutputName(args.fileName, cfg.Extension, cfg.Suffix))
		if !ok {
			return mcp.NewToolResultError("no annotated declaration has top-level fields; no file would be generated"), nil
		}

		return mcp.NewToolResultText(content), nil
	}
}
