package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/interface-enum/internal/extract"
)

// Test Plan for MCP tools:
// - Tools register without panicking
// - Extract returns declarations and field order as JSON
// - Extract reports unmarked sources as marked=false
// - Render returns the generated file text with the derived output name
// - Render returns a tool error for unmarked or field-less sources
// - Missing or malformed arguments return tool errors, not system errors
// - NewMCPServer requires an extractor

const toolSource = `// generateInterfaceToEnum
export interface Account {
  id: string;
  owner: { name: string };
}
`

func testToolConfig(t *testing.T) ToolConfig {
	t.Helper()
	e, err := extract.NewExtractor(extract.DefaultOptions())
	require.NoError(t, err)
	return ToolConfig{Extractor: e, Extension: ".ts", Suffix: ".interfaceEnums.ts"}
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestAddTools_Registration(t *testing.T) {
	t.Parallel()

	mcpServer := server.NewMCPServer("test-server", "1.0.0", server.WithToolCapabilities(true))
	cfg := testToolConfig(t)

	require.NotPanics(t, func() {
		AddExtractTool(mcpServer, cfg)
		AddRenderTool(mcpServer, cfg)
	})
}

func TestExtractHandler(t *testing.T) {
	t.Parallel()

	handler := createExtractHandler(testToolConfig(t))
	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"source":    toolSource,
		"file_name": "account.ts",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var response ExtractResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))
	assert.Equal(t, "account.ts", response.FileName)
	assert.True(t, response.Marked)
	require.Len(t, response.Declarations, 1)
	assert.Equal(t, DeclarationJSON{Name: "Account", Fields: []string{"id", "owner"}}, response.Declarations[0])
}

func TestExtractHandler_Unmarked(t *testing.T) {
	t.Parallel()

	handler := createExtractHandler(testToolConfig(t))
	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"source": "export interface A {\n  a: string;\n}\n",
	}))
	require.NoError(t, err)

	var response ExtractResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))
	assert.Equal(t, "source.ts", response.FileName)
	assert.False(t, response.Marked)
	assert.Empty(t, response.Declarations)
}

func TestRenderHandler(t *testing.T) {
	t.Parallel()

	handler := createRenderHandler(testToolConfig(t))
	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"source":    toolSource,
		"file_name": "account.ts",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "// account.interfaceEnums.ts\n")
	assert.Contains(t, text, "export enum AccountEnum {\n\tid = 'id' as any,\n\towner = 'owner' as any\n}")
}

func TestRenderHandler_NothingToGenerate(t *testing.T) {
	t.Parallel()

	handler := createRenderHandler(testToolConfig(t))

	for _, src := range []string{
		"export interface A {\n  a: string;\n}\n",
		"// generateInterfaceToEnum\nexport interface A {\n}\n",
	} {
		result, err := handler(context.Background(), callRequest(map[string]interface{}{"source": src}))
		require.NoError(t, err, "should not return system error")
		assert.True(t, result.IsError)
	}
}

func TestHandlers_InvalidArguments(t *testing.T) {
	t.Parallel()

	cfg := testToolConfig(t)
	handlers := map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"extract": createExtractHandler(cfg),
		"render":  createRenderHandler(cfg),
	}

	for name, handler := range handlers {
		result, err := handler(context.Background(), callRequest(map[string]interface{}{}))
		require.NoError(t, err, name)
		assert.True(t, result.IsError, name)

		result, err = handler(context.Background(), mcp.CallToolRequest{})
		require.NoError(t, err, name)
		assert.True(t, result.IsError, name)
	}
}

func TestNewMCPServer_RequiresExtractor(t *testing.T) {
	t.Parallel()

	_, err := NewMCPServer(ToolConfig{}, "dev")
	assert.Error(t, err)

	s, err := NewMCPServer(testToolConfig(t), "dev")
	require.NoError(t, err)
	assert.NotNil(t, s)
}
