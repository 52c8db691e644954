package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/interface-enum/internal/config"
)

// Test Plan for CLI commands:
// - generate writes the enum file for a marked source under the project root
// - generate --path restricts scanning to the given directory
// - generate --dry-run prints the file and writes nothing
// - generate skips node_modules nested inside a workspace package
// - check passes when the brace scan agrees with the parser
// - check reports a field the brace scan missed and returns ErrDiscrepancies
// - version prints the program name

const markedSource = `// generateInterfaceToEnum
export interface User {
  id: string;
  profile: { bio: string };
  email: string;
}
`

func writeSource(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestExecuteGenerate_WritesOutput(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, filepath.Join(root, "src", "user.ts"), markedSource)

	stats, err := executeGenerate(context.Background(), root, config.Default(), generateOptions{quiet: true}, &bytes.Buffer{})
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.FilesWritten)

	content, err := os.ReadFile(filepath.Join(root, "src", "user.interfaceEnums.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "export enum UserEnum {")
	assert.Contains(t, string(content), "\temail = 'email' as any\n")
	assert.NotContains(t, string(content), "bio")
}

func TestExecuteGenerate_PathOverride(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, filepath.Join(root, "a", "user.ts"), markedSource)
	writeSource(t, filepath.Join(root, "b", "user.ts"), markedSource)

	opts := generateOptions{quiet: true, paths: []string{"a"}}
	stats, err := executeGenerate(context.Background(), root, config.Default(), opts, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesWritten)

	assert.FileExists(t, filepath.Join(root, "a", "user.interfaceEnums.ts"))
	assert.NoFileExists(t, filepath.Join(root, "b", "user.interfaceEnums.ts"))
}

func TestExecuteGenerate_DryRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, filepath.Join(root, "user.ts"), markedSource)

	var out bytes.Buffer
	_, err := executeGenerate(context.Background(), root, config.Default(), generateOptions{dryRun: true}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "==> "+filepath.Join(root, "user.interfaceEnums.ts"))
	assert.Contains(t, out.String(), "// This file was generated by TsInterfaceEnum")
	assert.NoFileExists(t, filepath.Join(root, "user.interfaceEnums.ts"))
}

func TestExecuteGenerate_SkipsNestedNodeModules(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, filepath.Join(root, "packages", "app", "src", "user.ts"), markedSource)
	writeSource(t, filepath.Join(root, "packages", "app", "node_modules", "dep", "user.ts"), markedSource)

	stats, err := executeGenerate(context.Background(), root, config.Default(), generateOptions{quiet: true}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesWritten)

	assert.FileExists(t, filepath.Join(root, "packages", "app", "src", "user.interfaceEnums.ts"))
	assert.NoFileExists(t, filepath.Join(root, "packages", "app", "node_modules", "dep", "user.interfaceEnums.ts"))
}

func TestExecuteCheck_NoDiscrepancies(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, filepath.Join(root, "user.ts"), markedSource)

	var out bytes.Buffer
	err := executeCheck(context.Background(), root, config.Default(), nil, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "no discrepancies")
}

func TestExecuteCheck_ReportsMissingField(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, filepath.Join(root, "point.ts"), `// generateInterfaceToEnum
export interface Point {
  x: number; y: number;
}
`)

	var out bytes.Buffer
	err := executeCheck(context.Background(), root, config.Default(), nil, &out)
	require.ErrorIs(t, err, ErrDiscrepancies)
	assert.Contains(t, out.String(), "point.ts: Point: missing y")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, out.String(), "interface-enum "+Version)
}
