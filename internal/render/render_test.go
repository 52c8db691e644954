package render

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mvp-joe/interface-enum/internal/extract"
)

// Test Plan for render:
// - OutputName strips the extension and appends the suffix
// - OutputPath keeps the source directory
// - Enum renders members with no trailing comma on the last one
// - File joins blocks with a blank line in declaration order
// - File reports ok=false when nothing has fields

func decl(name string, fields ...string) extract.DeclarationRecord {
	m := orderedmap.New[string, string]()
	for _, f := range fields {
		m.Set(f, f)
	}
	return extract.DeclarationRecord{Name: name, Fields: m}
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user.interfaceEnums.ts", OutputName("/src/models/user.ts", ".ts", ".interfaceEnums.ts"))
	assert.Equal(t, "odd.js.interfaceEnums.ts", OutputName("odd.js", ".ts", ".interfaceEnums.ts"))
	assert.Equal(t,
		filepath.Join("src", "models", "user.interfaceEnums.ts"),
		OutputPath(filepath.Join("src", "models", "user.ts"), ".ts", ".interfaceEnums.ts"))
}

func TestEnum(t *testing.T) {
	t.Parallel()

	want := "// this enum was auto generated\n" +
		"export enum UserEnum {\n" +
		"\tid = 'id' as any,\n" +
		"\tname = 'name' as any\n" +
		"}"

	if diff := cmp.Diff(want, Enum(decl("User", "id", "name"))); diff != "" {
		t.Errorf("Enum() mismatch (-want +got):\n%s", diff)
	}
}

func TestFile(t *testing.T) {
	t.Parallel()

	result := extract.FileResult{
		Path: "models.ts",
		Declarations: []extract.DeclarationRecord{
			decl("User", "id"),
			{Name: "Nothing"},
			decl("Group", "members", "owner"),
		},
	}

	got, ok := File(result, "models.interfaceEnums.ts")
	require.True(t, ok)

	want := `// This file was generated by TsInterfaceEnum
// models.interfaceEnums.ts

// this enum was auto generated
export enum UserEnum {
	id = 'id' as any
}

// this enum was auto generated
export enum GroupEnum {
	members = 'members' as any,
	owner = 'owner' as any
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("File() mismatch (-want +got):\n%s", diff)
	}
}

func TestFile_NothingToRender(t *testing.T) {
	t.Parallel()

	_, ok := File(extract.FileResult{Path: "a.ts"}, "a.interfaceEnums.ts")
	assert.False(t, ok)

	_, ok = File(extract.FileResult{Declarations: []extract.DeclarationRecord{decl("E")}}, "a.interfaceEnums.ts")
	assert.False(t, ok)
}
