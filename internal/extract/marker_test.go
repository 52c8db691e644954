package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Marker Detector and Declaration Locator:
// - FileParticipates finds the marker anywhere
// - Declarations above the first marker are not listed
// - Scope all captures every declaration after the marker
// - Scope next captures one declaration per marker
// - Consecutive markers before one declaration collapse in scope next
// - Duplicate names are preserved
// - Introducer must start the line
// - Multiple introducers are supported
// - Unknown scopes are rejected, empty scope means all
// - FindStartLine matches whole identifiers only
// - FindStartLine returns the first occurrence

const markedSource = `export interface Before {
  x: string;
}

// generateInterfaceToEnum
export interface First {
  a: string;
}

export interface Second {
  b: string;
}
`

func TestFileParticipates(t *testing.T) {
	t.Parallel()

	d, err := NewMarkerDetector("generateInterfaceToEnum", []string{"export interface"}, ScopeAll)
	require.NoError(t, err)

	assert.True(t, d.FileParticipates(markedSource))
	assert.True(t, d.FileParticipates("const s = 'generateInterfaceToEnum';"))
	assert.False(t, d.FileParticipates("export interface A {}"))
}

func TestListDeclarationNames_ScopeAll(t *testing.T) {
	t.Parallel()

	d, err := NewMarkerDetector("generateInterfaceToEnum", []string{"export interface"}, ScopeAll)
	require.NoError(t, err)

	assert.Equal(t, []string{"First", "Second"}, d.ListDeclarationNames(markedSource))
}

func TestListDeclarationNames_ScopeNext(t *testing.T) {
	t.Parallel()

	d, err := NewMarkerDetector("generateInterfaceToEnum", []string{"export interface"}, ScopeNext)
	require.NoError(t, err)

	assert.Equal(t, []string{"First"}, d.ListDeclarationNames(markedSource))

	src := "// generateInterfaceToEnum\n// generateInterfaceToEnum\nexport interface A {\n}\n" +
		"export interface B {\n}\n// generateInterfaceToEnum\nexport interface C {\n}\n"
	assert.Equal(t, []string{"A", "C"}, d.ListDeclarationNames(src))
}

func TestListDeclarationNames_PreservesDuplicates(t *testing.T) {
	t.Parallel()

	d, err := NewMarkerDetector("generateInterfaceToEnum", []string{"export interface"}, ScopeAll)
	require.NoError(t, err)

	src := "// generateInterfaceToEnum\nexport interface A {\n}\nexport interface A {\n}\n"
	assert.Equal(t, []string{"A", "A"}, d.ListDeclarationNames(src))
}

func TestListDeclarationNames_AnchoredAtLineStart(t *testing.T) {
	t.Parallel()

	d, err := NewMarkerDetector("generateInterfaceToEnum", []string{"export interface"}, ScopeAll)
	require.NoError(t, err)

	src := "// generateInterfaceToEnum\n  export interface Indented {\n}\n/* export interface Comment */\n"
	assert.Empty(t, d.ListDeclarationNames(src))
	assert.Empty(t, d.ListDeclarationNames("export interface NoMarker {\n}\n"))
}

func TestListDeclarationNames_MultipleIntroducers(t *testing.T) {
	t.Parallel()

	d, err := NewMarkerDetector("generateInterfaceToEnum", []string{"export interface", "export type"}, ScopeAll)
	require.NoError(t, err)

	src := "// generateInterfaceToEnum\nexport type T = {\n}\nexport  interface I {\n}\n"
	assert.Equal(t, []string{"T", "I"}, d.ListDeclarationNames(src))
}

func TestNewMarkerDetector_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := NewMarkerDetector("", []string{"export interface"}, ScopeAll)
	assert.Error(t, err)

	_, err = NewMarkerDetector("m", nil, ScopeAll)
	assert.Error(t, err)
}

func TestNewMarkerDetector_Scope(t *testing.T) {
	t.Parallel()

	for _, scope := range []Scope{"Next", "ALL", "first"} {
		_, err := NewMarkerDetector("generateInterfaceToEnum", []string{"export interface"}, scope)
		assert.Error(t, err, "scope %q", scope)
	}

	d, err := NewMarkerDetector("generateInterfaceToEnum", []string{"export interface"}, "")
	require.NoError(t, err)
	src := "// generateInterfaceToEnum\nexport interface A {\n  a: string;\n}\nexport interface B {\n  b: string;\n}\n"
	assert.Equal(t, []string{"A", "B"}, d.ListDeclarationNames(src))
}

func TestFindStartLine(t *testing.T) {
	t.Parallel()

	lines := SplitLines(`export interface FooBar {
}
export interface Foo<T> {
}
export interface Foo {
}`)

	line, ok := FindStartLine(lines, "export interface", "Foo")
	require.True(t, ok)
	assert.Equal(t, 2, line)

	line, ok = FindStartLine(lines, "export interface", "FooBar")
	require.True(t, ok)
	assert.Equal(t, 0, line)

	_, ok = FindStartLine(lines, "export interface", "Missing")
	assert.False(t, ok)

	_, ok = FindStartLine(lines, "export interface", "Fo")
	assert.False(t, ok)
}
