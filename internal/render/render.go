// Package render turns extracted declarations into TypeScript enum files.
package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mvp-joe/interface-enum/internal/extract"
)

// GeneratorName is written into the header of every generated file.
const GeneratorName = "TsInterfaceEnum"

// OutputName returns the generated file name for a source path: its base name
// without ext, followed by suffix.
func OutputName(sourcePath, ext, suffix string) string {
	return strings.TrimSuffix(filepath.Base(sourcePath), ext) + suffix
}

// OutputPath returns the generated file path, next to the source file.
func OutputPath(sourcePath, ext, suffix string) string {
	return filepath.Join(filepath.Dir(sourcePath), OutputName(sourcePath, ext, suffix))
}

// Enum renders one declaration as an enum block. Members are indented with a
// tab and the last member has no trailing comma.
func Enum(decl extract.DeclarationRecord) string {
	var b strings.Builder
	b.WriteString("// this enum was auto generated\n")
	fmt.Fprintf(&b, "export enum %sEnum {\n", decl.Name)

	if decl.Fields != nil {
		for pair := decl.Fields.Oldest(); pair != nil; pair = pair.Next() {
			fmt.Fprintf(&b, "\t%s = '%s' as any", pair.Key, pair.Value)
			if pair.Next() != nil {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
	}

	b.WriteString("}")
	return b.String()
}

// File renders the complete generated file for result. ok is false when the
// result has no declarations with fields, in which case no file should exist.
func File(result extract.FileResult, outputName string) (content string, ok bool) {
	blocks := make([]string, 0, len(result.Declarations))
	for _, decl := range result.Declarations {
		if decl.Fields == nil || decl.Fields.Len() == 0 {
			continue
		}
		blocks = append(blocks, Enum(decl))
	}
	if len(blocks) == 0 {
		return "", false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// This file was generated by %s\n", GeneratorName)
	fmt.Fprintf(&b, "// %s\n\n", outputName)
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteString("\n")
	return b.String(), true
}
