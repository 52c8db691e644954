// Package verify cross-checks brace-scanned declaration fields against a real
// TypeScript parse.
package verify

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/mvp-joe/interface-enum/internal/extract"
)

// Discrepancy describes a declaration whose extracted fields differ from the
// members the TypeScript parser sees.
type Discrepancy struct {
	Path string `json:"path"`
	Name string `json:"name"`
	// NotParsed is set when the parser found no declaration with this name.
	NotParsed bool `json:"not_parsed,omitempty"`
	// Missing members were parsed but not extracted.
	Missing []string `json:"missing,omitempty"`
	// Extra fields were extracted but are not members.
	Extra []string `json:"extra,omitempty"`
}

// Verifier compares extractor output with tree-sitter's view of the file.
type Verifier struct {
	extractor *extract.Extractor
	language  *sitter.Language
}

// NewVerifier creates a verifier for files handled by extractor.
func NewVerifier(extractor *extract.Extractor) *Verifier {
	return &Verifier{
		extractor: extractor,
		language:  sitter.NewLanguage(typescript.LanguageTypescript()),
	}
}

// VerifyFile reads and verifies one file.
func (v *Verifier) VerifyFile(ctx context.Context, path string) ([]Discrepancy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return v.VerifySource(path, source)
}

// VerifySource verifies every declaration the extractor emits for source.
// Unmarked sources have nothing to verify.
func (v *Verifier) VerifySource(path string, source []byte) ([]Discrepancy, error) {
	result, marked := v.extractor.Extract(path, string(source))
	if !marked || len(result.Declarations) == 0 {
		return nil, nil
	}

	members, err := v.parseMembers(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var out []Discrepancy
	for _, decl := range result.Declarations {
		parsed, ok := members[decl.Name]
		if !ok {
			out = append(out, Discrepancy{Path: path, Name: decl.Name, NotParsed: true})
			continue
		}

		missing, extra := diff(parsed, decl.FieldNames())
		if len(missing) > 0 || len(extra) > 0 {
			out = append(out, Discrepancy{Path: path, Name: decl.Name, Missing: missing, Extra: extra})
		}
	}
	return out, nil
}

// parseMembers maps each declared interface or object type alias name to its
// member names. Only the first declaration of a name is kept.
func (v *Verifier) parseMembers(source []byte) (map[string][]string, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(v.language); err != nil {
		return nil, err
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parser returned no tree")
	}
	defer tree.Close()

	members := make(map[string][]string)
	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		var body *sitter.Node
		switch n.Kind() {
		case "interface_declaration":
			body = n.ChildByFieldName("body")
		case "type_alias_declaration":
			if value := n.ChildByFieldName("value"); value != nil && value.Kind() == "object_type" {
				body = value
			}
		default:
			return true
		}

		nameNode := n.ChildByFieldName("name")
		if nameNode == nil || body == nil {
			return true
		}
		name := nodeText(nameNode, source)
		if _, seen := members[name]; !seen {
			members[name] = bodyMembers(body, source)
		}
		// Nested declarations cannot appear inside a type body
		return false
	})

	return members, nil
}

// bodyMembers lists the named members directly inside an interface body or
// object type, in source order.
func bodyMembers(body *sitter.Node, source []byte) []string {
	names := []string{}
	for i := uint(0); i < body.NamedChildCount(); i++ {
		child := body.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "property_signature", "method_signature":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				names = append(names, nodeText(nameNode, source))
			}
		}
	}
	return names
}

// diff returns the members not in fields and the fields not in members.
func diff(members, fields []string) (missing, extra []string) {
	inFields := make(map[string]bool, len(fields))
	for _, f := range fields {
		inFields[f] = true
	}
	inMembers := make(map[string]bool, len(members))
	for _, m := range members {
		inMembers[m] = true
		if !inFields[m] {
			missing = append(missing, m)
		}
	}
	for _, f := range fields {
		if !inMembers[f] {
			extra = append(extra, f)
		}
	}
	return missing, extra
}

// walkTree visits node and its descendants depth-first. Returning false from
// visitor skips the node's children.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), visitor)
	}
}

func nodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}
