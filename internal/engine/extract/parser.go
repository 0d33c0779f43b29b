package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"screenmap/internal/core/errors"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// grammarFor returns the tree-sitter grammar for a route source file.
// Plain .ts must use the TypeScript grammar (TSX changes how type
// assertions parse); everything else goes through TSX/JavaScript which
// both accept JSX and decorators.
func grammarFor(filePath string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".ts":
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	case ".tsx":
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
	default:
		return sitter.NewLanguage(tree_sitter_javascript.Language())
	}
}

func htmlGrammar() *sitter.Language {
	return sitter.NewLanguage(tree_sitter_html.Language())
}

// walkCtx carries the parsed tree plus the file-level state every
// extractor needs: source bytes, the import-alias map, and the warning
// accumulator.
type walkCtx struct {
	source   []byte
	path     string
	imports  map[string]string // local name -> resolved import reference
	warnings []ParseWarning
}

func (c *walkCtx) warnf(node *sitter.Node, format string, args ...interface{}) {
	c.warnings = append(c.warnings, ParseWarning{
		Kind:    WarnGeneral,
		Message: fmt.Sprintf(format, args...),
		Line:    nodeLine(node),
	})
}

func (c *walkCtx) warnSpread(node *sitter.Node, variableName string) {
	msg := "Spread element in route array; routes may be hidden behind it"
	if variableName != "" {
		msg = fmt.Sprintf("Spread element %q in route array; routes may be hidden behind it", variableName)
	}
	c.warnings = append(c.warnings, ParseWarning{
		Kind:         WarnSpread,
		Message:      msg,
		Line:         nodeLine(node),
		VariableName: variableName,
	})
}

// parseTree parses source with the given grammar. A tree whose root
// contains ERROR nodes violates the base grammar and is fatal; the
// caller decides whether to abort or skip the file.
func parseTree(grammar *sitter.Language, source []byte, filePath string) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(grammar); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "set grammar")
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, errors.AddContext(
			errors.New(errors.CodeParseError, "parser returned no tree"),
			errors.CtxPath, filePath)
	}

	root := tree.RootNode()
	if root.HasError() {
		line := firstErrorLine(root)
		tree.Close()
		return nil, errors.AddContext(
			errors.New(errors.CodeParseError, fmt.Sprintf("source violates the base grammar near line %d", line)),
			errors.CtxPath, filePath)
	}
	return tree, nil
}

func firstErrorLine(root *sitter.Node) int {
	var find func(n *sitter.Node) int
	find = func(n *sitter.Node) int {
		if n.IsError() {
			return nodeLine(n)
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			child := n.Child(i)
			if child == nil || !child.HasError() {
				continue
			}
			if line := find(child); line > 0 {
				return line
			}
		}
		return 0
	}
	if line := find(root); line > 0 {
		return line
	}
	return 1
}

func nodeLine(node *sitter.Node) int {
	if node == nil {
		return 0
	}
	return int(node.StartPosition().Row) + 1
}

// nodeText returns the source bytes spanned by a node as a trimmed string.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start := node.StartByte()
	end := node.EndByte()
	if start >= end || end > uint(len(source)) {
		return ""
	}
	return strings.TrimSpace(string(source[start:end]))
}

func trimQuoted(value string) string {
	value = strings.TrimSpace(value)
	return strings.Trim(value, "\"'`")
}

// stringLiteral returns the literal value of a string node, or false
// when the node is not a plain string (identifiers, template strings
// with substitutions, computed expressions).
func stringLiteral(node *sitter.Node, source []byte) (string, bool) {
	if node == nil {
		return "", false
	}
	switch node.Kind() {
	case "string":
		return trimQuoted(nodeText(node, source)), true
	case "template_string":
		text := nodeText(node, source)
		if strings.Contains(text, "${") {
			return "", false
		}
		return trimQuoted(text), true
	}
	return "", false
}
