package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// lazyWrappers are call names whose sole argument is a loader closure
// around a dynamic import.
var lazyWrappers = map[string]bool{
	"lazy":                 true,
	"defineAsyncComponent": true,
}

// resolveComponent resolves a route's component value to an identifier
// or import-path reference. Unsupported shapes produce a warning and an
// empty reference, never a failure.
func (c *walkCtx) resolveComponent(node *sitter.Node) string {
	if node == nil {
		return ""
	}

	switch node.Kind() {
	case "identifier":
		return c.resolveIdentifier(nodeText(node, c.source))

	case "call_expression":
		fn := node.ChildByFieldName("function")
		if fn != nil && lazyWrappers[nodeText(fn, c.source)] {
			if ref, ok := c.resolveLoader(firstArgument(node)); ok {
				return ref
			}
			c.warnf(node, "Unsupported lazy component argument; expected a literal dynamic import")
			return ""
		}
		c.warnf(node, "Unsupported component call %q", nodeText(fn, c.source))
		return ""

	case "arrow_function":
		// Vue-style lazy component: () => import("./x")
		if ref, ok := c.resolveLoader(node); ok {
			return ref
		}
		c.warnf(node, "Unsupported component loader; expected a literal dynamic import")
		return ""

	case "jsx_element", "jsx_self_closing_element":
		return c.resolveJSXComponent(node)

	case "parenthesized_expression":
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			if child != nil && child.IsNamed() {
				return c.resolveComponent(child)
			}
		}
		return ""

	case "member_expression":
		c.warnf(node, "Member-expression components are unsupported: %q", nodeText(node, c.source))
		return ""
	}

	c.warnf(node, "Unsupported component shape %q", node.Kind())
	return ""
}

// resolveLoader handles `() => import("./x")`, optionally chained
// through `.then(m => m.X)` to pick a named export. Block-bodied
// callbacks and non-literal import arguments are unsupported.
func (c *walkCtx) resolveLoader(arrow *sitter.Node) (string, bool) {
	if arrow == nil || arrow.Kind() != "arrow_function" {
		return "", false
	}
	body := arrow.ChildByFieldName("body")
	if body == nil {
		return "", false
	}
	if body.Kind() == "statement_block" {
		c.warnf(arrow, "Block-bodied component loaders are unsupported")
		return "", false
	}
	return c.resolveImportExpression(body)
}

func (c *walkCtx) resolveImportExpression(node *sitter.Node) (string, bool) {
	if node == nil {
		return "", false
	}

	if node.Kind() == "call_expression" {
		fn := node.ChildByFieldName("function")
		if fn == nil {
			return "", false
		}

		// import("./x")
		if fn.Kind() == "import" {
			arg := firstArgument(node)
			path, ok := stringLiteral(arg, c.source)
			if !ok {
				c.warnf(node, "Dynamic import argument is not a literal")
				return "", false
			}
			return path, true
		}

		// import("./x").then(m => m.X)
		if fn.Kind() == "member_expression" {
			object := fn.ChildByFieldName("object")
			property := fn.ChildByFieldName("property")
			if nodeText(property, c.source) != "then" {
				return "", false
			}
			base, ok := c.resolveImportExpression(object)
			if !ok {
				return "", false
			}
			export := c.thenExportName(firstArgument(node))
			if export == "" {
				return base, true
			}
			return base + "#" + export, true
		}
	}

	return "", false
}

// thenExportName extracts X from a `.then(m => m.X)`-shaped accessor.
func (c *walkCtx) thenExportName(arrow *sitter.Node) string {
	if arrow == nil || arrow.Kind() != "arrow_function" {
		return ""
	}
	body := arrow.ChildByFieldName("body")
	if body == nil || body.Kind() != "member_expression" {
		return ""
	}
	return nodeText(body.ChildByFieldName("property"), c.source)
}

// resolveJSXComponent accepts inline elements naming a single top-level
// identifier, e.g. element: <Dashboard />. Nested children, fragments,
// and member/namespaced names are unsupported.
func (c *walkCtx) resolveJSXComponent(node *sitter.Node) string {
	opening := node
	if node.Kind() == "jsx_element" {
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			if child != nil && child.Kind() == "jsx_opening_element" {
				opening = child
				break
			}
		}
		if opening == node {
			c.warnf(node, "JSX fragments are unsupported as components")
			return ""
		}
	}

	name := opening.ChildByFieldName("name")
	if name == nil {
		c.warnf(node, "JSX fragments are unsupported as components")
		return ""
	}
	text := nodeText(name, c.source)
	if name.Kind() != "identifier" || strings.ContainsAny(text, ".:") {
		c.warnf(node, "Member or namespaced JSX component names are unsupported: %q", text)
		return ""
	}
	return c.resolveIdentifier(text)
}

// firstArgument returns the first named node of a call's argument list.
func firstArgument(call *sitter.Node) *sitter.Node {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	for i := uint(0); i < args.ChildCount(); i++ {
		child := args.Child(i)
		if child != nil && child.IsNamed() {
			return child
		}
	}
	return nil
}
