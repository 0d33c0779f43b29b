package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// unwrapExpression strips the wrappers that leave a route table's value
// unchanged: satisfies/as assertions, parentheses, and non-null
// assertions.
func unwrapExpression(node *sitter.Node) *sitter.Node {
	for node != nil {
		switch node.Kind() {
		case "satisfies_expression", "as_expression", "non_null_expression", "parenthesized_expression":
			var inner *sitter.Node
			for i := uint(0); i < node.ChildCount(); i++ {
				child := node.Child(i)
				if child != nil && child.IsNamed() {
					inner = child
					break
				}
			}
			if inner == nil {
				return node
			}
			node = inner
		default:
			return node
		}
	}
	return nil
}

// namedDecl is a top-level variable declaration in source order.
type namedDecl struct {
	name  string
	value *sitter.Node
}

// collectDeclarators gathers top-level `const x = <value>` declarations,
// including ones nested in export statements, in source order plus a
// by-name index.
func collectDeclarators(root *sitter.Node, source []byte) ([]namedDecl, map[string]*sitter.Node) {
	ordered := make([]namedDecl, 0)
	byName := make(map[string]*sitter.Node)

	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		switch n.Kind() {
		case "lexical_declaration", "variable_declaration":
			for i := uint(0); i < n.ChildCount(); i++ {
				d := n.Child(i)
				if d == nil || d.Kind() != "variable_declarator" {
					continue
				}
				name := nodeText(d.ChildByFieldName("name"), source)
				value := unwrapExpression(d.ChildByFieldName("value"))
				if name != "" && value != nil {
					ordered = append(ordered, namedDecl{name: name, value: value})
					byName[name] = value
				}
			}
		case "export_statement":
			for i := uint(0); i < n.ChildCount(); i++ {
				if child := n.Child(i); child != nil && child.IsNamed() {
					visit(child)
				}
			}
		}
	}

	for i := uint(0); i < root.ChildCount(); i++ {
		if child := root.Child(i); child != nil {
			visit(child)
		}
	}
	return ordered, byName
}

// exportDefaultValue returns the unwrapped default-export value, if any.
func exportDefaultValue(root *sitter.Node, source []byte) *sitter.Node {
	for i := uint(0); i < root.ChildCount(); i++ {
		stmt := root.Child(i)
		if stmt == nil || stmt.Kind() != "export_statement" {
			continue
		}
		if nodeText(stmt.Child(1), source) != "default" {
			continue
		}
		if value := stmt.ChildByFieldName("value"); value != nil {
			return unwrapExpression(value)
		}
		for j := uint(0); j < stmt.ChildCount(); j++ {
			child := stmt.Child(j)
			if child != nil && child.IsNamed() && child.Kind() != "comment" {
				return unwrapExpression(child)
			}
		}
	}
	return nil
}

// findCall does a depth-first search for the first call expression whose
// callee text is in names.
func findCall(root *sitter.Node, source []byte, names map[string]bool) *sitter.Node {
	if root == nil {
		return nil
	}
	if root.Kind() == "call_expression" {
		if names[nodeText(root.ChildByFieldName("function"), source)] {
			return root
		}
	}
	for i := uint(0); i < root.ChildCount(); i++ {
		if found := findCall(root.Child(i), source, names); found != nil {
			return found
		}
	}
	return nil
}

// looksLikeRouteTable reports whether an array literal's first object
// element carries a canonical route key. Used only when no explicit
// registration call names the table.
func looksLikeRouteTable(array *sitter.Node, source []byte) bool {
	if array == nil || array.Kind() != "array" {
		return false
	}
	for i := uint(0); i < array.ChildCount(); i++ {
		element := array.Child(i)
		if element == nil || element.Kind() != "object" {
			continue
		}
		for j := uint(0); j < element.ChildCount(); j++ {
			member := element.Child(j)
			if member == nil || member.Kind() != "pair" {
				continue
			}
			switch propertyKey(member.ChildByFieldName("key"), source) {
			case "path", "index", "component", "element", "redirect", "redirectTo":
				return true
			}
		}
		return false
	}
	return false
}

// resolveArrayValue follows one level of identifier indirection:
// registration calls usually reference the table variable by name.
func resolveArrayValue(value *sitter.Node, decls map[string]*sitter.Node, source []byte) *sitter.Node {
	value = unwrapExpression(value)
	if value == nil {
		return nil
	}
	if value.Kind() == "identifier" {
		if resolved, ok := decls[nodeText(value, source)]; ok {
			value = unwrapExpression(resolved)
		}
	}
	if value != nil && value.Kind() == "array" {
		return value
	}
	return nil
}

// objectValueByKey returns the value of a key in an object literal.
func objectValueByKey(object *sitter.Node, source []byte, key string) *sitter.Node {
	if object == nil || object.Kind() != "object" {
		return nil
	}
	for i := uint(0); i < object.ChildCount(); i++ {
		member := object.Child(i)
		if member == nil || member.Kind() != "pair" {
			continue
		}
		if propertyKey(member.ChildByFieldName("key"), source) == key {
			return member.ChildByFieldName("value")
		}
	}
	return nil
}
