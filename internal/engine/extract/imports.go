package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// buildImportMap does a single forward pass over the file's import
// declarations and returns local name -> resolved import reference.
// A named import resolves to "<module>#<exported name>" so downstream
// tooling can distinguish default and named exports.
func buildImportMap(root *sitter.Node, source []byte) map[string]string {
	imports := make(map[string]string)

	for i := uint(0); i < root.ChildCount(); i++ {
		stmt := root.Child(i)
		if stmt == nil || stmt.Kind() != "import_statement" {
			continue
		}

		module := ""
		if src := stmt.ChildByFieldName("source"); src != nil {
			module = trimQuoted(nodeText(src, source))
		}
		if module == "" {
			continue
		}

		for j := uint(0); j < stmt.ChildCount(); j++ {
			clause := stmt.Child(j)
			if clause == nil || clause.Kind() != "import_clause" {
				continue
			}
			collectImportClause(clause, source, module, imports)
		}
	}

	return imports
}

func collectImportClause(clause *sitter.Node, source []byte, module string, imports map[string]string) {
	for i := uint(0); i < clause.ChildCount(); i++ {
		child := clause.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "identifier":
			// Default import: import Foo from "./foo"
			imports[nodeText(child, source)] = module

		case "namespace_import":
			// import * as pages from "./pages"
			for j := uint(0); j < child.ChildCount(); j++ {
				if n := child.Child(j); n != nil && n.Kind() == "identifier" {
					imports[nodeText(n, source)] = module
				}
			}

		case "named_imports":
			for j := uint(0); j < child.ChildCount(); j++ {
				spec := child.Child(j)
				if spec == nil || spec.Kind() != "import_specifier" {
					continue
				}
				name := nodeText(spec.ChildByFieldName("name"), source)
				local := name
				if alias := spec.ChildByFieldName("alias"); alias != nil {
					local = nodeText(alias, source)
				}
				if local == "" {
					continue
				}
				imports[local] = module + "#" + name
			}
		}
	}
}

// resolveIdentifier maps a local identifier to its import reference.
// Identifiers declared in the file itself resolve to their own name.
func (c *walkCtx) resolveIdentifier(name string) string {
	if resolved, ok := c.imports[name]; ok {
		return resolved
	}
	return name
}
