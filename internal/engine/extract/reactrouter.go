package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

var reactRegistrationCalls = map[string]bool{
	"createBrowserRouter": true,
	"createHashRouter":    true,
	"createMemoryRouter":  true,
	"useRoutes":           true,
}

// extractReact recognizes the React Router table shapes: a router
// registration call (createBrowserRouter and friends, useRoutes), a
// named or default export of a RouteObject array, and satisfies-style
// type-asserted arrays. The first registration call wins; otherwise
// every declared array that looks like a route table contributes.
func extractReact(root *sitter.Node, c *walkCtx) []ParsedRoute {
	ordered, byName := collectDeclarators(root, c.source)

	if call := findCall(root, c.source, reactRegistrationCalls); call != nil {
		if array := resolveArrayValue(firstArgument(call), byName, c.source); array != nil {
			return c.parseRouteArray(array, reactShape)
		}
		c.warnf(call, "Router registration argument is not a statically resolvable array")
		return nil
	}

	return extractDeclaredTables(root, ordered, c, reactShape)
}

// extractDeclaredTables parses every top-level array declaration (and
// the default export) that carries route-object keys. Shared by the
// React and Vue extractors, which differ only in shape.
func extractDeclaredTables(root *sitter.Node, ordered []namedDecl, c *walkCtx, shape routeShape) []ParsedRoute {
	routes := make([]ParsedRoute, 0)
	seen := make(map[*sitter.Node]bool)

	for _, decl := range ordered {
		value := decl.value
		if value.Kind() == "array" && looksLikeRouteTable(value, c.source) && !seen[value] {
			seen[value] = true
			routes = append(routes, c.parseRouteArray(value, shape)...)
		}
	}

	if def := exportDefaultValue(root, c.source); def != nil && def.Kind() == "array" && !seen[def] {
		if looksLikeRouteTable(def, c.source) {
			routes = append(routes, c.parseRouteArray(def, shape)...)
		}
	}
	return routes
}
