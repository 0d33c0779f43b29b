package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

var vueRegistrationCalls = map[string]bool{
	"createRouter": true,
}

// extractVue recognizes the Vue Router table shapes: a createRouter
// options object with a routes array, a named or default export of a
// RouteRecordRaw array, and plain declared route tables.
func extractVue(root *sitter.Node, c *walkCtx) []ParsedRoute {
	ordered, byName := collectDeclarators(root, c.source)

	if call := findCall(root, c.source, vueRegistrationCalls); call != nil {
		options := unwrapExpression(firstArgument(call))
		if options != nil && options.Kind() == "identifier" {
			if resolved, ok := byName[nodeText(options, c.source)]; ok {
				options = resolved
			}
		}
		routesValue := objectValueByKey(options, c.source, "routes")
		if routesValue == nil {
			c.warnf(call, "createRouter options carry no statically resolvable routes array")
			return nil
		}
		if array := resolveArrayValue(routesValue, byName, c.source); array != nil {
			return c.parseRouteArray(array, vueShape)
		}
		c.warnf(routesValue, "Routes value is not a statically resolvable array")
		return nil
	}

	return extractDeclaredTables(root, ordered, c, vueShape)
}
