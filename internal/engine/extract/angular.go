package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

var angularRegistrationCalls = map[string]bool{
	"RouterModule.forRoot":  true,
	"RouterModule.forChild": true,
	"provideRouter":         true,
}

// extractAngular recognizes decorator-annotated module route tables.
// The registration call usually sits inside an @NgModule decorator
// argument (imports: [RouterModule.forRoot(routes)]) or a bootstrap
// provider list (provideRouter(routes)); both reference the table
// variable, which is resolved through the top-level declarations.
// loadComponent/loadChildren lazy references resolve like any other
// literal dynamic import.
func extractAngular(root *sitter.Node, c *walkCtx) []ParsedRoute {
	ordered, byName := collectDeclarators(root, c.source)

	if call := findCall(root, c.source, angularRegistrationCalls); call != nil {
		if array := resolveArrayValue(firstArgument(call), byName, c.source); array != nil {
			return c.parseRouteArray(array, angularShape)
		}
		c.warnf(call, "Router registration argument is not a statically resolvable array")
		return nil
	}

	return extractDeclaredTables(root, ordered, c, angularShape)
}
