package extract

import (
	"strings"

	"screenmap/internal/engine/screenid"
)

// Flatten walks a route tree depth-first in source order, composing
// full paths and deriving screen identifiers. The output is recomputed
// on every call and never aliases the input.
func Flatten(routes []ParsedRoute, naming screenid.Options) []FlatRoute {
	return flattenInto(nil, routes, "", 0, naming)
}

func flattenInto(out []FlatRoute, routes []ParsedRoute, parentPath string, depth int, naming screenid.Options) []FlatRoute {
	for _, route := range routes {
		// Redirect-only nodes cannot have meaningful children in this
		// design; skip the whole subtree.
		if route.HasRedirect && route.Component == "" {
			continue
		}

		fullPath := ComposePath(parentPath, route.Path)

		// Emit when the node binds a component, or is a terminal node
		// (even without a component, to surface documentation gaps).
		// Pure layout nodes are traversed but not emitted.
		if route.Component != "" || len(route.Children) == 0 {
			id, suggestions := screenid.PathToScreenID(fullPath, naming)
			out = append(out, FlatRoute{
				FullPath:      fullPath,
				Name:          route.Name,
				ComponentPath: route.Component,
				ScreenID:      id,
				ScreenTitle:   screenid.PathToScreenTitle(fullPath),
				Depth:         depth,
				Suggestions:   suggestions,
			})
		}

		if len(route.Children) > 0 {
			out = flattenInto(out, route.Children, fullPath, depth+1, naming)
		}
	}
	return out
}

// ComposePath joins a child route path onto its parent's full path.
// An absolute child replaces the parent; a relative child appends with
// exactly one separator. Repeated slashes collapse and a trailing
// slash is stripped except for the root.
func ComposePath(parentPath, childPath string) string {
	composed := ""
	switch {
	case strings.HasPrefix(childPath, "/"):
		composed = childPath
	case childPath == "":
		composed = parentPath
	case parentPath == "":
		composed = "/" + childPath
	default:
		composed = parentPath + "/" + childPath
	}

	composed = collapseSlashes(composed)
	if composed == "" {
		return "/"
	}
	if composed != "/" {
		composed = strings.TrimSuffix(composed, "/")
	}
	return composed
}

func collapseSlashes(path string) string {
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	return path
}
