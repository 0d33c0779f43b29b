// Package extract turns route-declaration source text into a canonical
// route tree. Extraction is pattern-matching over a parsed syntax tree;
// the analyzed code is never executed, and anything that cannot be
// resolved statically degrades to a structured warning instead of an
// error.
package extract

// RouterKind identifies a supported routing convention. The set is
// closed; Sniff picks one with an ordered predicate chain.
type RouterKind string

const (
	RouterReact       RouterKind = "react-router"
	RouterVue         RouterKind = "vue-router"
	RouterTanstack    RouterKind = "tanstack-router"
	RouterAngular     RouterKind = "angular-router"
	RouterVueTemplate RouterKind = "vue-template"
	RouterUnknown     RouterKind = ""
)

// ParsedRoute is one node of the canonical route tree. Path may be
// empty for layout and index routes.
type ParsedRoute struct {
	Path        string
	Name        string
	Component   string // resolved identifier or import-path reference
	Redirect    string
	HasRedirect bool // distinguishes an empty redirect target from no redirect
	Children    []ParsedRoute
}

type WarningKind string

const (
	WarnSpread  WarningKind = "spread"
	WarnGeneral WarningKind = "general"
)

// ParseWarning annotates a gap in static knowledge. Warnings never
// abort extraction.
type ParseWarning struct {
	Kind         WarningKind
	Message      string
	Line         int
	VariableName string // spread warnings only, when the argument is a bare identifier
}

// NavLink is an implicit navigation edge found by template scanning.
type NavLink struct {
	Target string
	Line   int
}

// ParseResult is created once per source file and never mutated after
// return.
type ParseResult struct {
	Router   RouterKind
	Routes   []ParsedRoute
	Warnings []ParseWarning
	Links    []NavLink
}

// FlatRoute is the derived, immutable output of Flatten.
type FlatRoute struct {
	FullPath      string
	Name          string
	ComponentPath string
	ScreenID      string
	ScreenTitle   string
	Depth         int
	Suggestions   []string
}

// keepRoute applies the tree invariants: a route with nothing to
// represent is discarded, as is a pure redirect without component or
// children.
func keepRoute(r ParsedRoute) bool {
	if r.Path == "" && !r.HasRedirect && len(r.Children) == 0 && r.Component == "" {
		return false
	}
	if r.HasRedirect && r.Component == "" && len(r.Children) == 0 {
		return false
	}
	return true
}

func pruneRoutes(routes []ParsedRoute) []ParsedRoute {
	out := make([]ParsedRoute, 0, len(routes))
	for _, r := range routes {
		r.Children = pruneRoutes(r.Children)
		if !keepRoute(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}
