package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

var tanstackBuilderCalls = map[string]bool{
	"createRoute":                true,
	"createRootRoute":            true,
	"createRootRouteWithContext": true,
}

// builderRecord is one createRoute/createRootRoute declaration before
// parent/child linking.
type builderRecord struct {
	name      string
	route     ParsedRoute
	parentVar string
	isRoot    bool
	node      *sitter.Node
}

// extractTanstack handles call-chain route builders: every route is a
// separate createRoute call naming its parent through a getParentRoute
// closure, and the tree is reassembled by linking variables. Children
// keep declaration order. A parent reference to an unknown variable is
// a warning and the orphan is kept as a root.
func extractTanstack(root *sitter.Node, c *walkCtx) []ParsedRoute {
	records := make([]*builderRecord, 0)
	byVar := make(map[string]*builderRecord)

	ordered, _ := collectDeclarators(root, c.source)
	for _, decl := range ordered {
		call := decl.value
		if call.Kind() != "call_expression" {
			continue
		}
		callee := nodeText(call.ChildByFieldName("function"), c.source)
		// createRootRouteWithContext is curried: createRootRouteWithContext<Ctx>()({...})
		if inner := unwrapExpression(call.ChildByFieldName("function")); inner != nil && inner.Kind() == "call_expression" {
			if tanstackBuilderCalls[nodeText(inner.ChildByFieldName("function"), c.source)] {
				callee = nodeText(inner.ChildByFieldName("function"), c.source)
			}
		}
		if !tanstackBuilderCalls[callee] {
			continue
		}

		record := &builderRecord{
			name:   decl.name,
			isRoot: strings.HasPrefix(callee, "createRootRoute"),
			node:   call,
		}
		if options := unwrapExpression(firstArgument(call)); options != nil && options.Kind() == "object" {
			if ok := c.parseBuilderOptions(options, record); !ok {
				continue
			}
		}
		records = append(records, record)
		byVar[record.name] = record
	}

	// Link children to parents in declaration order, then collect roots.
	children := make(map[string][]*builderRecord)
	for _, record := range records {
		if record.isRoot || record.parentVar == "" {
			continue
		}
		if _, ok := byVar[record.parentVar]; !ok {
			c.warnf(record.node, "Unreachable parent route %q; keeping %q as a root", record.parentVar, record.name)
			record.isRoot = true
			continue
		}
		children[record.parentVar] = append(children[record.parentVar], record)
	}

	var build func(record *builderRecord) ParsedRoute
	build = func(record *builderRecord) ParsedRoute {
		route := record.route
		for _, child := range children[record.name] {
			route.Children = append(route.Children, build(child))
		}
		return route
	}

	routes := make([]ParsedRoute, 0)
	for _, record := range records {
		if record.isRoot || record.parentVar == "" {
			routes = append(routes, build(record))
		}
	}
	return routes
}

func (c *walkCtx) parseBuilderOptions(options *sitter.Node, record *builderRecord) bool {
	for i := uint(0); i < options.ChildCount(); i++ {
		member := options.Child(i)
		if member == nil || member.Kind() != "pair" {
			continue
		}
		key := propertyKey(member.ChildByFieldName("key"), c.source)
		value := member.ChildByFieldName("value")

		switch key {
		case "path":
			path, ok := stringLiteral(value, c.source)
			if !ok {
				c.warnf(value, "Dynamic path value")
				return false
			}
			record.route.Path = normalizeDollarParams(path)
		case "id":
			if name, ok := stringLiteral(value, c.source); ok {
				record.route.Name = name
			}
		case "component":
			record.route.Component = c.resolveComponent(value)
		case "getParentRoute":
			record.parentVar = c.parentRouteVar(value)
			if record.parentVar == "" {
				c.warnf(value, "getParentRoute is not a simple closure over a route variable")
			}
		}
	}
	return true
}

// parentRouteVar extracts the referenced variable from a
// `() => someRoute` closure.
func (c *walkCtx) parentRouteVar(node *sitter.Node) string {
	if node == nil || node.Kind() != "arrow_function" {
		return ""
	}
	body := unwrapExpression(node.ChildByFieldName("body"))
	if body == nil || body.Kind() != "identifier" {
		return ""
	}
	return nodeText(body, c.source)
}

// normalizeDollarParams rewrites TanStack's $param segments into the
// canonical :param sigil so one normalizer serves every convention.
func normalizeDollarParams(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if seg == "$" {
			segments[i] = "*"
			continue
		}
		if strings.HasPrefix(seg, "$") && len(seg) > 1 {
			segments[i] = ":" + seg[1:]
		}
	}
	return strings.Join(segments, "/")
}
