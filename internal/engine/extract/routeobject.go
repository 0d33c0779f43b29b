package extract

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// routeShape describes how one convention spells the canonical route
// object keys. React and Vue share the path/component object shape, so
// the shape is data rather than per-convention parsing code.
type routeShape struct {
	componentKeys []string // checked in order
	redirectKeys  []string
	nameKeys      []string
}

var (
	reactShape = routeShape{
		componentKeys: []string{"element", "Component", "component"},
		nameKeys:      []string{"id"},
	}
	vueShape = routeShape{
		componentKeys: []string{"component"},
		redirectKeys:  []string{"redirect"},
		nameKeys:      []string{"name"},
	}
	angularShape = routeShape{
		componentKeys: []string{"component", "loadComponent", "loadChildren"},
		redirectKeys:  []string{"redirectTo"},
		nameKeys:      []string{"title"},
	}
)

// parseRouteArray walks an array literal of route objects. Spread
// elements always produce a spread warning; non-object elements produce
// a general warning. Children arrays recurse with the same shape.
func (c *walkCtx) parseRouteArray(array *sitter.Node, shape routeShape) []ParsedRoute {
	routes := make([]ParsedRoute, 0)
	if array == nil {
		return routes
	}

	for i := uint(0); i < array.ChildCount(); i++ {
		element := array.Child(i)
		if element == nil || !element.IsNamed() {
			continue
		}
		switch element.Kind() {
		case "object":
			if route, ok := c.parseRouteObject(element, shape); ok {
				routes = append(routes, route)
			}
		case "spread_element":
			c.warnSpread(element, spreadVariableName(element, c.source))
		case "comment":
			// skip
		default:
			c.warnf(element, "Route table entry of kind %q is not statically resolvable", element.Kind())
		}
	}
	return routes
}

func (c *walkCtx) parseRouteObject(object *sitter.Node, shape routeShape) (ParsedRoute, bool) {
	var route ParsedRoute

	for i := uint(0); i < object.ChildCount(); i++ {
		member := object.Child(i)
		if member == nil || !member.IsNamed() {
			continue
		}

		switch member.Kind() {
		case "pair":
			key := propertyKey(member.ChildByFieldName("key"), c.source)
			value := member.ChildByFieldName("value")

			switch {
			case key == "path":
				path, ok := stringLiteral(value, c.source)
				if !ok {
					c.warnf(value, "Dynamic path value")
					return ParsedRoute{}, false
				}
				route.Path = path

			case key == "index":
				// Index routes collapse onto the parent path; Path stays "".

			case key == "children":
				if value != nil && value.Kind() == "array" {
					route.Children = c.parseRouteArray(value, shape)
				} else {
					c.warnf(value, "Children value is not an array literal")
				}

			case keyIn(key, shape.componentKeys):
				if route.Component == "" {
					route.Component = c.resolveComponent(value)
				}

			case keyIn(key, shape.redirectKeys):
				if redirect, ok := stringLiteral(value, c.source); ok {
					route.Redirect = redirect
					route.HasRedirect = true
				} else {
					c.warnf(value, "Non-literal redirect target")
				}

			case keyIn(key, shape.nameKeys):
				if name, ok := stringLiteral(value, c.source); ok {
					route.Name = name
				}
			}

		case "shorthand_property_identifier":
			key := nodeText(member, c.source)
			if keyIn(key, shape.componentKeys) && route.Component == "" {
				route.Component = c.resolveIdentifier(key)
			}
			if key == "path" {
				c.warnf(member, "Dynamic path value")
				return ParsedRoute{}, false
			}

		case "spread_element":
			c.warnf(member, "Spread in route object is not statically resolvable")
		}
	}

	// A parent record with no own path but with children flattens as a
	// layout node with Path "".
	return route, true
}

func propertyKey(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	switch node.Kind() {
	case "property_identifier", "identifier":
		return nodeText(node, source)
	case "string":
		return trimQuoted(nodeText(node, source))
	}
	return ""
}

func keyIn(key string, keys []string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// spreadVariableName returns the spread identifier's literal name when
// the argument is a bare identifier, otherwise "".
func spreadVariableName(spread *sitter.Node, source []byte) string {
	for i := uint(0); i < spread.ChildCount(); i++ {
		child := spread.Child(i)
		if child == nil || !child.IsNamed() {
			continue
		}
		if child.Kind() == "identifier" {
			return nodeText(child, source)
		}
		return ""
	}
	return ""
}
