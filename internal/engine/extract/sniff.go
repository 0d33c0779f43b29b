package extract

import (
	"regexp"
	"strings"
)

// Sniff picks the routing convention for a source file with an ordered
// predicate chain. Order matters and is fixed:
//
//  1. Vue SFC markers (template + script blocks) — structural, cannot
//     be confused with plain modules.
//  2. TanStack import/call markers — createRoute/getParentRoute is more
//     specific than any object shape.
//  3. Angular import/decorator markers — RouterModule/provideRouter.
//  4. Vue Router imports — checked before React because "vue-router"
//     and "react-router" both ship path/component object shapes and the
//     import name is the only unambiguous signal.
//  5. React Router imports and call shapes.
//  6. Type-annotation fallbacks (RouteRecordRaw vs RouteObject).
//
// Anything else is RouterUnknown.
func Sniff(source []byte) RouterKind {
	text := string(source)

	if sfcMarkerRe.MatchString(text) {
		return RouterVueTemplate
	}

	switch {
	case strings.Contains(text, "@tanstack/react-router"),
		strings.Contains(text, "getParentRoute"):
		return RouterTanstack

	case strings.Contains(text, "@angular/router"),
		strings.Contains(text, "RouterModule.forRoot"),
		strings.Contains(text, "RouterModule.forChild"),
		strings.Contains(text, "provideRouter("):
		return RouterAngular

	case strings.Contains(text, "vue-router"),
		strings.Contains(text, "createRouter("):
		return RouterVue

	case strings.Contains(text, "react-router"),
		strings.Contains(text, "createBrowserRouter("),
		strings.Contains(text, "createHashRouter("),
		strings.Contains(text, "createMemoryRouter("),
		strings.Contains(text, "useRoutes("):
		return RouterReact

	case strings.Contains(text, "RouteRecordRaw"):
		return RouterVue

	case strings.Contains(text, "RouteObject"):
		return RouterReact
	}

	return RouterUnknown
}

// An SFC has a top-level <template> block; a <script> block is optional
// for pure presentational components.
var sfcMarkerRe = regexp.MustCompile(`(?m)^\s*<template[\s>]`)
