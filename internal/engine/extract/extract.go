package extract

import (
	"fmt"
	"time"

	"screenmap/internal/core/errors"
	"screenmap/internal/shared/observability"
)

// expectedShapes names the route table shapes each extractor accepts,
// for the diagnostic emitted when a file yields nothing.
var expectedShapes = map[RouterKind]string{
	RouterReact:       "createBrowserRouter/createHashRouter/useRoutes call, exported RouteObject[] array, or satisfies-asserted array",
	RouterVue:         "createRouter({routes}) call or exported RouteRecordRaw[] array",
	RouterTanstack:    "createRootRoute/createRoute declarations linked by getParentRoute",
	RouterAngular:     "Routes array registered via RouterModule.forRoot/forChild or provideRouter",
	RouterVueTemplate: "router-link/RouterLink elements with literal to targets",
	RouterUnknown:     "a known routing convention (react-router, vue-router, tanstack, angular, vue SFC template)",
}

// Extract sniffs the routing convention of source and runs the matching
// extractor. A fatal error means the source could not be parsed at all;
// every lesser gap is a structured warning on the result.
func Extract(source []byte, filePath string) (*ParseResult, error) {
	return ExtractKind(Sniff(source), source, filePath)
}

// ExtractKind runs a specific convention's extractor. Callers that
// already know the convention (tests, re-scans) skip sniffing.
func ExtractKind(kind RouterKind, source []byte, filePath string) (*ParseResult, error) {
	start := time.Now()
	defer func() {
		observability.ExtractionDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	}()

	var result *ParseResult
	switch kind {
	case RouterVueTemplate:
		result = extractTemplateLinks(source, filePath)

	case RouterUnknown:
		// No convention matched, but broken source is still fatal so a
		// truncated route file cannot silently vanish from the catalog.
		tree, err := parseTree(grammarFor(filePath), source, filePath)
		if err != nil {
			return nil, err
		}
		tree.Close()
		result = &ParseResult{Router: RouterUnknown}

	default:
		tree, err := parseTree(grammarFor(filePath), source, filePath)
		if err != nil {
			return nil, err
		}
		defer tree.Close()
		root := tree.RootNode()

		c := &walkCtx{
			source:  source,
			path:    filePath,
			imports: buildImportMap(root, source),
		}

		var routes []ParsedRoute
		switch kind {
		case RouterReact:
			routes = extractReact(root, c)
		case RouterVue:
			routes = extractVue(root, c)
		case RouterTanstack:
			routes = extractTanstack(root, c)
		case RouterAngular:
			routes = extractAngular(root, c)
		default:
			err := errors.New(errors.CodeNotSupported, "no extractor for router kind")
			return nil, errors.AddContext(err, errors.CtxRouter, string(kind))
		}

		result = &ParseResult{
			Router:   kind,
			Routes:   pruneRoutes(routes),
			Warnings: c.warnings,
		}
	}

	if len(result.Routes) == 0 && len(result.Links) == 0 {
		result.Warnings = append(result.Warnings, ParseWarning{
			Kind:    WarnGeneral,
			Message: fmt.Sprintf("No routes found; expected %s", expectedShapes[kind]),
		})
	}

	observability.RoutesExtracted.WithLabelValues(string(kind)).Add(float64(countRoutes(result.Routes)))
	observability.ExtractionWarnings.WithLabelValues(string(kind)).Add(float64(len(result.Warnings)))
	return result, nil
}

func countRoutes(routes []ParsedRoute) int {
	total := 0
	for _, r := range routes {
		total += 1 + countRoutes(r.Children)
	}
	return total
}
