package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"screenmap/internal/catalog"
	"screenmap/internal/core/config"
	"screenmap/internal/core/errors"
	"screenmap/internal/data/history"
	"screenmap/internal/engine/extract"
	"screenmap/internal/engine/graph"
	"screenmap/internal/engine/screenid"
	"screenmap/internal/shared/observability"
)

// Result is everything one scan produced, in the order the reporting
// layer consumes it.
type Result struct {
	Screens      []catalog.Screen
	Issues       []catalog.Issue
	Cycles       graph.CycleDetectionResult
	FilesScanned int
	RoutesFound  int
	LinksFound   int
	WarningCount int
	Duration     time.Duration
	Warnings     []string
}

type fileOutcome struct {
	path   string
	result *extract.ParseResult
	err    error
}

// RunScan performs one full pass: collect sources, extract routes,
// flatten, merge metadata, validate references, detect cycles, persist
// a snapshot and write the configured artifacts.
func (a *App) RunScan(ctx context.Context) (Result, error) {
	ctx, span := observability.Tracer.Start(ctx, "app.RunScan")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := time.Now()

	files, err := a.ScanDirectories(normalizeScanPaths(a.Config.ScanPaths))
	if err != nil {
		return Result{}, errors.AddContext(err, errors.CtxOperation, "scan_directories")
	}
	pages, err := a.collectPageFiles()
	if err != nil {
		return Result{}, errors.AddContext(err, errors.CtxOperation, "collect_pages")
	}

	outcomes, err := a.extractAll(ctx, files)
	if err != nil {
		return Result{}, err
	}

	naming := namingOptions(a.Config.Normalizer)
	var (
		flat        []extract.FlatRoute
		fileLinks   []sourceLinks
		warnings    []string
		warnCount   int
		linksFound  int
		routesFound int
	)

	for _, outcome := range outcomes {
		if outcome.err != nil {
			warnings = append(warnings, fmt.Sprintf("extract %s: %v", outcome.path, outcome.err))
			continue
		}
		result := outcome.result
		warnCount += len(result.Warnings)

		routes := extract.Flatten(result.Routes, naming)
		routesFound += len(routes)
		for _, route := range routes {
			warnCount += len(route.Suggestions)
		}
		flat = append(flat, routes...)

		if len(result.Links) > 0 {
			linksFound += len(result.Links)
			fileLinks = append(fileLinks, sourceLinks{path: outcome.path, links: result.Links})
		}
	}

	for _, page := range pages {
		route, ok := extract.RouteFromFile(page.Path, page.Root)
		if !ok {
			continue
		}
		routes := extract.Flatten([]extract.ParsedRoute{route}, naming)
		routesFound += len(routes)
		flat = append(flat, routes...)
	}

	linkEdges := attributeLinks(fileLinks, flat)

	meta, err := loadMetadata(a.Config.MetadataFile)
	if err != nil {
		return Result{}, err
	}

	builder := catalog.Builder{Naming: naming}
	screens := builder.Build(flat, linkEdges, meta)
	issues := catalog.Validate(screens, a.API)

	cycles := graph.DetectCycles(screens)

	result := Result{
		Screens:      screens,
		Issues:       issues,
		Cycles:       cycles,
		FilesScanned: len(files) + len(pages),
		RoutesFound:  routesFound,
		LinksFound:   linksFound,
		WarningCount: warnCount,
		Duration:     time.Since(start),
		Warnings:     warnings,
	}

	span.SetAttributes(
		attribute.Int("screens", len(screens)),
		attribute.Int("files", result.FilesScanned),
		attribute.Int("cycles", len(cycles.Cycles)),
	)

	if a.History != nil {
		snapshot := history.Snapshot{
			ProjectKey:   a.Config.DB.ProjectKey,
			ScreenCount:  len(screens),
			RouteCount:   routesFound,
			LinkCount:    linksFound,
			WarningCount: warnCount,
			CycleCount:   len(cycles.Cycles),
			IssueCount:   len(issues),
		}
		if err := a.History.SaveSnapshot(snapshot); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("save snapshot: %v", err))
		}
	}

	if err := a.writeOutputs(result); err != nil {
		return Result{}, err
	}

	return result, nil
}

// extractAll runs the per-file extractors on a bounded worker pool.
// Output order matches input order so repeated scans of the same tree
// produce identical catalogs.
func (a *App) extractAll(ctx context.Context, files []string) ([]fileOutcome, error) {
	outcomes := make([]fileOutcome, len(files))
	jobs := make(chan int)

	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = a.extractOne(ctx, files[i])
			}
		}()
	}

	for i := range files {
		select {
		case jobs <- i:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()

	return outcomes, nil
}

func (a *App) extractOne(ctx context.Context, path string) fileOutcome {
	if err := a.limiter.Wait(ctx, 1); err != nil {
		return fileOutcome{path: path, err: err}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fileOutcome{path: path, err: err}
	}
	result, err := extract.Extract(content, path)
	return fileOutcome{path: path, result: result, err: err}
}

type sourceLinks struct {
	path  string
	links []extract.NavLink
}

// attributeLinks assigns template links to the screen whose component
// resolves to the scanned file, so a <router-link> inside Home.vue
// becomes an edge out of the home screen.
func attributeLinks(fileLinks []sourceLinks, flat []extract.FlatRoute) []catalog.LinkEdge {
	var edges []catalog.LinkEdge
	for _, source := range fileLinks {
		from := screenForFile(source.path, flat)
		if from == "" {
			continue
		}
		for _, link := range source.links {
			edges = append(edges, catalog.LinkEdge{From: from, TargetPath: link.Target})
		}
	}
	return edges
}

// screenForFile finds the screen whose component path is a suffix of
// the scanned file path. Route tables reference components by import
// spec ("./views/Home.vue"); the scanner sees the filesystem path. An
// extension-less spec ("./pages/Home") matches the file with any route
// source extension.
func screenForFile(path string, flat []extract.FlatRoute) string {
	slashPath := strings.ReplaceAll(path, "\\", "/")
	noExt := strings.TrimSuffix(slashPath, filepath.Ext(slashPath))

	type match struct {
		id  string
		len int
	}
	var best match
	for _, route := range flat {
		comp := componentFilePath(route.ComponentPath)
		if comp == "" {
			continue
		}
		candidate := slashPath
		if filepath.Ext(comp) == "" {
			candidate = noExt
		}
		if candidate == comp || strings.HasSuffix(candidate, "/"+comp) {
			if len(comp) > best.len {
				best = match{id: route.ScreenID, len: len(comp)}
			}
		}
	}
	return best.id
}

func componentFilePath(componentPath string) string {
	comp := componentPath
	if i := strings.Index(comp, "#"); i >= 0 {
		comp = comp[:i]
	}
	comp = strings.TrimPrefix(comp, "./")
	return strings.TrimPrefix(comp, "/")
}

func namingOptions(n config.Normalizer) screenid.Options {
	return screenid.Options{
		SmartParameterNaming:      n.SmartParameterNaming,
		ParameterMapping:          n.ParameterMapping,
		UnmappedParameterStrategy: screenid.Strategy(strings.ToLower(n.UnmappedParameterStrategy)),
	}
}
