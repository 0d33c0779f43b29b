package catalog

import (
	"screenmap/internal/engine/extract"
	"screenmap/internal/engine/screenid"
	"screenmap/internal/shared/observability"
	"screenmap/internal/shared/util"
)

// LinkEdge is an implicit navigation edge attributed to its source
// screen: a template link found while scanning that screen's component.
type LinkEdge struct {
	From       string // source screen id
	TargetPath string // literal route path from the template
}

// Builder merges extracted routes, template link edges and user-authored
// metadata into screen records. Naming must match the options used
// during flattening so link targets resolve to the same identifiers.
type Builder struct {
	Naming screenid.Options
}

// Build produces the catalog in deterministic order: extracted routes in
// scan order first, then metadata-only screens sorted by id. Duplicate
// extracted ids are preserved as separate records; the analyzer reports
// them.
func (b *Builder) Build(flat []extract.FlatRoute, links []LinkEdge, meta Metadata) []Screen {
	screens := make([]Screen, 0, len(flat))
	known := make(map[string]bool, len(flat))
	byRoute := make(map[string]string, len(flat))

	for _, route := range flat {
		screen := Screen{
			ID:    route.ScreenID,
			Title: route.ScreenTitle,
			Route: route.FullPath,
		}
		known[screen.ID] = true
		if _, taken := byRoute[route.FullPath]; !taken {
			byRoute[route.FullPath] = screen.ID
		}
		screens = append(screens, screen)
	}

	edges := b.resolveLinks(links, byRoute)

	for _, key := range util.SortedStringKeys(meta.Screens) {
		if known[key] {
			continue
		}
		// Metadata-only screens: modals, external hand-offs, anything no
		// route table declares.
		screens = append(screens, Screen{ID: key})
	}

	for i := range screens {
		screen := &screens[i]
		if overlay, ok := meta.Screens[screen.ID]; ok {
			applyMeta(screen, overlay)
		}
		screen.Next = util.AppendUnique(screen.Next, edges[screen.ID]...)
	}

	observability.CatalogScreens.Set(float64(len(screens)))
	observability.NavigationEdges.Set(float64(countEdges(screens)))
	return screens
}

// resolveLinks maps link target paths to screen ids: an exact route
// match wins, otherwise the target path is normalized with the same
// naming options. Unresolvable targets still become edges so reference
// validation can surface them with suggestions.
func (b *Builder) resolveLinks(links []LinkEdge, byRoute map[string]string) map[string][]string {
	edges := make(map[string][]string)
	for _, link := range links {
		if link.From == "" || link.TargetPath == "" {
			continue
		}
		target, ok := byRoute[link.TargetPath]
		if !ok {
			target, _ = screenid.PathToScreenID(link.TargetPath, b.Naming)
		}
		if target == "" || target == link.From {
			continue
		}
		edges[link.From] = append(edges[link.From], target)
	}
	return edges
}

func applyMeta(screen *Screen, overlay ScreenMeta) {
	if overlay.Title != "" {
		screen.Title = overlay.Title
	}
	screen.Next = util.AppendUnique(screen.Next, overlay.Next...)
	screen.EntryPoints = util.AppendUnique(screen.EntryPoints, overlay.EntryPoints...)
	screen.DependsOn = util.AppendUnique(screen.DependsOn, overlay.DependsOn...)
	if overlay.AllowCycles {
		screen.AllowCycles = true
	}
}

func countEdges(screens []Screen) int {
	total := 0
	for _, screen := range screens {
		total += len(screen.Next)
	}
	return total
}
