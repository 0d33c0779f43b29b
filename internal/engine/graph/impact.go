package graph

import (
	"strings"
	"time"

	"screenmap/internal/catalog"
	"screenmap/internal/shared/observability"
)

// TransitiveImpact is a screen that reaches a direct dependent within
// the hop budget. Path starts at the transitive screen and ends at the
// reached direct dependent.
type TransitiveImpact struct {
	Screen catalog.Screen `json:"screen"`
	Path   []string       `json:"path"`
}

type ImpactResult struct {
	API        string             `json:"api"`
	Direct     []catalog.Screen   `json:"direct"`
	Transitive []TransitiveImpact `json:"transitive"`
	TotalCount int                `json:"totalCount"`
}

// AnalyzeImpact reports which screens an API change touches: direct
// dependents via dependsOn, plus screens that can navigate to a direct
// dependent within maxDepth hops. One bounded BFS per candidate origin
// puts the worst case at O(V*(V+E)); catalogs are bounded by UI screen
// counts rather than data volume, so this is a scaling caveat, not a
// defect.
func AnalyzeImpact(screens []catalog.Screen, api string, maxDepth int) ImpactResult {
	start := time.Now()
	defer func() {
		observability.AnalysisDuration.WithLabelValues("analyze_impact").Observe(time.Since(start).Seconds())
	}()

	byID, order, _ := indexScreens(screens)

	direct := make([]catalog.Screen, 0)
	directSet := make(map[string]bool)
	for _, id := range order {
		screen := byID[id]
		for _, dep := range screen.DependsOn {
			if matchesAPI(dep, api) {
				direct = append(direct, screen)
				directSet[screen.ID] = true
				break
			}
		}
	}

	transitive := make([]TransitiveImpact, 0)
	for _, id := range order {
		if directSet[id] {
			continue
		}
		if path, ok := shortestPathToDirect(byID, directSet, id, maxDepth); ok {
			transitive = append(transitive, TransitiveImpact{Screen: byID[id], Path: path})
		}
	}

	return ImpactResult{
		API:        api,
		Direct:     direct,
		Transitive: transitive,
		TotalCount: len(direct) + len(transitive),
	}
}

// matchesAPI applies the three-way dotted prefix match: the dependency
// entry may name the queried API exactly, a child of it, or a parent.
func matchesAPI(entry, api string) bool {
	if entry == api {
		return true
	}
	if strings.HasPrefix(entry, api+".") {
		return true
	}
	return strings.HasPrefix(api, entry+".")
}

// shortestPathToDirect runs a breadth-first search from origin along
// next edges, bounded to maxDepth hops, and stops at the first direct
// dependent; BFS guarantees the recorded path is shortest.
func shortestPathToDirect(byID map[string]catalog.Screen, directSet map[string]bool, origin string, maxDepth int) ([]string, bool) {
	type queued struct {
		id    string
		depth int
	}

	queue := []queued{{id: origin}}
	visited := map[string]bool{origin: true}
	parents := make(map[string]string)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.depth >= maxDepth {
			continue
		}

		for _, next := range byID[current.id].Next {
			if visited[next] {
				continue
			}
			if _, exists := byID[next]; !exists {
				continue
			}
			visited[next] = true
			parents[next] = current.id

			if directSet[next] {
				return rebuildPath(parents, origin, next), true
			}
			queue = append(queue, queued{id: next, depth: current.depth + 1})
		}
	}
	return nil, false
}

func rebuildPath(parents map[string]string, origin, target string) []string {
	reversed := []string{target}
	for current := target; current != origin; {
		current = parents[current]
		reversed = append(reversed, current)
	}
	path := make([]string, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}
