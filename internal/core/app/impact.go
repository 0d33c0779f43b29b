package app

import (
	"screenmap/internal/catalog"
	"screenmap/internal/engine/graph"
)

// Impact reports which screens depend on an API identifier, directly or
// through navigation, bounded by the configured traversal depth.
func (a *App) Impact(screens []catalog.Screen, api string) graph.ImpactResult {
	return graph.AnalyzeImpact(screens, api, a.Config.Analysis.MaxDepth)
}
