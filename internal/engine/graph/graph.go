// Package graph runs read-only analyses over an in-memory screen
// catalog: navigation cycle detection and API impact/reachability.
// Both queries are deterministic functions of their inputs and never
// mutate the catalog.
package graph

import (
	"screenmap/internal/catalog"
)

// indexScreens builds the id -> Screen map. When the same id appears
// more than once the last write wins and every duplicate is recorded;
// callers treat duplicates as a data-integrity signal independent of
// any cycle result.
func indexScreens(screens []catalog.Screen) (map[string]catalog.Screen, []string, []string) {
	byID := make(map[string]catalog.Screen, len(screens))
	order := make([]string, 0, len(screens))
	duplicates := make([]string, 0)

	for _, screen := range screens {
		if _, exists := byID[screen.ID]; exists {
			duplicates = append(duplicates, screen.ID)
		} else {
			order = append(order, screen.ID)
		}
		byID[screen.ID] = screen
	}
	return byID, order, duplicates
}
