package graph

import (
	"time"

	"screenmap/internal/catalog"
	"screenmap/internal/shared/observability"
)

// CycleInfo is one closed walk through the navigation graph. Cycle
// always starts and ends on the same screen id. Allowed is true when
// any node on the cycle (excluding the closing repeat) opts in via
// AllowCycles.
type CycleInfo struct {
	Cycle   []string `json:"cycle"`
	Allowed bool     `json:"allowed"`
}

type CycleDetectionResult struct {
	HasCycles        bool        `json:"hasCycles"`
	Cycles           []CycleInfo `json:"cycles"`
	DisallowedCycles []CycleInfo `json:"disallowedCycles"`
	DuplicateIDs     []string    `json:"duplicateIds"`
}

type nodeState int

const (
	stateUnvisited nodeState = iota
	stateInProgress
	stateDone
)

// DetectCycles runs a three-color depth-first search over the next
// adjacency relation, O(V+E). Neighbors referencing a non-existent
// screen id are a reference-validation concern, not a cycle concern,
// and are skipped for traversal.
func DetectCycles(screens []catalog.Screen) CycleDetectionResult {
	start := time.Now()
	defer func() {
		observability.AnalysisDuration.WithLabelValues("detect_cycles").Observe(time.Since(start).Seconds())
	}()

	byID, order, duplicates := indexScreens(screens)

	states := make(map[string]nodeState, len(byID))
	parents := make(map[string]string, len(byID))
	cycles := make([]CycleInfo, 0)

	var visit func(id string)
	visit = func(id string) {
		states[id] = stateInProgress
		for _, next := range byID[id].Next {
			if _, exists := byID[next]; !exists {
				continue
			}
			switch states[next] {
			case stateUnvisited:
				parents[next] = id
				visit(next)
			case stateInProgress:
				// Back edge from id to ancestor next.
				if cycle, ok := reconstructCycle(parents, byID, id, next); ok {
					cycles = append(cycles, cycle)
				}
			}
		}
		states[id] = stateDone
	}

	for _, id := range order {
		if states[id] == stateUnvisited {
			visit(id)
		}
	}

	disallowed := make([]CycleInfo, 0)
	for _, cycle := range cycles {
		if !cycle.Allowed {
			disallowed = append(disallowed, cycle)
		}
	}

	return CycleDetectionResult{
		HasCycles:        len(cycles) > 0,
		Cycles:           cycles,
		DisallowedCycles: disallowed,
		DuplicateIDs:     duplicates,
	}
}

// reconstructCycle walks parent pointers from the back edge's origin up
// to its ancestor, producing the closed walk [ancestor, ..., origin,
// ancestor]. The walk is bounded by graph size: exceeding it means the
// parent map is corrupted, and the cycle is dropped rather than looped
// on forever.
func reconstructCycle(parents map[string]string, byID map[string]catalog.Screen, origin, ancestor string) (CycleInfo, bool) {
	reversed := []string{origin}
	current := origin
	for steps := 0; current != ancestor; steps++ {
		if steps > len(byID) {
			return CycleInfo{}, false
		}
		next, ok := parents[current]
		if !ok {
			return CycleInfo{}, false
		}
		current = next
		reversed = append(reversed, current)
	}

	cycle := make([]string, 0, len(reversed)+1)
	for i := len(reversed) - 1; i >= 0; i-- {
		cycle = append(cycle, reversed[i])
	}
	cycle = append(cycle, ancestor)

	allowed := false
	for _, id := range cycle[:len(cycle)-1] {
		if byID[id].AllowCycles {
			allowed = true
			break
		}
	}
	return CycleInfo{Cycle: cycle, Allowed: allowed}, true
}
