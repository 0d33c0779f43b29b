// Package report renders scan results: navigation diagrams for docs and
// a styled terminal summary.
package report

import (
	"fmt"
	"strings"
	"unicode"

	"screenmap/internal/catalog"
	"screenmap/internal/engine/graph"
)

// MermaidNavigation renders the screen graph as a mermaid flowchart.
// Screens on a disallowed cycle are highlighted; allowed cycles keep the
// normal style since they are documented behavior.
func MermaidNavigation(screens []catalog.Screen, cycles graph.CycleDetectionResult) string {
	var b strings.Builder
	b.WriteString("%%{init: {'flowchart': {'nodeSpacing': 60, 'rankSpacing': 90, 'curve': 'basis'}}}%%\n")
	b.WriteString("flowchart LR\n")

	ids := makeNodeIDs(screens)
	known := knownScreens(screens)
	cycleEdges := cycleEdgeSet(cycles.DisallowedCycles)
	cycleScreens := cycleScreenSet(cycles.DisallowedCycles)

	for _, screen := range screens {
		b.WriteString(fmt.Sprintf("  %s[\"%s\"]\n", ids[screen.ID], escapeMermaidLabel(nodeLabel(screen))))
	}

	b.WriteString("\n")
	if len(screens) > 0 {
		b.WriteString("  classDef screenNode fill:#f7fbff,stroke:#4d6480,stroke-width:1px;\n")
		b.WriteString("  class ")
		b.WriteString(strings.Join(allIDs(screens, ids), ","))
		b.WriteString(" screenNode;\n")
	}
	if len(cycleScreens) > 0 {
		names := make([]string, 0, len(cycleScreens))
		for _, screen := range screens {
			if cycleScreens[screen.ID] {
				names = append(names, ids[screen.ID])
			}
		}
		if len(names) > 0 {
			b.WriteString("  classDef cycleNode fill:#ffecec,stroke:#cc0000,stroke-width:2px;\n")
			b.WriteString(fmt.Sprintf("  class %s cycleNode;\n", strings.Join(names, ",")))
		}
	}

	b.WriteString("\n")
	linkIndex := 0
	cycleLinkIndexes := make([]int, 0)
	for _, screen := range screens {
		for _, next := range screen.Next {
			if !known[next] {
				continue
			}
			label := ""
			if cycleEdges[screen.ID+"->"+next] {
				label = "|CYCLE|"
				cycleLinkIndexes = append(cycleLinkIndexes, linkIndex)
			}
			b.WriteString(fmt.Sprintf("  %s -->%s %s\n", ids[screen.ID], label, ids[next]))
			linkIndex++
		}
	}
	if len(cycleLinkIndexes) > 0 {
		b.WriteString(fmt.Sprintf("\n  linkStyle %s stroke:#cc0000,stroke-width:3px;\n", joinInts(cycleLinkIndexes)))
	}

	return b.String()
}

// DOTNavigation renders the screen graph in Graphviz DOT.
func DOTNavigation(screens []catalog.Screen, cycles graph.CycleDetectionResult) string {
	var b strings.Builder

	b.WriteString("digraph navigation {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=rounded, fontname=\"Helvetica\", fontsize=10];\n")
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=8, penwidth=1.2];\n\n")

	known := knownScreens(screens)
	cycleEdges := cycleEdgeSet(cycles.DisallowedCycles)
	cycleScreens := cycleScreenSet(cycles.DisallowedCycles)

	for _, screen := range screens {
		label := nodeLabel(screen)
		if cycleScreens[screen.ID] {
			b.WriteString(fmt.Sprintf("  \"%s\" [label=\"%s\", fillcolor=\"mistyrose\", color=\"red\", style=\"rounded,filled\", penwidth=2.0];\n", screen.ID, label))
		} else {
			b.WriteString(fmt.Sprintf("  \"%s\" [label=\"%s\", color=\"darkslategrey\"];\n", screen.ID, label))
		}
	}
	b.WriteString("\n")

	for _, screen := range screens {
		for _, next := range screen.Next {
			if !known[next] {
				continue
			}
			if cycleEdges[screen.ID+"->"+next] {
				b.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [color=\"red\", penwidth=3.0, label=\"CYCLE\"];\n", screen.ID, next))
			} else {
				b.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [color=\"forestgreen\", penwidth=1.8];\n", screen.ID, next))
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func nodeLabel(screen catalog.Screen) string {
	if screen.Route == "" {
		return screen.ID
	}
	return fmt.Sprintf("%s\\n%s", screen.ID, screen.Route)
}

func knownScreens(screens []catalog.Screen) map[string]bool {
	known := make(map[string]bool, len(screens))
	for _, screen := range screens {
		known[screen.ID] = true
	}
	return known
}

func cycleEdgeSet(cycles []graph.CycleInfo) map[string]bool {
	out := make(map[string]bool)
	for _, cycle := range cycles {
		for i := 0; i+1 < len(cycle.Cycle); i++ {
			out[cycle.Cycle[i]+"->"+cycle.Cycle[i+1]] = true
		}
	}
	return out
}

func cycleScreenSet(cycles []graph.CycleInfo) map[string]bool {
	out := make(map[string]bool)
	for _, cycle := range cycles {
		for _, id := range cycle.Cycle {
			out[id] = true
		}
	}
	return out
}

func sanitizeNodeID(id string) string {
	if id == "" {
		return "s"
	}
	var b strings.Builder
	for _, r := range id {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune('_')
	}
	out := b.String()
	if unicode.IsDigit(rune(out[0])) {
		return "s_" + out
	}
	return out
}

func makeNodeIDs(screens []catalog.Screen) map[string]string {
	ids := make(map[string]string, len(screens))
	used := make(map[string]int, len(screens))
	for _, screen := range screens {
		if _, ok := ids[screen.ID]; ok {
			continue
		}
		base := sanitizeNodeID(screen.ID)
		idx := used[base]
		used[base] = idx + 1
		if idx == 0 {
			ids[screen.ID] = base
			continue
		}
		ids[screen.ID] = fmt.Sprintf("%s_%d", base, idx+1)
	}
	return ids
}

func allIDs(screens []catalog.Screen, ids map[string]string) []string {
	seen := make(map[string]bool, len(screens))
	out := make([]string, 0, len(screens))
	for _, screen := range screens {
		id := ids[screen.ID]
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func escapeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func joinInts(v []int) string {
	parts := make([]string, 0, len(v))
	for _, n := range v {
		parts = append(parts, fmt.Sprintf("%d", n))
	}
	return strings.Join(parts, ",")
}
