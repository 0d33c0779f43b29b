package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"screenmap/internal/catalog"
	"screenmap/internal/engine/graph"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	badStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Summary is the terminal-facing digest of one scan.
type Summary struct {
	Project      string
	Duration     time.Duration
	FilesScanned int
	RoutesFound  int
	LinksFound   int
	ScreenCount  int
	WarningCount int
	Issues       []catalog.Issue
	Cycles       graph.CycleDetectionResult
}

// RenderSummary renders the scan digest for the terminal.
func RenderSummary(s Summary) string {
	var b strings.Builder

	header := "screenmap"
	if s.Project != "" {
		header += " · " + s.Project
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("scanned %d files in %s", s.FilesScanned, s.Duration.Round(time.Millisecond))))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  screens  %d\n", s.ScreenCount))
	b.WriteString(fmt.Sprintf("  routes   %d\n", s.RoutesFound))
	b.WriteString(fmt.Sprintf("  links    %d\n", s.LinksFound))

	if s.WarningCount > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  warnings %d", s.WarningCount)))
		b.WriteString("\n")
	}

	switch {
	case len(s.Cycles.DisallowedCycles) > 0:
		b.WriteString(badStyle.Render(fmt.Sprintf("  %d disallowed navigation cycle(s)", len(s.Cycles.DisallowedCycles))))
		b.WriteString("\n")
		for _, cycle := range s.Cycles.DisallowedCycles {
			b.WriteString("    " + strings.Join(cycle.Cycle, " -> ") + "\n")
		}
	case s.Cycles.HasCycles:
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d allowed cycle(s)", len(s.Cycles.Cycles))))
		b.WriteString("\n")
	default:
		b.WriteString(okStyle.Render("  no navigation cycles"))
		b.WriteString("\n")
	}

	if len(s.Cycles.DuplicateIDs) > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  duplicate screen ids: %s", strings.Join(s.Cycles.DuplicateIDs, ", "))))
		b.WriteString("\n")
	}

	if len(s.Issues) > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  %d dangling reference(s)", len(s.Issues))))
		b.WriteString("\n")
		for _, issue := range s.Issues {
			line := fmt.Sprintf("    %s.%s -> %q", issue.ScreenID, issue.Field, issue.Ref)
			if len(issue.Suggestions) > 0 {
				line += dimStyle.Render(" (did you mean " + strings.Join(issue.Suggestions, ", ") + "?)")
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

// RenderImpact renders an impact analysis for the terminal.
func RenderImpact(result graph.ImpactResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("impact of %s", result.API)))
	b.WriteString("\n")
	if result.TotalCount == 0 {
		b.WriteString(okStyle.Render("  no screens affected"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  %d screen(s) affected\n", result.TotalCount))
	for _, screen := range result.Direct {
		b.WriteString(fmt.Sprintf("  direct      %s\n", screen.ID))
	}
	for _, impact := range result.Transitive {
		b.WriteString(fmt.Sprintf("  transitive  %s %s\n", impact.Screen.ID,
			dimStyle.Render("via "+strings.Join(impact.Path, " -> "))))
	}
	return b.String()
}
