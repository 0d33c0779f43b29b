package app

import (
	"encoding/json"
	"fmt"

	"screenmap/internal/shared/util"
	"screenmap/internal/ui/report"
)

// writeOutputs persists the configured artifacts. The catalog is always
// written; diagrams only when a path is configured.
func (a *App) writeOutputs(result Result) error {
	data, err := json.MarshalIndent(result.Screens, "", "  ")
	if err != nil {
		return err
	}
	if err := util.WriteFileWithDirs(a.Config.Output.Catalog, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	if path := a.Config.Output.Mermaid; path != "" {
		diagram := report.MermaidNavigation(result.Screens, result.Cycles)
		if err := util.WriteFileWithDirs(path, []byte(diagram), 0o644); err != nil {
			return fmt.Errorf("write mermaid diagram: %w", err)
		}
	}

	if path := a.Config.Output.DOT; path != "" {
		diagram := report.DOTNavigation(result.Screens, result.Cycles)
		if err := util.WriteFileWithDirs(path, []byte(diagram), 0o644); err != nil {
			return fmt.Errorf("write dot diagram: %w", err)
		}
	}

	return nil
}
