package catalog

import (
	"fmt"

	"screenmap/internal/data/openapi"
	"screenmap/internal/engine/fuzzy"
)

// Issue is one dangling reference found during catalog validation.
// Validation never fails a scan; issues are reported and the catalog
// stays usable.
type Issue struct {
	ScreenID    string   `json:"screenId"`
	Field       string   `json:"field"` // next, entryPoints, dependsOn
	Ref         string   `json:"ref"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Validate checks every next/entryPoints reference against the known
// screen ids and every dependsOn entry against the OpenAPI identifier
// sets. A nil api spec skips dependsOn validation entirely.
func Validate(screens []Screen, api *openapi.Spec) []Issue {
	ids := make([]string, 0, len(screens))
	known := make(map[string]bool, len(screens))
	for _, screen := range screens {
		if !known[screen.ID] {
			ids = append(ids, screen.ID)
		}
		known[screen.ID] = true
	}

	issues := make([]Issue, 0)
	for _, screen := range screens {
		issues = appendScreenRefIssues(issues, screen.ID, "next", screen.Next, known, ids)
		issues = appendScreenRefIssues(issues, screen.ID, "entryPoints", screen.EntryPoints, known, ids)
		if api != nil {
			issues = appendAPIRefIssues(issues, screen.ID, screen.DependsOn, api)
		}
	}
	return issues
}

func appendScreenRefIssues(issues []Issue, screenID, field string, refs []string, known map[string]bool, ids []string) []Issue {
	for _, ref := range refs {
		if known[ref] {
			continue
		}
		issues = append(issues, Issue{
			ScreenID:    screenID,
			Field:       field,
			Ref:         ref,
			Message:     fmt.Sprintf("screen %q references unknown screen %q in %s", screenID, ref, field),
			Suggestions: fuzzy.FindSimilar(ref, ids, fuzzy.Options{}),
		})
	}
	return issues
}

func appendAPIRefIssues(issues []Issue, screenID string, refs []string, api *openapi.Spec) []Issue {
	for _, ref := range refs {
		if api.OperationIDs[ref] || api.HTTPEndpoints[ref] {
			continue
		}

		// A spelled-form match after normalization is the best possible
		// suggestion; fall back to edit distance with the looser ratio
		// API identifiers need.
		var suggestions []string
		if original, ok := api.Original(ref); ok {
			suggestions = []string{original}
		} else {
			suggestions = fuzzy.FindSimilar(ref, api.Candidates(),
				fuzzy.Options{MaxDistanceRatio: fuzzy.LooseMaxDistanceRatio})
		}

		issues = append(issues, Issue{
			ScreenID:    screenID,
			Field:       "dependsOn",
			Ref:         ref,
			Message:     fmt.Sprintf("screen %q depends on unknown API %q", screenID, ref),
			Suggestions: suggestions,
		})
	}
	return issues
}
