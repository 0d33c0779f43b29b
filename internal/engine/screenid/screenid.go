// Package screenid derives canonical dot-delimited screen identifiers
// from framework route paths. The mapping is pure and total: every
// input path has a defined identifier, and identical inputs always
// produce identical outputs.
package screenid

import (
	"fmt"
	"regexp"
	"strings"
)

type Strategy string

const (
	StrategyPreserve Strategy = "preserve"
	StrategyDetail   Strategy = "detail"
	StrategyWarn     Strategy = "warn"
)

type Options struct {
	SmartParameterNaming bool
	// ParameterMapping maps a parameter name (without sigil) to its
	// replacement segment. Always wins over smart naming.
	ParameterMapping          map[string]string
	UnmappedParameterStrategy Strategy
}

// actionWords is the closed set of path segments that keep a preceding
// parameter verbatim so the id does not lose context.
var actionWords = map[string]bool{
	"edit":     true,
	"new":      true,
	"create":   true,
	"delete":   true,
	"settings": true,
	"view":     true,
	"update":   true,
}

// Vue named capture groups wrapping .* match any remaining path,
// e.g. /:pathMatch(.*)* or /:catchAll(.*).
var vueCatchAllRe = regexp.MustCompile(`^:[A-Za-z_$][\w$]*\(\.\*\)\*?\??$`)

const (
	notFoundSegment = "not-found"
	catchAllSegment = "catchall"
	rootID          = "home"
)

// PathToScreenID converts a route path to its canonical screen id and,
// under the warn strategy, rename suggestions for unmapped parameters.
func PathToScreenID(path string, opts Options) (string, []string) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return rootID, nil
	}

	strategy := opts.UnmappedParameterStrategy
	if strategy == "" {
		strategy = StrategyPreserve
	}

	rawSegments := splitSegments(trimmed)
	segments := make([]string, 0, len(rawSegments))
	var suggestions []string

	for i, seg := range rawSegments {
		if vueCatchAllRe.MatchString(seg) {
			segments = append(segments, notFoundSegment)
			continue
		}
		if isWildcard(seg) {
			segments = append(segments, wildcardName(seg))
			continue
		}
		if !strings.HasPrefix(seg, ":") {
			segments = append(segments, seg)
			continue
		}

		name := paramName(seg)
		isLast := i == len(rawSegments)-1
		beforeAction := !isLast && actionWords[rawSegments[i+1]]

		if mapped, ok := opts.ParameterMapping[name]; ok {
			segments = append(segments, mapped)
			continue
		}

		if opts.SmartParameterNaming {
			if resolved, ok := smartName(name, isLast, beforeAction); ok {
				segments = append(segments, resolved)
				continue
			}
		}

		switch strategy {
		case StrategyDetail:
			segments = append(segments, "detail")
		case StrategyWarn:
			segments = append(segments, name)
			if inferred, ok := smartName(name, true, false); ok && inferred != name {
				suggestions = append(suggestions,
					fmt.Sprintf("parameter %q could map to %q (set parameter_mapping.%s)", name, inferred, name))
			}
		default:
			segments = append(segments, name)
		}
	}

	if len(segments) == 0 {
		return rootID, suggestions
	}
	return strings.Join(segments, "."), suggestions
}

// smartName resolves a parameter under smart naming. A bare "id" before
// an action word stays verbatim; otherwise it becomes "detail". An
// entity-shaped name like "userId" resolves to the entity only in the
// final position.
func smartName(name string, isLast, beforeAction bool) (string, bool) {
	if beforeAction {
		return name, true
	}
	if name == "id" {
		return "detail", true
	}
	if isLast && len(name) > 2 && strings.HasSuffix(name, "Id") {
		return strings.ToLower(strings.TrimSuffix(name, "Id")), true
	}
	return "", false
}

// PathToScreenTitle derives a human-readable title from the last
// static segment of the path.
func PathToScreenTitle(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "Home"
	}

	segments := splitSegments(trimmed)
	last := ""
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if vueCatchAllRe.MatchString(seg) || isWildcard(seg) {
			return "Not Found"
		}
		if strings.HasPrefix(seg, ":") {
			continue
		}
		last = seg
		break
	}
	if last == "" {
		return "Home"
	}
	return titleCase(last)
}

func splitSegments(trimmed string) []string {
	parts := strings.Split(trimmed, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func paramName(seg string) string {
	name := strings.TrimPrefix(seg, ":")
	name = strings.TrimSuffix(name, "?")
	return name
}

func isWildcard(seg string) bool {
	return strings.HasPrefix(seg, "*") || seg == "**"
}

func wildcardName(seg string) string {
	name := strings.TrimLeft(seg, "*")
	if name == "" {
		return catchAllSegment
	}
	return name
}

func titleCase(segment string) string {
	words := strings.FieldsFunc(segment, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
