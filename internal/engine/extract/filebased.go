package extract

import (
	"path/filepath"
	"strings"
)

// routeFileExtensions are the extensions file-based conventions route on.
var routeFileExtensions = map[string]bool{
	".js":     true,
	".jsx":    true,
	".ts":     true,
	".tsx":    true,
	".vue":    true,
	".svelte": true,
}

// IsRouteSource reports whether the file type can declare routes or
// navigation links.
func IsRouteSource(path string) bool {
	return routeFileExtensions[strings.ToLower(filepath.Ext(path))]
}

// RouteFromFile derives the single route a file-based convention
// (Next/Nuxt-style pages directories) assigns to one file. No array
// parsing is involved; the path is a pure function of the file's
// location under the pages root. Returns false for files that do not
// produce a route (layouts, api handlers, private modules).
func RouteFromFile(filePath, pagesRoot string) (ParsedRoute, bool) {
	rel, err := filepath.Rel(pagesRoot, filePath)
	if err != nil {
		return ParsedRoute{}, false
	}
	rel = filepath.ToSlash(rel)
	if strings.HasPrefix(rel, "..") {
		return ParsedRoute{}, false
	}

	ext := strings.ToLower(filepath.Ext(rel))
	if !routeFileExtensions[ext] {
		return ParsedRoute{}, false
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))

	segments := strings.Split(rel, "/")
	out := make([]string, 0, len(segments))
	for i, seg := range segments {
		last := i == len(segments)-1

		switch {
		case seg == "" || strings.HasPrefix(seg, "_") || strings.HasPrefix(seg, "."):
			// _app, _document, dotfiles: framework plumbing, not screens.
			return ParsedRoute{}, false
		case seg == "api":
			return ParsedRoute{}, false
		case strings.HasPrefix(seg, "(") && strings.HasSuffix(seg, ")"):
			// Route groups organize files without contributing a segment.
			continue
		case last && (seg == "index" || seg == "page"):
			// index.tsx / page.tsx resolve to the directory path.
			continue
		case last && (seg == "layout" || seg == "loading" || seg == "error" || seg == "route" || seg == "template"):
			return ParsedRoute{}, false
		default:
			out = append(out, fileSegmentToRouteSegment(seg))
		}
	}

	route := ParsedRoute{
		Path:      "/" + strings.Join(out, "/"),
		Component: filepath.ToSlash(filePath),
	}
	return route, true
}

func fileSegmentToRouteSegment(seg string) string {
	// [[...slug]] optional catch-all, [...slug] catch-all, [id] parameter.
	if strings.HasPrefix(seg, "[[...") && strings.HasSuffix(seg, "]]") {
		return "*" + seg[5:len(seg)-2]
	}
	if strings.HasPrefix(seg, "[...") && strings.HasSuffix(seg, "]") {
		return "*" + seg[4:len(seg)-1]
	}
	if strings.HasPrefix(seg, "[") && strings.HasSuffix(seg, "]") {
		return ":" + seg[1:len(seg)-1]
	}
	return seg
}
