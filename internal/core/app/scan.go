package app

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"screenmap/internal/engine/extract"
	"screenmap/internal/shared/util"
)

// ScanDirectories walks the configured roots and returns every route
// source file not excluded by the dir/file glob patterns. Files inside
// a pages_dirs root are skipped here; collectPageFiles owns those.
func (a *App) ScanDirectories(paths []string) ([]string, error) {
	dirGlobs, fileGlobs, err := compileExcludes(a.Config.Exclude.Dirs, a.Config.Exclude.Files)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			base := filepath.Base(path)
			if d.IsDir() {
				for _, g := range dirGlobs {
					if g.Match(base) {
						return filepath.SkipDir
					}
				}
				return nil
			}

			if !extract.IsRouteSource(path) {
				return nil
			}
			if a.insidePagesDir(path) {
				return nil
			}
			for _, g := range fileGlobs {
				if g.Match(base) {
					return nil
				}
			}

			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// collectPageFiles walks the file-based routing roots and pairs each
// file with its root, so RouteFromFile can derive the route relative to
// the right directory.
func (a *App) collectPageFiles() ([]pageFile, error) {
	dirGlobs, fileGlobs, err := compileExcludes(a.Config.Exclude.Dirs, a.Config.Exclude.Files)
	if err != nil {
		return nil, err
	}

	var files []pageFile
	for _, root := range a.Config.PagesDirs {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			base := filepath.Base(path)
			if d.IsDir() {
				for _, g := range dirGlobs {
					if g.Match(base) {
						return filepath.SkipDir
					}
				}
				return nil
			}

			for _, g := range fileGlobs {
				if g.Match(base) {
					return nil
				}
			}

			files = append(files, pageFile{Path: path, Root: root})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

type pageFile struct {
	Path string
	Root string
}

func (a *App) insidePagesDir(path string) bool {
	clean := filepath.ToSlash(filepath.Clean(path))
	for _, root := range a.Config.PagesDirs {
		cleanRoot := filepath.ToSlash(filepath.Clean(root))
		if util.HasPathPrefix(clean, cleanRoot) {
			return true
		}
	}
	return false
}

func compileExcludes(excludeDirs, excludeFiles []string) ([]glob.Glob, []glob.Glob, error) {
	dirGlobs := make([]glob.Glob, 0, len(excludeDirs))
	for _, p := range excludeDirs {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid exclude dir pattern %q: %w", p, err)
		}
		dirGlobs = append(dirGlobs, g)
	}

	fileGlobs := make([]glob.Glob, 0, len(excludeFiles))
	for _, p := range excludeFiles {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid exclude file pattern %q: %w", p, err)
		}
		fileGlobs = append(fileGlobs, g)
	}

	return dirGlobs, fileGlobs, nil
}

func normalizeScanPaths(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		clean := filepath.Clean(strings.TrimSpace(p))
		if clean == "" || seen[clean] {
			continue
		}
		seen[clean] = true
		out = append(out, clean)
	}
	return out
}
