package app

import (
	"context"
	"log/slog"

	"screenmap/internal/core/watcher"
)

// WatchAndRescan blocks until ctx is cancelled, re-running the full
// scan whenever route sources change. Every rescan result is handed to
// onResult; a failed rescan is logged and watching continues.
func (a *App) WatchAndRescan(ctx context.Context, onResult func(Result)) error {
	w, err := watcher.NewWatcher(
		a.Config.Watch.Debounce,
		a.Config.Exclude.Dirs,
		a.Config.Exclude.Files,
		func(paths []string) {
			slog.Debug("route sources changed", "count", len(paths))
			result, err := a.RunScan(ctx)
			if err != nil {
				slog.Error("rescan failed", "error", err)
				return
			}
			if onResult != nil {
				onResult(result)
			}
		},
	)
	if err != nil {
		return err
	}
	defer w.Close()

	roots := normalizeScanPaths(append(append([]string{}, a.Config.ScanPaths...), a.Config.PagesDirs...))
	if err := w.Watch(roots); err != nil {
		return err
	}

	<-ctx.Done()
	return ctx.Err()
}
