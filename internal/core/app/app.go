// Package app orchestrates a scan: collect route sources, extract and
// flatten routes, merge metadata into the screen catalog, analyze the
// navigation graph, and write artifacts.
package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"screenmap/internal/core/config"
	"screenmap/internal/data/history"
	"screenmap/internal/data/openapi"
	"screenmap/internal/shared/util"
)

// parseRate bounds concurrent tree-sitter work so watch mode cannot
// starve the editor the user is typing in.
const (
	parseRate  = 200.0
	parseBurst = 8
)

type App struct {
	Config *config.Config

	History *history.Store
	API     *openapi.Spec

	limiter       *util.Limiter
	metricsServer *http.Server
}

// New builds an App from a validated config. Optional subsystems that
// fail to come up (history store, OpenAPI spec, metrics listener) are
// reported by error; nothing is silently disabled.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		Config:  cfg,
		limiter: util.NewLimiter(parseRate, parseBurst),
	}

	if cfg.DB.Enabled {
		store, err := history.Open(cfg.DB.Path)
		if err != nil {
			return nil, err
		}
		a.History = store
	}

	if cfg.OpenAPI.Source != "" {
		spec, err := openapi.Load(cfg.OpenAPI.Source)
		if err != nil {
			a.close()
			return nil, err
		}
		a.API = spec
	}

	if cfg.Metrics.Enabled {
		a.metricsServer = &http.Server{
			Addr:              cfg.Metrics.Address,
			Handler:           promhttp.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("metrics server stopped", "address", cfg.Metrics.Address, "error", err)
			}
		}()
	}

	return a, nil
}

func (a *App) Close(ctx context.Context) error {
	var firstErr error
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if err := a.close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func (a *App) close() error {
	if a.History != nil {
		return a.History.Close()
	}
	return nil
}
