package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"screenmap/internal/core/app"
	"screenmap/internal/core/config"
	"screenmap/internal/shared/observability"
	"screenmap/internal/ui/report"
)

var (
	configPath = flag.String("config", "./screenmap.toml", "Path to config file")
	once       = flag.Bool("once", false, "Run single scan and exit")
	impact     = flag.String("impact", "", "Report screens affected by an API identifier")
	validate   = flag.Bool("validate", false, "Fail when the catalog has dangling references")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	os.Exit(run())
}

// run carries the exit code back to main so deferred cleanup (tracing
// flush, history close) is not skipped by os.Exit.
func run() int {
	flag.Parse()

	if *version {
		fmt.Printf("screenmap v%s\n", VERSION)
		return 0
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !flagWasSet("config") && os.IsNotExist(err) {
			slog.Debug("no config file, using defaults", "path", *configPath)
			cfg = config.Default()
		} else {
			slog.Error("failed to load config", "error", err)
			return 1
		}
	}

	// Positional argument overrides the configured scan roots.
	if flag.NArg() > 0 {
		cfg.ScanPaths = flag.Args()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing.OTLPEndpoint)
	if err != nil {
		slog.Error("failed to initialize tracing", "error", err)
		return 1
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Warn("tracing shutdown failed", "error", err)
		}
	}()

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return 1
	}
	defer a.Close(context.Background())

	result, err := a.RunScan(ctx)
	if err != nil {
		slog.Error("scan failed", "error", err)
		return 1
	}
	for _, warning := range result.Warnings {
		slog.Warn(warning)
	}

	if *impact != "" {
		fmt.Print(report.RenderImpact(a.Impact(result.Screens, *impact)))
		return 0
	}

	printSummary(cfg, result)

	if *validate {
		if len(result.Issues) > 0 {
			return 2
		}
		return 0
	}

	if *once {
		if len(result.Cycles.DisallowedCycles) > 0 {
			return 2
		}
		return 0
	}

	slog.Info("watching for changes", "paths", cfg.ScanPaths, "debounce", cfg.Watch.Debounce)
	err = a.WatchAndRescan(ctx, func(result app.Result) {
		printSummary(cfg, result)
	})
	if err != nil && err != context.Canceled {
		slog.Error("watch mode failed", "error", err)
		return 1
	}
	return 0
}

func printSummary(cfg *config.Config, result app.Result) {
	fmt.Print(report.RenderSummary(report.Summary{
		Project:      cfg.DB.ProjectKey,
		Duration:     result.Duration,
		FilesScanned: result.FilesScanned,
		RoutesFound:  result.RoutesFound,
		LinksFound:   result.LinksFound,
		ScreenCount:  len(result.Screens),
		WarningCount: result.WarningCount,
		Issues:       result.Issues,
		Cycles:       result.Cycles,
	}))
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
