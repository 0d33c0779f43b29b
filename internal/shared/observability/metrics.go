package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ExtractionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "screenmap_extraction_seconds",
		Help:    "Time spent extracting routes from a source file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"router"})

	RoutesExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "screenmap_routes_extracted_total",
		Help: "Total number of routes extracted, by routing convention.",
	}, []string{"router"})

	ExtractionWarnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "screenmap_extraction_warnings_total",
		Help: "Total number of extraction warnings, by routing convention.",
	}, []string{"router"})

	CatalogScreens = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "screenmap_catalog_screens_total",
		Help: "Number of screens in the current catalog.",
	})

	NavigationEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "screenmap_navigation_edges_total",
		Help: "Number of next edges in the current navigation graph.",
	})

	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "screenmap_analysis_seconds",
		Help:    "Time spent on catalog analysis tasks.",
		Buckets: prometheus.DefBuckets,
	}, []string{"task"})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "screenmap_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})
)
