// Package metrics holds prometheus collectors of the dashboard renderer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// WidgetFailures counts widgets left empty because their data couldn't be fetched.
	WidgetFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "insights_widget_failures_total",
		Help: "Number of widget renders that failed",
	}, []string{"widget"})

	// WidgetRenderSeconds observes fetch and render time per widget.
	WidgetRenderSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "insights_widget_render_seconds",
		Help:    "Time spent fetching data and rendering a widget",
		Buckets: prometheus.DefBuckets,
	}, []string{"widget"})

	// PagesRendered counts full dashboard pages served.
	PagesRendered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insights_pages_rendered_total",
		Help: "Number of dashboard pages rendered",
	})

	// SnapshotsStored counts pages written to the snapshot archive.
	SnapshotsStored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insights_snapshots_stored_total",
		Help: "Number of rendered pages stored in the snapshot archive",
	})
)

func init() {
	prometheus.MustRegister(
		WidgetFailures, WidgetRenderSeconds,
		PagesRendered, SnapshotsStored,
	)
}
