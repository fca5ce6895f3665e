package render

import (
	"context"
	"fmt"
	"html/template"
	"math"

	"github.com/m-zajac/projectinsights/internal/app"
	"github.com/m-zajac/projectinsights/internal/timefmt"
)

const secondsPerDay = 24 * 60 * 60

// AvgTimeSource provides monthly average issue resolution time, in seconds.
type AvgTimeSource interface {
	AvgIssueTime(ctx context.Context) ([]app.TimeSeriesPoint, error)
}

// AvgTimeChart renders average issue time chart.
type AvgTimeChart struct {
	source AvgTimeSource
	size   Size
}

// NewAvgTimeChart creates new AvgTimeChart instance.
func NewAvgTimeChart(source AvgTimeSource, conf Config) *AvgTimeChart {
	conf = conf.withDefaults()
	return &AvgTimeChart{
		source: source,
		size:   conf.ChartSize,
	}
}

// Name implements Widget.
func (w *AvgTimeChart) Name() string { return "avg-issue-time" }

// ContainerID implements Widget.
func (w *AvgTimeChart) ContainerID() string { return "avg-issue-time" }

// Render implements Widget.
func (w *AvgTimeChart) Render(ctx context.Context) (template.HTML, error) {
	points, err := w.source.AvgIssueTime(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching avg issue time: %w", err)
	}

	return AvgTimeChartModel(points).HTML(w.size), nil
}

// AvgTimeChartModel plots whole days, rounded up. Points are named with humanized duration.
func AvgTimeChartModel(points []app.TimeSeriesPoint) LineChart {
	categories := make([]string, 0, len(points))
	series := make([]Point, 0, len(points))
	for _, p := range points {
		categories = append(categories, p.Period)
		series = append(series, Point{
			Name: timefmt.Seconds(p.Value),
			Y:    math.Ceil(p.Value / secondsPerDay),
		})
	}

	return LineChart{
		Title:       "Average Issue Time",
		Subtitle:    "From the time it's opened until it's closed",
		Categories:  categories,
		YTitle:      "Days",
		ValueSuffix: " days",
		Series: []Series{
			{Name: "Avg time", Color: colorDefault, Points: series},
		},
	}
}
