package render

import (
	"context"
	"fmt"
	"html/template"

	"github.com/m-zajac/projectinsights/internal/app"
)

// ActivitySource provides monthly opened/closed issue counts.
type ActivitySource interface {
	IssuesActivity(ctx context.Context) (app.IssuesActivity, error)
}

// ActivityChart renders opened vs closed issues chart.
type ActivityChart struct {
	source ActivitySource
	size   Size
}

// NewActivityChart creates new ActivityChart instance.
func NewActivityChart(source ActivitySource, conf Config) *ActivityChart {
	conf = conf.withDefaults()
	return &ActivityChart{
		source: source,
		size:   conf.ChartSize,
	}
}

// Name implements Widget.
func (w *ActivityChart) Name() string { return "issues-activity" }

// ContainerID implements Widget.
func (w *ActivityChart) ContainerID() string { return "issues-activity" }

// Render implements Widget.
func (w *ActivityChart) Render(ctx context.Context) (template.HTML, error) {
	activity, err := w.source.IssuesActivity(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching issues activity: %w", err)
	}

	return ActivityChartModel(activity).HTML(w.size), nil
}

// ActivityChartModel builds the burndown chart. Categories are taken from opened series.
func ActivityChartModel(activity app.IssuesActivity) LineChart {
	categories := make([]string, 0, len(activity.Opened))
	for _, p := range activity.Opened {
		categories = append(categories, p.Period)
	}

	return LineChart{
		Title:      "Issues Burndown",
		Subtitle:   "# of issues opened vs closed, monthly",
		Categories: categories,
		YTitle:     "# Issues",
		YMin:       0,
		Series: []Series{
			{Name: "Opened", Color: colorRed, Points: seriesPoints(activity.Opened)},
			{Name: "Closed", Color: colorGreen, Points: seriesPoints(activity.Closed)},
		},
	}
}

func seriesPoints(points []app.TimeSeriesPoint) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		result = append(result, Point{Y: p.Value})
	}

	return result
}
