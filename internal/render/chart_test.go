package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-zajac/projectinsights/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityChartModel(t *testing.T) {
	t.Parallel()

	chart := ActivityChartModel(app.IssuesActivity{
		Opened: []app.TimeSeriesPoint{{Period: "Jan", Value: 5}},
		Closed: []app.TimeSeriesPoint{{Period: "Jan", Value: 3}},
	})

	assert.Equal(t, []string{"Jan"}, chart.Categories)
	require.Len(t, chart.Series, 2)
	assert.Equal(t, "Opened", chart.Series[0].Name)
	assert.Equal(t, colorRed, chart.Series[0].Color)
	assert.Equal(t, []Point{{Y: 5}}, chart.Series[0].Points)
	assert.Equal(t, "Closed", chart.Series[1].Name)
	assert.Equal(t, colorGreen, chart.Series[1].Color)
	assert.Equal(t, []Point{{Y: 3}}, chart.Series[1].Points)
	assert.Zero(t, chart.YMin)
	assert.False(t, chart.Legend)
}

func TestActivityChartModelKeepsSeriesLengthsAndOrder(t *testing.T) {
	t.Parallel()

	opened := []app.TimeSeriesPoint{
		{Period: "Mar", Value: 1},
		{Period: "Jan", Value: 2},
		{Period: "Feb", Value: 3},
	}
	closed := []app.TimeSeriesPoint{
		{Period: "Mar", Value: 7},
		{Period: "Jan", Value: 8},
	}

	chart := ActivityChartModel(app.IssuesActivity{Opened: opened, Closed: closed})

	assert.Equal(t, []string{"Mar", "Jan", "Feb"}, chart.Categories)
	assert.Equal(t, []Point{{Y: 1}, {Y: 2}, {Y: 3}}, chart.Series[0].Points)
	assert.Equal(t, []Point{{Y: 7}, {Y: 8}}, chart.Series[1].Points)
}

func TestLineChartWriteSVG(t *testing.T) {
	t.Parallel()

	chart := ActivityChartModel(app.IssuesActivity{
		Opened: []app.TimeSeriesPoint{{Period: "Jan", Value: 5}, {Period: "Feb", Value: 1}},
		Closed: []app.TimeSeriesPoint{{Period: "Jan", Value: 3}, {Period: "Feb", Value: 4}},
	})

	var buf bytes.Buffer
	chart.WriteSVG(&buf, Size{Width: 600, Height: 400})
	out := buf.String()

	assert.Equal(t, 2, strings.Count(out, `class="series"`))
	assert.Equal(t, 4, strings.Count(out, `class="point"`))
	assert.Contains(t, out, "Issues Burndown")
	assert.Contains(t, out, "Opened: 5")
	assert.Contains(t, out, "Closed: 4")
	assert.Contains(t, out, ">Jan<")
	assert.Contains(t, out, ">Feb<")
}

func TestLineChartHTMLIsInline(t *testing.T) {
	t.Parallel()

	html := string(LineChart{Title: "empty"}.HTML(Size{Width: 100, Height: 100}))
	assert.True(t, strings.HasPrefix(html, "<svg"))
	assert.NotContains(t, html, "<?xml")
}

func TestNiceStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  float64
		want float64
	}{
		{raw: 0, want: 1},
		{raw: -3, want: 1},
		{raw: 0.3, want: 0.5},
		{raw: 1, want: 1},
		{raw: 1.2, want: 2},
		{raw: 3, want: 5},
		{raw: 7, want: 10},
		{raw: 42, want: 50},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, niceStep(tt.raw), 1e-9, "raw %v", tt.raw)
	}
}

func TestLineChartWriteSVGEmptySeries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		chart LineChart
	}{
		{
			name:  "activity",
			chart: ActivityChartModel(app.IssuesActivity{Opened: []app.TimeSeriesPoint{}, Closed: []app.TimeSeriesPoint{}}),
		},
		{
			name:  "avg time",
			chart: AvgTimeChartModel([]app.TimeSeriesPoint{}),
		},
		{
			name: "one series empty",
			chart: ActivityChartModel(app.IssuesActivity{
				Opened: []app.TimeSeriesPoint{{Period: "Jan", Value: 2}},
			}),
		},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		require.NotPanics(t, func() {
			tt.chart.WriteSVG(&buf, Size{Width: 600, Height: 400})
		}, tt.name)

		out := buf.String()
		assert.Contains(t, out, tt.chart.Title, tt.name)
		assert.Contains(t, out, "</svg>", tt.name)
	}
}
