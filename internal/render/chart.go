package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Point is a single chart value. Name, when set, replaces the value in point's tooltip.
type Point struct {
	Name string
	Y    float64
}

// Series is one line of a chart.
type Series struct {
	Name   string
	Color  string
	Points []Point
}

// LineChart describes a category line chart: one x position per category,
// a linear y axis starting at YMin.
type LineChart struct {
	Title       string
	Subtitle    string
	Categories  []string
	YTitle      string
	YMin        float64
	ValueSuffix string
	Legend      bool
	Series      []Series
}

// Size of a rendering target, in pixels.
type Size struct {
	Width  int
	Height int
}

const (
	chartMarginLeft   = 64
	chartMarginRight  = 24
	chartMarginTop    = 64
	chartMarginBottom = 48
	chartYTicks       = 5
)

// HTML returns the chart as inline svg.
func (c LineChart) HTML(size Size) template.HTML {
	var buf bytes.Buffer
	c.WriteSVG(&buf, size)
	return inlineSVG(buf.String())
}

// inlineSVG drops the xml prolog svgo writes, it's not allowed inside html.
func inlineSVG(doc string) template.HTML {
	if i := strings.Index(doc, "<svg"); i > 0 {
		doc = doc[i:]
	}
	return template.HTML(doc)
}

// WriteSVG draws the chart.
func (c LineChart) WriteSVG(w io.Writer, size Size) {
	canvas := svg.New(w)
	canvas.Start(size.Width, size.Height, `class="chart"`)
	canvas.Rect(0, 0, size.Width, size.Height, "fill:#ffffff")

	canvas.Text(size.Width/2, 26, c.Title, "text-anchor:middle;font-size:18px;fill:#333333")
	if c.Subtitle != "" {
		canvas.Text(size.Width/2, 46, c.Subtitle, "text-anchor:middle;font-size:12px;fill:#666666")
	}

	p := c.plot(size)

	// y axis: grid lines with labels
	for i := 0; i <= p.ticks; i++ {
		v := c.YMin + float64(i)*p.step
		y := p.y(v)
		canvas.Line(p.left, y, p.right, y, "stroke:#e6e6e6;stroke-width:1")
		canvas.Text(p.left-8, y+4, formatValue(v), "text-anchor:end;font-size:11px;fill:#666666")
	}
	if c.YTitle != "" {
		yMid := (p.top + p.bottom) / 2
		canvas.Text(0, 0, c.YTitle,
			fmt.Sprintf(`transform="translate(16,%d) rotate(-90)"`, yMid),
			"text-anchor:middle;font-size:12px;fill:#666666",
		)
	}

	// x axis
	canvas.Line(p.left, p.bottom, p.right, p.bottom, "stroke:#ccd6eb;stroke-width:1")
	for i, cat := range c.Categories {
		canvas.Text(p.x(i), p.bottom+18, cat, "text-anchor:middle;font-size:11px;fill:#666666")
	}

	for _, s := range c.Series {
		// svgo can't draw a polyline without points
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]int, 0, len(s.Points))
		ys := make([]int, 0, len(s.Points))
		for i, pt := range s.Points {
			xs = append(xs, p.x(i))
			ys = append(ys, p.y(pt.Y))
		}
		canvas.Polyline(xs, ys, `class="series"`, fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", s.Color))
		for i, pt := range s.Points {
			canvas.Group(`class="point"`)
			canvas.Title(c.pointLabel(s, pt))
			canvas.Circle(xs[i], ys[i], 4, fmt.Sprintf("fill:%s", s.Color))
			canvas.Gend()
		}
	}

	if c.Legend {
		x := p.left
		for _, s := range c.Series {
			canvas.Rect(x, size.Height-16, 10, 10, fmt.Sprintf("fill:%s", s.Color))
			canvas.Text(x+14, size.Height-7, s.Name, "font-size:11px;fill:#333333")
			x += 24 + 7*len(s.Name)
		}
	}

	canvas.End()
}

func (c LineChart) pointLabel(s Series, p Point) string {
	if p.Name != "" {
		return s.Name + ": " + p.Name
	}
	return s.Name + ": " + formatValue(p.Y) + c.ValueSuffix
}

// plotArea maps category indexes and values to canvas coordinates.
type plotArea struct {
	left, right, top, bottom int
	columns                  int
	ticks                    int
	step                     float64
	yMin                     float64
	yMax                     float64
}

func (c LineChart) plot(size Size) plotArea {
	columns := len(c.Categories)
	yMax := c.YMin
	for _, s := range c.Series {
		if len(s.Points) > columns {
			columns = len(s.Points)
		}
		for _, pt := range s.Points {
			yMax = math.Max(yMax, pt.Y)
		}
	}
	if columns == 0 {
		columns = 1
	}

	step := niceStep((yMax - c.YMin) / chartYTicks)
	ticks := int(math.Ceil((yMax - c.YMin) / step))
	if ticks < 1 {
		ticks = 1
	}

	return plotArea{
		left:    chartMarginLeft,
		right:   size.Width - chartMarginRight,
		top:     chartMarginTop,
		bottom:  size.Height - chartMarginBottom,
		columns: columns,
		ticks:   ticks,
		step:    step,
		yMin:    c.YMin,
		yMax:    c.YMin + float64(ticks)*step,
	}
}

// x returns center of i-th category band.
func (p plotArea) x(i int) int {
	band := float64(p.right-p.left) / float64(p.columns)
	return p.left + int(band*(float64(i)+0.5))
}

func (p plotArea) y(v float64) int {
	ratio := (v - p.yMin) / (p.yMax - p.yMin)
	return p.bottom - int(math.Round(ratio*float64(p.bottom-p.top)))
}

// niceStep rounds raw axis step up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch n := raw / mag; {
	case n <= 1:
		return mag
	case n <= 2:
		return 2 * mag
	case n <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
