package render

import (
	"context"
	"html/template"
	"time"
)

// Colors shared by charts and graph.
const (
	colorRed     = "#FF4E50"
	colorGreen   = "#88C425"
	colorDefault = "#7cb5ec"
)

// Widget fetches its data and renders it into its container.
type Widget interface {
	// Name identifies the widget in urls, logs and metrics.
	Name() string
	// ContainerID is id of the page element holding widget's content.
	ContainerID() string
	Render(ctx context.Context) (template.HTML, error)
}

// Config holds settings shared by widgets. It's fixed at startup and passed explicitly.
type Config struct {
	// Title of the dashboard page.
	Title string
	// Repo is the tracked repository, "owner/name".
	Repo string
	// TrackerURL is the issue tracker web root, milestone links point there.
	TrackerURL string
	ChartSize  Size
	GraphSize  Size
	// LayoutSeed seeds initial graph layout. Zero picks a new seed on every render.
	LayoutSeed int64
	// Now returns current time. Defaults to time.Now.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "Insights"
	}
	if c.TrackerURL == "" {
		c.TrackerURL = "https://github.com"
	}
	if c.ChartSize.Width == 0 || c.ChartSize.Height == 0 {
		c.ChartSize = Size{Width: 600, Height: 400}
	}
	if c.GraphSize.Width == 0 || c.GraphSize.Height == 0 {
		c.GraphSize = Size{Width: 960, Height: 600}
	}
	if c.Now == nil {
		c.Now = time.Now
	}

	return c
}
