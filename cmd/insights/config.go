package main

import (
	"time"

	"github.com/m-zajac/projectinsights/internal/render"
)

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// ServiceResponseTimeout - timeout for rendering a page or a widget
	ServiceResponseTimeout time.Duration `default:"30s"`

	// APIBaseURL - address of the analytics api with protocol
	APIBaseURL string `default:"http://localhost:5000"`

	// APIHost - address serving repository milestones, "<APIHost>/<Repo>/milestones"
	APIHost string `default:"https://api.github.com/repos"`

	// Repo - tracked repository, "owner/name"
	Repo string `required:"true"`

	// TrackerURL - issue tracker web root, milestone links point there
	TrackerURL string `default:"https://github.com"`

	// APIToken - auth token for the apis (optional)
	APIToken string `default:""`

	// APIRateLimit - max frequency for api calls, 0 disables limiting
	APIRateLimit float64 `default:"10"`

	// APIRateBurst - max number of api calls made back to back
	APIRateBurst int `default:"6"`

	// APIClientTimeout - timeout for a single api call
	APIClientTimeout time.Duration `default:"30s"`

	// APIClientCacheSize - maximum number of elements in cache for each api client method. 0 disables cache
	APIClientCacheSize int `default:"16"`

	// APIClientCacheTTL - maximum lifetime for api client cache entries
	APIClientCacheTTL time.Duration `default:"1m"`

	// ChartWidth, ChartHeight - size of line charts
	ChartWidth  int `default:"600"`
	ChartHeight int `default:"400"`

	// GraphWidth, GraphHeight - size of involvement graph
	GraphWidth  int `default:"960"`
	GraphHeight int `default:"600"`

	// LayoutSeed - seed of involvement graph layout, 0 gives a different layout on every render
	LayoutSeed int64 `default:"0"`

	// SnapshotDBPath - filepath for bolt db with rendered pages. If empty, snapshots are disabled
	SnapshotDBPath string `default:"./insights.data"`

	// SnapshotBucketName - bolt db bucket name
	SnapshotBucketName string `default:"snapshots"`

	// SnapshotRetention - number of rendered pages kept besides the latest one
	SnapshotRetention int `default:"24"`

	// LogLevel - logrus level name
	LogLevel string `default:"info"`
}

func (c Config) renderConfig() render.Config {
	return render.Config{
		Title:      c.Repo + " insights",
		Repo:       c.Repo,
		TrackerURL: c.TrackerURL,
		ChartSize:  render.Size{Width: c.ChartWidth, Height: c.ChartHeight},
		GraphSize:  render.Size{Width: c.GraphWidth, Height: c.GraphHeight},
		LayoutSeed: c.LayoutSeed,
	}
}
