package main

import (
	"fmt"
	netHttp "net/http"

	"github.com/m-zajac/projectinsights/internal/adapter/insights"
	"github.com/m-zajac/projectinsights/internal/api/http/limiter"
	"github.com/m-zajac/projectinsights/internal/app"
	"github.com/m-zajac/projectinsights/internal/render"
	"github.com/sirupsen/logrus"
)

func newInsightsClient(conf *Config) (app.InsightsClient, error) {
	httpClient := &netHttp.Client{
		Timeout: conf.APIClientTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.APIRateLimit,
		conf.APIRateBurst,
	)

	client := insights.NewClient(
		limitedHTTPClient,
		conf.APIBaseURL,
		conf.APIHost,
		conf.Repo,
		conf.APIToken,
	)
	if conf.APIClientCacheSize <= 0 {
		return client, nil
	}

	cachedClient, err := insights.NewCachedClient(
		client,
		conf.APIClientCacheSize,
		conf.APIClientCacheTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("creating api client cache: %w", err)
	}

	return cachedClient, nil
}

func newDashboard(conf *Config, l logrus.FieldLogger) (*render.Dashboard, error) {
	client, err := newInsightsClient(conf)
	if err != nil {
		return nil, err
	}

	templates, err := render.NewTemplates()
	if err != nil {
		return nil, err
	}

	renderConf := conf.renderConfig()

	return render.NewDashboard(
		render.Widgets(client, templates, renderConf),
		templates,
		renderConf,
		render.NewLogReporter(l.WithField("component", "failureReporter")),
		l,
	), nil
}
