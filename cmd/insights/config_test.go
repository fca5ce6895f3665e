package main

import (
	"os"
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/projectinsights/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("INSIGHTS_REPO", "owner/project")
	t.Setenv("INSIGHTS_APICLIENTCACHETTL", "5m")
	t.Setenv("INSIGHTS_GRAPHWIDTH", "1200")

	var conf Config
	require.NoError(t, envconfig.Process(envPrefix, &conf))

	assert.Equal(t, "owner/project", conf.Repo)
	assert.Equal(t, 5*time.Minute, conf.APIClientCacheTTL)
	assert.Equal(t, "0.0.0.0:8080", conf.HTTPServerAddress)
	assert.Equal(t, 30*time.Second, conf.ServiceResponseTimeout)
	assert.Equal(t, "info", conf.LogLevel)

	rc := conf.renderConfig()
	assert.Equal(t, "owner/project insights", rc.Title)
	assert.Equal(t, render.Size{Width: 1200, Height: 600}, rc.GraphSize)
	assert.Equal(t, render.Size{Width: 600, Height: 400}, rc.ChartSize)
}

func TestConfigRequiresRepo(t *testing.T) {
	t.Setenv("INSIGHTS_REPO", "restored after test")
	require.NoError(t, os.Unsetenv("INSIGHTS_REPO"))

	var conf Config
	assert.Error(t, envconfig.Process(envPrefix, &conf))
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCommand(nil)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "render"}, names)

	for _, c := range cmd.Commands() {
		if c.Name() == "render" {
			f := c.Flags().Lookup("out")
			require.NotNil(t, f)
			assert.Equal(t, "insights.html", f.DefValue)
		}
	}
}
