package main

import (
	"github.com/m-zajac/projectinsights/internal/api/http"
	"github.com/m-zajac/projectinsights/internal/database"
	"github.com/m-zajac/projectinsights/internal/snapshot"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func serveCommand(conf *Config, l *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over http",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(conf, l)
		},
	}
}

func serve(conf *Config, l *logrus.Logger) error {
	dashboard, err := newDashboard(conf, l)
	if err != nil {
		return err
	}

	var archive http.Archive
	if conf.SnapshotDBPath != "" {
		kvStore, err := database.NewBoltKVStore(
			conf.SnapshotDBPath,
			conf.SnapshotBucketName,
		)
		if err != nil {
			return err
		}
		defer kvStore.Close()

		archive = snapshot.NewArchive(
			kvStore,
			conf.SnapshotRetention,
			l.WithField("component", "snapshotArchive"),
		)
	}

	mux := http.NewMux(dashboard, archive, conf.ServiceResponseTimeout, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)
	server.Run()

	return nil
}
