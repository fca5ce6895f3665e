package main

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const envPrefix = "INSIGHTS"

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	if err := newRootCommand(l).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(l *logrus.Logger) *cobra.Command {
	var conf Config

	cmd := &cobra.Command{
		Use:          "insights",
		Short:        "Project insights dashboard",
		Long:         `insights renders a dashboard of issue analytics served by the analytics api.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := envconfig.Process(envPrefix, &conf); err != nil {
				return err
			}
			level, err := logrus.ParseLevel(conf.LogLevel)
			if err != nil {
				return err
			}
			l.SetLevel(level)

			return nil
		},
	}
	cmd.AddCommand(
		serveCommand(&conf, l),
		renderCommand(&conf, l),
	)

	return cmd
}
