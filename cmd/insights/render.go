package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/m-zajac/projectinsights/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func renderCommand(conf *Config, l *logrus.Logger) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the dashboard page once",
		Long:  `render fetches all widgets once and writes the page to a file, or to stdout when --out is "-".`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderPage(cmd.Context(), conf, l, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "insights.html", `output file, "-" for stdout`)

	return cmd
}

// PageRenderer writes the dashboard page.
type PageRenderer interface {
	RenderPage(ctx context.Context, w io.Writer) error
}

func renderPage(ctx context.Context, conf *Config, l logrus.FieldLogger, out string) error {
	dashboard, err := newDashboard(conf, l)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, conf.ServiceResponseTimeout)
	defer cancel()

	if out == "-" {
		return writePage(ctx, dashboard, os.Stdout, l)
	}
	if err := writePageFile(ctx, dashboard, out, l); err != nil {
		return err
	}
	l.Infof("page written to %s", out)

	return nil
}

// writePageFile renders page into path. The file is removed if rendering or closing fails.
func writePageFile(ctx context.Context, r PageRenderer, path string, l logrus.FieldLogger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return writePage(ctx, r, f, l)
}

// writePage renders page to w. Page with failed widgets is still written, failures are
// reported by the dashboard.
func writePage(ctx context.Context, r PageRenderer, w io.Writer, l logrus.FieldLogger) error {
	err := r.RenderPage(ctx, w)
	if app.IsPartialResultError(err) {
		l.Warnf("page rendered partially: %v", err)
		return nil
	}

	return err
}
