package http

import (
	"context"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination mock/dashboard.go -package mock github.com/m-zajac/projectinsights/internal/api/http Dashboard

// Dashboard renders the insights page and its widgets.
type Dashboard interface {
	RenderPage(ctx context.Context, w io.Writer) error
	RenderWidget(ctx context.Context, name string) (template.HTML, error)
}

// Archive keeps rendered pages.
type Archive interface {
	Save(page []byte) error
	Latest() ([]byte, error)
}

// NewMux creates router for app's http server. Archive is optional.
func NewMux(dashboard Dashboard, archive Archive, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)
	loggingMiddleware := NewLoggingMiddleware(l)

	widgetsPath := "/widgets/"
	widgetHandler := NewWidgetHandler(
		func(r *http.Request) string {
			return strings.TrimPrefix(r.URL.Path, widgetsPath)
		},
		dashboard,
		l,
	)

	m := http.NewServeMux()
	m.HandleFunc("/", loggingMiddleware(timeoutMiddleware(NewPageHandler(dashboard, archive, l))))
	m.HandleFunc(widgetsPath, loggingMiddleware(timeoutMiddleware(widgetHandler)))
	m.HandleFunc("/snapshot/latest", loggingMiddleware(NewSnapshotHandler(archive, l)))
	m.Handle("/metrics", promhttp.Handler())

	return m
}
