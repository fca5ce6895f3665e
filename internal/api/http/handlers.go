package http

import (
	"bytes"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/projectinsights/internal/app"
	"github.com/sirupsen/logrus"
)

const htmlContentType = "text/html; charset=utf-8"

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// NewPageHandler creates handlerfunc rendering whole dashboard page.
// Page with all widgets rendered is stored in archive, if archive is set.
func NewPageHandler(dashboard Dashboard, archive Archive, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		var buf bytes.Buffer
		err := dashboard.RenderPage(r.Context(), &buf)
		partial := app.IsPartialResultError(err)
		if err != nil && !partial {
			l.Errorf("rendering page: %v", err)
			writeError(w, http.StatusInternalServerError, "couldn't render page")
			return
		}

		w.Header().Set("Content-type", htmlContentType)
		if _, err := w.Write(buf.Bytes()); err != nil {
			l.Warnf("writing page: %v", err)
		}

		// Incomplete page would replace the last good one.
		if partial {
			l.Warnf("page not archived: %v", err)
			return
		}
		if archive != nil {
			if err := archive.Save(buf.Bytes()); err != nil {
				l.Errorf("archiving page: %v", err)
			}
		}
	}
}

// NewWidgetHandler creates handlerfunc rendering a single widget.
func NewWidgetHandler(
	getName func(*http.Request) string,
	dashboard Dashboard,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		html, err := dashboard.RenderWidget(r.Context(), getName(r))
		if err != nil {
			switch {
			case app.IsInvalidRequestError(err):
				writeError(w, http.StatusNotFound, err.Error())
			case app.IsRequestError(err):
				writeError(w, http.StatusBadGateway, err.Error())
			default:
				l.Errorf("rendering widget: %v", err)
				writeError(w, http.StatusInternalServerError, "couldn't render widget")
			}
			return
		}

		w.Header().Set("Content-type", htmlContentType)
		_, _ = w.Write([]byte(html))
	}
}

// NewSnapshotHandler creates handlerfunc returning the latest archived page.
func NewSnapshotHandler(archive Archive, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if archive == nil {
			writeError(w, http.StatusNotFound, "snapshots are disabled")
			return
		}

		page, err := archive.Latest()
		if err != nil {
			l.Errorf("reading snapshot: %v", err)
			writeError(w, http.StatusInternalServerError, "couldn't read snapshot")
			return
		}
		if page == nil {
			writeError(w, http.StatusNotFound, "no snapshot")
			return
		}

		w.Header().Set("Content-type", htmlContentType)
		_, _ = w.Write(page)
	}
}
