package render

import (
	"github.com/m-zajac/projectinsights/internal/metrics"
	"github.com/sirupsen/logrus"
)

// FailureReporter is notified about every widget that couldn't be rendered.
type FailureReporter interface {
	ReportFailure(widget string, err error)
}

// LogReporter logs widget failures and counts them.
type LogReporter struct {
	l logrus.FieldLogger
}

// NewLogReporter creates new LogReporter instance.
func NewLogReporter(l logrus.FieldLogger) *LogReporter {
	return &LogReporter{l: l}
}

// ReportFailure implements FailureReporter.
func (r *LogReporter) ReportFailure(widget string, err error) {
	metrics.WidgetFailures.WithLabelValues(widget).Inc()
	r.l.WithField("widget", widget).WithError(err).Error("couldn't render widget")
}
