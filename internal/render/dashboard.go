package render

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/m-zajac/projectinsights/internal/app"
	"github.com/m-zajac/projectinsights/internal/metrics"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Result of a single widget render. HTML is empty when Err is set.
type Result struct {
	Widget      string
	ContainerID string
	HTML        template.HTML
	Err         error
}

// Dashboard renders all widgets, independently of each other.
type Dashboard struct {
	widgets   []Widget
	templates *Templates
	reporter  FailureReporter
	title     string
	now       func() time.Time
	l         logrus.FieldLogger
}

// Widgets returns all dashboard widgets backed by client.
func Widgets(client app.InsightsClient, templates *Templates, conf Config) []Widget {
	return []Widget{
		NewActivityChart(client, conf),
		NewUntouchedIssuesList(client, templates, conf),
		NewInactiveIssuesList(client, templates, conf),
		NewAvgTimeChart(client, conf),
		NewInvolvement(client, templates, conf),
		NewMilestones(client, templates, conf),
	}
}

// NewDashboard creates new Dashboard instance.
func NewDashboard(
	widgets []Widget,
	templates *Templates,
	conf Config,
	reporter FailureReporter,
	l logrus.FieldLogger,
) *Dashboard {
	conf = conf.withDefaults()
	return &Dashboard{
		widgets:   widgets,
		templates: templates,
		reporter:  reporter,
		title:     conf.Title,
		now:       conf.Now,
		l:         l.WithField("component", "dashboard"),
	}
}

// RenderWidgets renders every widget exactly once, concurrently. A failing widget is reported
// and doesn't affect the others. Results are in widgets order.
func (d *Dashboard) RenderWidgets(ctx context.Context) []Result {
	results := make([]Result, len(d.widgets))

	var g errgroup.Group
	for i, w := range d.widgets {
		i, w := i, w
		g.Go(func() error {
			results[i] = d.render(ctx, w)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// RenderWidget renders widget by its name.
func (d *Dashboard) RenderWidget(ctx context.Context, name string) (template.HTML, error) {
	for _, w := range d.widgets {
		if w.Name() == name {
			r := d.render(ctx, w)
			return r.HTML, r.Err
		}
	}

	return "", app.InvalidRequestError(fmt.Sprintf("unknown widget %q", name))
}

// RenderPage writes the whole dashboard page. Failed widgets leave their containers empty;
// if any widget failed, the page is still written and app.PartialResultError is returned.
func (d *Dashboard) RenderPage(ctx context.Context, w io.Writer) error {
	results := d.RenderWidgets(ctx)

	data := PageData{
		Title:      d.title,
		RenderedAt: d.now().Format(time.RFC1123),
		Widgets:    make(map[string]template.HTML, len(results)),
	}
	var failed []string
	for _, r := range results {
		data.Widgets[r.ContainerID] = r.HTML
		if r.Err != nil {
			failed = append(failed, r.Widget)
		}
	}

	if err := d.templates.WritePage(w, data); err != nil {
		return err
	}
	metrics.PagesRendered.Inc()

	if len(failed) > 0 {
		return app.PartialResultError(fmt.Sprintf("widgets not rendered: %s", strings.Join(failed, ", ")))
	}

	return nil
}

func (d *Dashboard) render(ctx context.Context, w Widget) (result Result) {
	result = Result{
		Widget:      w.Name(),
		ContainerID: w.ContainerID(),
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result.HTML = ""
			result.Err = fmt.Errorf("widget panicked: %v", r)
		}
		metrics.WidgetRenderSeconds.WithLabelValues(result.Widget).Observe(time.Since(start).Seconds())
		if result.Err != nil {
			d.reporter.ReportFailure(result.Widget, result.Err)
			return
		}
		d.l.WithField("widget", result.Widget).Debug("widget rendered")
	}()

	html, err := w.Render(ctx)
	if err != nil {
		result.Err = err
		return result
	}
	result.HTML = html

	return result
}
