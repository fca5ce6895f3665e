package render

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/m-zajac/projectinsights/internal/app"
	"github.com/m-zajac/projectinsights/internal/timefmt"
)

// MilestonesSource provides milestones of the tracked repository.
type MilestonesSource interface {
	Milestones(ctx context.Context) ([]app.Milestone, error)
}

// Milestones renders a progress widget per milestone.
type Milestones struct {
	source     MilestonesSource
	templates  *Templates
	repo       string
	trackerURL string
	now        func() time.Time
}

// MilestoneView is bound to the milestone template.
type MilestoneView struct {
	Title    string
	URL      string
	Due      string
	Opened   int
	Closed   int
	Progress int
	Delay    bool
}

// NewMilestones creates new Milestones instance.
func NewMilestones(source MilestonesSource, templates *Templates, conf Config) *Milestones {
	conf = conf.withDefaults()
	return &Milestones{
		source:     source,
		templates:  templates,
		repo:       strings.Trim(conf.Repo, "/"),
		trackerURL: strings.TrimRight(conf.TrackerURL, "/"),
		now:        conf.Now,
	}
}

// Name implements Widget.
func (w *Milestones) Name() string { return "milestones" }

// ContainerID implements Widget.
func (w *Milestones) ContainerID() string { return "milestones" }

// Render implements Widget. Milestones are kept in the order they were returned.
func (w *Milestones) Render(ctx context.Context) (template.HTML, error) {
	milestones, err := w.source.Milestones(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching milestones: %w", err)
	}
	if len(milestones) == 0 {
		return w.templates.Render(tmplNoMilestones, nil)
	}

	var b strings.Builder
	for _, m := range w.Views(milestones) {
		html, err := w.templates.Render(tmplMilestone, m)
		if err != nil {
			return "", err
		}
		b.WriteString(string(html))
		b.WriteByte('\n')
	}

	return template.HTML(b.String()), nil
}

// Views derives presentation fields of milestones.
func (w *Milestones) Views(milestones []app.Milestone) []MilestoneView {
	now := w.now()
	views := make([]MilestoneView, 0, len(milestones))
	for _, m := range milestones {
		v := MilestoneView{
			Title:    m.Title,
			URL:      w.issuesURL(m.Number),
			Opened:   m.OpenIssues,
			Closed:   m.ClosedIssues,
			Progress: completion(m.ClosedIssues, m.OpenIssues),
		}
		if m.DueOn != nil {
			v.Due = timefmt.Relative(*m.DueOn, now)
			v.Delay = !m.DueOn.After(now)
		}
		views = append(views, v)
	}

	return views
}

// issuesURL links to open issues of the milestone.
func (w *Milestones) issuesURL(number int) string {
	return fmt.Sprintf("%s/%s/issues?state=open&milestone=%d", w.trackerURL, w.repo, number)
}

// completion returns percent of closed issues, rounded down. Milestone without issues is 0% done.
func completion(closed, open int) int {
	total := closed + open
	if total <= 0 {
		return 0
	}

	return closed * 100 / total
}
