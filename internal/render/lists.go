package render

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/m-zajac/projectinsights/internal/app"
	"github.com/m-zajac/projectinsights/internal/timefmt"
)

// maxListedIssues is the number of issues the api returns at most for a list.
const maxListedIssues = 20

// IssuesFetcher fetches a bounded list of issues.
type IssuesFetcher func(ctx context.Context) ([]app.IssueSummary, error)

// IssuesList renders a titled list of issues.
type IssuesList struct {
	name      string
	title     string
	subtitle  string
	fetch     IssuesFetcher
	templates *Templates
	now       func() time.Time
}

// IssueItem is a single issues list entry.
type IssueItem struct {
	Number   int
	Title    string
	URL      string
	Comments int
	Age      string
}

// IssuesListData is bound to the issues list template.
type IssuesListData struct {
	Title    string
	Subtitle string
	Issues   []IssueItem
}

// NewUntouchedIssuesList lists issues with no activity since they were created.
func NewUntouchedIssuesList(client app.InsightsClient, templates *Templates, conf Config) *IssuesList {
	conf = conf.withDefaults()
	return &IssuesList{
		name:      "untouched-issues",
		title:     "Untouched Issues",
		subtitle:  "(max. 20 results)",
		fetch:     client.UntouchedIssues,
		templates: templates,
		now:       conf.Now,
	}
}

// NewInactiveIssuesList lists issues with no activity for 2 weeks.
func NewInactiveIssuesList(client app.InsightsClient, templates *Templates, conf Config) *IssuesList {
	conf = conf.withDefaults()
	return &IssuesList{
		name:      "inactive-issues",
		title:     "Inactive Issues (2 weeks)",
		subtitle:  "(max. 20 results)",
		fetch:     client.InactiveIssues,
		templates: templates,
		now:       conf.Now,
	}
}

// Name implements Widget.
func (w *IssuesList) Name() string { return w.name }

// ContainerID implements Widget.
func (w *IssuesList) ContainerID() string { return w.name }

// Render implements Widget.
func (w *IssuesList) Render(ctx context.Context) (template.HTML, error) {
	issues, err := w.fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", w.name, err)
	}

	return w.templates.Render(tmplIssuesList, w.Data(issues))
}

// Data builds template data for issues.
func (w *IssuesList) Data(issues []app.IssueSummary) IssuesListData {
	if len(issues) > maxListedIssues {
		issues = issues[:maxListedIssues]
	}

	now := w.now()
	items := make([]IssueItem, 0, len(issues))
	for _, issue := range issues {
		item := IssueItem{
			Number:   issue.Number,
			Title:    issue.Title,
			URL:      issue.URL,
			Comments: issue.Comments,
		}
		if !issue.CreatedAt.IsZero() {
			item.Age = timefmt.Between(issue.CreatedAt, now)
		}
		items = append(items, item)
	}

	return IssuesListData{
		Title:    w.title,
		Subtitle: w.subtitle,
		Issues:   items,
	}
}
