package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

// Names of templates in the table.
const (
	tmplPage         = "page"
	tmplIssuesList   = "issues-list"
	tmplMilestone    = "milestone"
	tmplNoMilestones = "no-milestones"
	tmplInvolvement  = "involvement"
	tmplIssueTip     = "tooltip-issue"
	tmplUserTip      = "tooltip-user"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed assets/graph.js
	graphScript string
)

// Templates is the table of compiled markup fragments.
// It's built once and shared read-only by all widgets.
type Templates struct {
	set *template.Template
}

// NewTemplates compiles all embedded templates.
func NewTemplates() (*Templates, error) {
	set, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	for _, name := range []string{
		tmplPage, tmplIssuesList, tmplMilestone, tmplNoMilestones,
		tmplInvolvement, tmplIssueTip, tmplUserTip,
	} {
		if set.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q is not defined", name)
		}
	}

	return &Templates{set: set}, nil
}

// Render executes template name with data and returns produced markup.
func (t *Templates) Render(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.set.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return template.HTML(buf.String()), nil
}

// PageData is bound to the page template.
type PageData struct {
	Title      string
	RenderedAt string
	// Widgets maps container id to its content.
	Widgets map[string]template.HTML
}

// WritePage renders whole dashboard page to w.
func (t *Templates) WritePage(w io.Writer, data PageData) error {
	err := t.set.ExecuteTemplate(w, tmplPage, struct {
		PageData
		Script template.JS
	}{
		PageData: data,
		Script:   template.JS(graphScript),
	})
	if err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}

	return nil
}
