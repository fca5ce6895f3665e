package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"math"
	"math/rand"
	"strconv"
	"time"

	svg "github.com/ajstarks/svgo"
	"github.com/m-zajac/projectinsights/internal/app"
	"github.com/m-zajac/projectinsights/internal/force"
	"github.com/m-zajac/projectinsights/internal/timefmt"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	issueRadius = 25
	// nodeMargin keeps whole nodes inside the viewport.
	nodeMargin = issueRadius + 5

	involvementCharge       = -350
	involvementLinkDistance = 80
	involvementGravity      = 0.05
)

// NodeKind tells what a graph node stands for.
type NodeKind int

// Node kinds.
const (
	UserNode NodeKind = iota
	IssueNode
)

func (k NodeKind) String() string {
	switch k {
	case UserNode:
		return "user"
	case IssueNode:
		return "issue"
	default:
		return "unknown"
	}
}

// GraphNode is a user or an issue. Only the payload matching Kind is set.
type GraphNode struct {
	ID    int64
	Kind  NodeKind
	User  app.User
	Issue app.IssueSummary
}

// Radius of node's circle. Users are drawn at two thirds of the issue size.
func (n GraphNode) Radius() float64 {
	if n.Kind == IssueNode {
		return issueRadius
	}
	return issueRadius / 1.5
}

// Label is a short text drawn next to the node.
func (n GraphNode) Label() string {
	if n.Kind == IssueNode {
		return "#" + strconv.Itoa(n.Issue.Number)
	}
	return n.User.Login
}

func (n GraphNode) color() string {
	if n.Kind == IssueNode {
		return colorRed
	}
	return colorGreen
}

// GraphLink connects a user node (source) with an issue node (target).
type GraphLink struct {
	Source int64
	Target int64
}

// InvolvementGraph is a bipartite users-issues graph. Users are not deduplicated: a user has
// a separate node for every issue they're involved in.
type InvolvementGraph struct {
	Nodes []GraphNode
	Links []GraphLink
}

// BuildInvolvementGraph creates graph from involvements, in their order.
// Node id equals its index in Nodes.
func BuildInvolvementGraph(involvements []app.Involvement) InvolvementGraph {
	var g InvolvementGraph
	for _, inv := range involvements {
		first := int64(len(g.Nodes))
		issueID := first + int64(len(inv.Users))
		for i, u := range inv.Users {
			g.Nodes = append(g.Nodes, GraphNode{
				ID:   first + int64(i),
				Kind: UserNode,
				User: u,
			})
			g.Links = append(g.Links, GraphLink{
				Source: first + int64(i),
				Target: issueID,
			})
		}
		g.Nodes = append(g.Nodes, GraphNode{
			ID:    issueID,
			Kind:  IssueNode,
			Issue: inv.Issue,
		})
	}

	return g
}

// Directed returns graph topology, links directed from users to issues.
func (g InvolvementGraph) Directed() *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for _, n := range g.Nodes {
		dg.AddNode(simple.Node(n.ID))
	}
	for _, l := range g.Links {
		dg.SetEdge(dg.NewEdge(simple.Node(l.Source), simple.Node(l.Target)))
	}

	return dg
}

// Layout is a node id to position mapping.
type Layout map[int64]r2.Vec

// Simulate lays out the graph in a viewport of given size, until the simulation settles.
// Positions are kept within viewport bounds on every tick.
func (g InvolvementGraph) Simulate(size Size, rnd *rand.Rand) Layout {
	opts := force.DefaultOptions(float64(size.Width), float64(size.Height))
	opts.Charge = involvementCharge
	opts.LinkDistance = involvementLinkDistance
	opts.Gravity = involvementGravity
	opts.Rand = rnd

	sim := force.New(g.Directed(), opts)
	sim.OnTick(func(s *force.Simulation) {
		for _, id := range s.Nodes() {
			p, _ := s.Position(id)
			s.SetPosition(id, clampPosition(p, size))
		}
	})
	sim.Run()

	layout := make(Layout, len(g.Nodes))
	for _, id := range sim.Nodes() {
		p, _ := sim.Position(id)
		layout[id] = clampPosition(p, size)
	}

	return layout
}

func clampPosition(p r2.Vec, size Size) r2.Vec {
	return r2.Vec{
		X: clamp(p.X, nodeMargin, float64(size.Width-nodeMargin)),
		Y: clamp(p.Y, nodeMargin, float64(size.Height-nodeMargin)),
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// InvolvementSource provides issue involvements.
type InvolvementSource interface {
	IssuesInvolvement(ctx context.Context) ([]app.Involvement, error)
}

// Involvement renders the force directed users-issues graph with tooltips.
type Involvement struct {
	source    InvolvementSource
	templates *Templates
	size      Size
	seed      int64
	now       func() time.Time
}

// NewInvolvement creates new Involvement instance.
func NewInvolvement(source InvolvementSource, templates *Templates, conf Config) *Involvement {
	conf = conf.withDefaults()
	return &Involvement{
		source:    source,
		templates: templates,
		size:      conf.GraphSize,
		seed:      conf.LayoutSeed,
		now:       conf.Now,
	}
}

// Name implements Widget.
func (w *Involvement) Name() string { return "issues-involvement" }

// ContainerID implements Widget.
func (w *Involvement) ContainerID() string { return "issues-involvement-graph-container" }

// Tip is a node tooltip, hidden until the node is clicked.
type Tip struct {
	ID   string
	HTML template.HTML
}

type issueTipData struct {
	Number   int
	Title    string
	URL      string
	Comments int
	Ago      string
}

type userTipData struct {
	Login  string
	ImgURL string
}

// Render implements Widget.
func (w *Involvement) Render(ctx context.Context) (template.HTML, error) {
	involvements, err := w.source.IssuesInvolvement(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching issues involvement: %w", err)
	}

	g := BuildInvolvementGraph(involvements)

	seed := w.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	layout := g.Simulate(w.size, rand.New(rand.NewSource(seed)))

	tips, err := w.tips(g)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	g.WriteSVG(&buf, w.size, layout)

	return w.templates.Render(tmplInvolvement, struct {
		SVG  template.HTML
		Tips []Tip
	}{
		SVG:  inlineSVG(buf.String()),
		Tips: tips,
	})
}

func (w *Involvement) tips(g InvolvementGraph) ([]Tip, error) {
	now := w.now()
	tips := make([]Tip, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		var (
			html template.HTML
			err  error
		)
		switch n.Kind {
		case IssueNode:
			data := issueTipData{
				Number:   n.Issue.Number,
				Title:    n.Issue.Title,
				URL:      n.Issue.URL,
				Comments: n.Issue.Comments,
			}
			if !n.Issue.CreatedAt.IsZero() {
				data.Ago = timefmt.Between(n.Issue.CreatedAt, now)
			}
			html, err = w.templates.Render(tmplIssueTip, data)
		default:
			html, err = w.templates.Render(tmplUserTip, userTipData{
				Login:  n.User.Login,
				ImgURL: n.User.AvatarURL,
			})
		}
		if err != nil {
			return nil, err
		}
		tips = append(tips, Tip{ID: tipID(n.ID), HTML: html})
	}

	return tips, nil
}

func tipID(id int64) string {
	return "tip-" + strconv.FormatInt(id, 10)
}

// WriteSVG draws the graph using positions from layout. Nodes are drawn over links.
func (g InvolvementGraph) WriteSVG(w io.Writer, size Size, layout Layout) {
	pos := func(id int64) (int, int) {
		p := layout[id]
		return int(math.Round(p.X)), int(math.Round(p.Y))
	}

	canvas := svg.New(w)
	canvas.Start(size.Width, size.Height,
		`class="involvement-graph"`,
		fmt.Sprintf(`data-margin="%d"`, nodeMargin),
	)
	canvas.Rect(0, 0, size.Width, size.Height, "fill:#2b2b2b")

	for _, l := range g.Links {
		x1, y1 := pos(l.Source)
		x2, y2 := pos(l.Target)
		canvas.Line(x1, y1, x2, y2,
			fmt.Sprintf(`data-source="%d"`, l.Source),
			fmt.Sprintf(`data-target="%d"`, l.Target),
			"stroke:#999999;stroke-opacity:0.6;stroke-width:2",
		)
	}

	for _, n := range g.Nodes {
		x, y := pos(n.ID)
		canvas.Group(
			fmt.Sprintf(`class="gnode %s"`, n.Kind),
			fmt.Sprintf(`data-node="%d"`, n.ID),
			fmt.Sprintf(`data-tip="%s"`, tipID(n.ID)),
			fmt.Sprintf(`data-x="%d"`, x),
			fmt.Sprintf(`data-y="%d"`, y),
			fmt.Sprintf(`transform="translate(%d,%d)"`, x, y),
		)
		// svgo takes integer radius only.
		r := n.Radius()
		fmt.Fprintf(canvas.Writer, "<circle cx=\"0\" cy=\"0\" r=\"%s\" style=\"fill:%s;stroke:#ffffff;stroke-width:1.5\" />\n",
			strconv.FormatFloat(math.Round(r*100)/100, 'f', -1, 64), n.color())
		canvas.Text(int(math.Round(r))+3, 6, n.Label(), "fill:#ffffff;font-size:12px")
		canvas.Gend()
	}

	canvas.End()
}
