// Package force lays out graphs with a force-directed simulation.
//
// The model is the classic verlet one: nodes repel each other (charge), edges pull their
// ends towards a target distance, and a weak gravity pulls everything to the center.
// Each tick cools the simulation by 1%, it stops once alpha drops below a threshold.
package force

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	startAlpha = 0.1
	minAlpha   = 0.005
	cooling    = 0.99
)

// Options configure the simulation.
type Options struct {
	Width        float64
	Height       float64
	Charge       float64
	LinkDistance float64
	LinkStrength float64
	Gravity      float64
	Friction     float64

	// Rand positions nodes initially. Defaults to a time independent source.
	Rand *rand.Rand
}

// DefaultOptions returns options for a width x height viewport.
func DefaultOptions(width, height float64) Options {
	return Options{
		Width:        width,
		Height:       height,
		Charge:       -30,
		LinkDistance: 20,
		LinkStrength: 1,
		Gravity:      0.1,
		Friction:     0.9,
	}
}

type body struct {
	id     int64
	pos    r2.Vec
	prev   r2.Vec
	weight float64
	fixed  bool
}

type link struct {
	source, target int
}

// Simulation runs force layout for a directed graph. Edge direction only decides which end
// is the source of a link, forces are symmetric.
type Simulation struct {
	opts   Options
	bodies []*body
	index  map[int64]int
	links  []link
	alpha  float64
	onTick func(*Simulation)
}

// New creates simulation for g. Nodes are placed randomly within the viewport.
func New(g graph.Directed, opts Options) *Simulation {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}

	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID() < nodes[j].ID()
	})

	s := &Simulation{
		opts:   opts,
		bodies: make([]*body, 0, len(nodes)),
		index:  make(map[int64]int, len(nodes)),
	}
	for i, n := range nodes {
		p := r2.Vec{
			X: opts.Rand.Float64() * opts.Width,
			Y: opts.Rand.Float64() * opts.Height,
		}
		s.bodies = append(s.bodies, &body{id: n.ID(), pos: p, prev: p})
		s.index[n.ID()] = i
	}
	for i, n := range nodes {
		to := graph.NodesOf(g.From(n.ID()))
		sort.Slice(to, func(a, b int) bool {
			return to[a].ID() < to[b].ID()
		})
		for _, t := range to {
			j := s.index[t.ID()]
			s.links = append(s.links, link{source: i, target: j})
			s.bodies[i].weight++
			s.bodies[j].weight++
		}
	}

	return s
}

// OnTick registers fn to be called after every tick, once positions are updated.
func (s *Simulation) OnTick(fn func(*Simulation)) {
	s.onTick = fn
}

// Start (re)heats the simulation.
func (s *Simulation) Start() {
	s.alpha = startAlpha
}

// Alpha returns current simulation temperature. Zero means stopped.
func (s *Simulation) Alpha() float64 {
	return s.alpha
}

// Tick advances simulation by one step. Returns false once the simulation has cooled down.
func (s *Simulation) Tick() bool {
	if s.alpha *= cooling; s.alpha < minAlpha {
		s.alpha = 0
		return false
	}

	s.applyLinks()
	s.applyGravity()
	s.applyCharge()
	s.integrate()

	if s.onTick != nil {
		s.onTick(s)
	}

	return true
}

// Run starts simulation and ticks until it stops. Returns number of ticks applied.
func (s *Simulation) Run() int {
	s.Start()
	var ticks int
	for s.Tick() {
		ticks++
	}

	return ticks
}

// Nodes returns ids of simulated nodes, ascending.
func (s *Simulation) Nodes() []int64 {
	ids := make([]int64, 0, len(s.bodies))
	for _, b := range s.bodies {
		ids = append(ids, b.id)
	}

	return ids
}

// Position returns current position of node id.
func (s *Simulation) Position(id int64) (r2.Vec, bool) {
	i, ok := s.index[id]
	if !ok {
		return r2.Vec{}, false
	}

	return s.bodies[i].pos, true
}

// SetPosition moves node id to p without changing its velocity history.
func (s *Simulation) SetPosition(id int64, p r2.Vec) {
	if i, ok := s.index[id]; ok {
		s.bodies[i].pos = p
	}
}

// Fix pins node id at p, as while it's being dragged. The simulation is reheated so other
// nodes react to the move.
func (s *Simulation) Fix(id int64, p r2.Vec) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	b := s.bodies[i]
	b.fixed = true
	b.pos = p
	b.prev = p
	if s.alpha < startAlpha {
		s.alpha = startAlpha
	}
}

// Release unpins node id.
func (s *Simulation) Release(id int64) {
	if i, ok := s.index[id]; ok {
		s.bodies[i].fixed = false
	}
}

func (s *Simulation) applyLinks() {
	for _, l := range s.links {
		src, dst := s.bodies[l.source], s.bodies[l.target]
		d := r2.Sub(dst.pos, src.pos)
		dist := r2.Norm(d)
		if dist == 0 {
			continue
		}
		d = r2.Scale(s.alpha*s.opts.LinkStrength*(dist-s.opts.LinkDistance)/dist, d)
		k := src.weight / (src.weight + dst.weight)
		dst.pos = r2.Sub(dst.pos, r2.Scale(k, d))
		src.pos = r2.Add(src.pos, r2.Scale(1-k, d))
	}
}

func (s *Simulation) applyGravity() {
	k := s.alpha * s.opts.Gravity
	if k == 0 {
		return
	}
	center := r2.Vec{X: s.opts.Width / 2, Y: s.opts.Height / 2}
	for _, b := range s.bodies {
		if b.fixed {
			continue
		}
		b.pos = r2.Add(b.pos, r2.Scale(k, r2.Sub(center, b.pos)))
	}
}

// applyCharge repels bodies from each other. Forces are approximated with a Barnes-Hut
// quadtree, so a tick costs O(n log n).
func (s *Simulation) applyCharge() {
	charge := s.alpha * s.opts.Charge
	if charge == 0 {
		return
	}
	tree := newQuadtree(s.bodies)
	for _, b := range s.bodies {
		if b.fixed {
			continue
		}
		tree.repulse(b, charge)
	}
}

func (s *Simulation) integrate() {
	for _, b := range s.bodies {
		if b.fixed {
			b.pos = b.prev
			continue
		}
		v := r2.Scale(s.opts.Friction, r2.Sub(b.pos, b.prev))
		b.prev = b.pos
		b.pos = r2.Add(b.pos, v)
	}
}
