package force

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"
)

func randomBodies(rnd *rand.Rand, n int) []*body {
	bodies := make([]*body, 0, n)
	for i := 0; i < n; i++ {
		p := r2.Vec{X: rnd.Float64() * 960, Y: rnd.Float64() * 600}
		bodies = append(bodies, &body{id: int64(i), pos: p, prev: p})
	}
	return bodies
}

// exactRepulsion sums charge of every other body, pair by pair. Also returns the sum of
// force magnitudes, which bounds the approximation error.
func exactRepulsion(bodies []*body, b *body, charge float64) (r2.Vec, float64) {
	var (
		dv    r2.Vec
		total float64
	)
	for _, o := range bodies {
		if o == b {
			continue
		}
		d := r2.Sub(o.pos, b.pos)
		dn := d.X*d.X + d.Y*d.Y
		if dn == 0 {
			continue
		}
		f := r2.Scale(charge/dn, d)
		dv = r2.Sub(dv, f)
		total += r2.Norm(f)
	}
	return dv, total
}

func TestQuadtreeCountsAndCenter(t *testing.T) {
	t.Parallel()

	bodies := randomBodies(rand.New(rand.NewSource(1)), 200)
	tree := newQuadtree(bodies)
	require.NotNil(t, tree)

	var sum r2.Vec
	for _, b := range bodies {
		sum = r2.Add(sum, b.pos)
		assert.True(t, tree.contains(b.pos))
	}
	assert.Equal(t, len(bodies), tree.count)
	assert.InDelta(t, sum.X/200, tree.center.X, 1e-9)
	assert.InDelta(t, sum.Y/200, tree.center.Y, 1e-9)

	assert.Nil(t, newQuadtree(nil))
}

func TestQuadtreeRepulsionIsCloseToExact(t *testing.T) {
	t.Parallel()

	const charge = -350 * 0.1

	bodies := randomBodies(rand.New(rand.NewSource(2)), 300)
	tree := newQuadtree(bodies)

	for _, b := range bodies[:20] {
		want, total := exactRepulsion(bodies, b, charge)

		start := b.prev
		tree.repulse(b, charge)
		got := r2.Sub(b.prev, start)
		b.prev = start

		assert.InDelta(t, 0, r2.Norm(r2.Sub(got, want)), 0.1*total, "body %d", b.id)
	}
}

func TestQuadtreeCoincidentBodies(t *testing.T) {
	t.Parallel()

	p := r2.Vec{X: 5, Y: 5}
	bodies := []*body{{id: 0, pos: p, prev: p}, {id: 1, pos: p, prev: p}, {id: 2, pos: p, prev: p}}

	tree := newQuadtree(bodies)
	assert.Equal(t, 3, tree.count)

	tree.repulse(bodies[0], -30)
	assert.Equal(t, p, bodies[0].prev)
}

func TestSimulationLargeGraph(t *testing.T) {
	t.Parallel()

	g := simple.NewDirectedGraph()
	for issue := int64(0); issue < 100; issue++ {
		for u := int64(1); u <= 9; u++ {
			g.SetEdge(g.NewEdge(simple.Node(1000+issue*10+u), simple.Node(issue)))
		}
	}
	opts := DefaultOptions(960, 600)
	opts.Charge = -350
	s := New(g, opts)

	start := time.Now()
	s.Run()
	assert.Less(t, time.Since(start), 30*time.Second)

	for _, id := range s.Nodes() {
		p, ok := s.Position(id)
		require.True(t, ok)
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "node %d position is NaN", id)
	}
}
