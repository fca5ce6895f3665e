package force

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// theta is the Barnes-Hut accuracy: a cell is treated as a single body when
	// its width divided by the distance to its center is below theta.
	theta = 0.8
	// maxQuadDepth stops splitting cells holding coincident bodies.
	maxQuadDepth = 32
)

// quad is a quadtree cell. Leaves hold bodies, inner cells hold up to four children.
type quad struct {
	min, max r2.Vec
	children [4]*quad
	bodies   []*body
	inner    bool

	count  int
	center r2.Vec
}

// newQuadtree indexes bodies in a square cell covering all of them.
func newQuadtree(bodies []*body) *quad {
	if len(bodies) == 0 {
		return nil
	}

	lo, hi := bodies[0].pos, bodies[0].pos
	for _, b := range bodies[1:] {
		lo = r2.Vec{X: math.Min(lo.X, b.pos.X), Y: math.Min(lo.Y, b.pos.Y)}
		hi = r2.Vec{X: math.Max(hi.X, b.pos.X), Y: math.Max(hi.Y, b.pos.Y)}
	}
	side := math.Max(hi.X-lo.X, hi.Y-lo.Y)
	root := &quad{min: lo, max: r2.Vec{X: lo.X + side, Y: lo.Y + side}}

	for _, b := range bodies {
		root.insert(b, 0)
	}
	root.accumulate()

	return root
}

func (q *quad) width() float64 {
	return q.max.X - q.min.X
}

func (q *quad) contains(p r2.Vec) bool {
	return p.X >= q.min.X && p.X <= q.max.X && p.Y >= q.min.Y && p.Y <= q.max.Y
}

func (q *quad) insert(b *body, depth int) {
	if !q.inner {
		if len(q.bodies) == 0 || depth >= maxQuadDepth {
			q.bodies = append(q.bodies, b)
			return
		}
		existing := q.bodies
		q.bodies = nil
		q.inner = true
		for _, e := range existing {
			q.child(e.pos).insert(e, depth+1)
		}
	}
	q.child(b.pos).insert(b, depth+1)
}

// child returns the sub cell p falls into, creating it when needed.
func (q *quad) child(p r2.Vec) *quad {
	mid := r2.Scale(0.5, r2.Add(q.min, q.max))

	var i int
	lo, hi := q.min, mid
	if p.X >= mid.X {
		i |= 1
		lo.X, hi.X = mid.X, q.max.X
	}
	if p.Y >= mid.Y {
		i |= 2
		lo.Y, hi.Y = mid.Y, q.max.Y
	}

	if q.children[i] == nil {
		q.children[i] = &quad{min: lo, max: hi}
	}

	return q.children[i]
}

// accumulate computes body count and mass center of every cell.
func (q *quad) accumulate() {
	var sum r2.Vec
	if q.inner {
		for _, c := range q.children {
			if c == nil {
				continue
			}
			c.accumulate()
			q.count += c.count
			sum = r2.Add(sum, r2.Scale(float64(c.count), c.center))
		}
	} else {
		q.count = len(q.bodies)
		for _, b := range q.bodies {
			sum = r2.Add(sum, b.pos)
		}
	}
	if q.count > 0 {
		q.center = r2.Scale(1/float64(q.count), sum)
	}
}

// repulse applies charge of cell's bodies to b. Distant cells act as a single body
// placed at their mass center.
func (q *quad) repulse(b *body, charge float64) {
	if q == nil || q.count == 0 {
		return
	}

	if q.inner {
		d := r2.Sub(q.center, b.pos)
		dn := d.X*d.X + d.Y*d.Y
		w := q.width()
		if !q.contains(b.pos) && w*w < theta*theta*dn {
			b.prev = r2.Sub(b.prev, r2.Scale(charge*float64(q.count)/dn, d))
			return
		}
		for _, c := range q.children {
			c.repulse(b, charge)
		}
		return
	}

	for _, o := range q.bodies {
		if o == b {
			continue
		}
		d := r2.Sub(o.pos, b.pos)
		dn := d.X*d.X + d.Y*d.Y
		if dn == 0 {
			continue
		}
		b.prev = r2.Sub(b.prev, r2.Scale(charge/dn, d))
	}
}
