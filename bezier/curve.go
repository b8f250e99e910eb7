package bezier

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/constraints"
)

// tracer writes to trace with key 'bezier'
func tracer() tracing.Trace {
	return tracing.Select("bezier")
}

// Lerper is the capability required of control points: linear interpolation
//
//	a.Lerp(b, s) = a + s⋅(b - a)
//
// between two instances of a point type V, with a scalar of type F.
type Lerper[V any, F constraints.Float] interface {
	Lerp(other V, s F) V
}

// Curve is a Bezier curve, defined by its control points.
// A curve owns its control points.
type Curve[V Lerper[V, F], F constraints.Float] struct {
	points []V  // control points p.0 … p.n-1
	cycle  bool // does this curve loop ?
}

// New creates an open curve from a sequence of control points. The points are
// copied. New panics if no control point is given.
func New[V Lerper[V, F], F constraints.Float](points ...V) *Curve[V, F] {
	if len(points) == 0 {
		panic("cannot create Bezier curve without control points")
	}
	c := &Curve[V, F]{points: make([]V, len(points))}
	copy(c.points, points)
	return c
}

// Cycle closes a curve into a loop. Part of builder functionality.
func (c *Curve[V, F]) Cycle() *Curve[V, F] {
	c.cycle = true
	return c
}

// SetLooping sets or clears the looping flag.
func (c *Curve[V, F]) SetLooping(loop bool) *Curve[V, F] {
	c.cycle = loop
	return c
}

// IsCycle is a predicate: is this curve looping?
func (c *Curve[V, F]) IsCycle() bool {
	return c.cycle
}

// N returns the number of control points.
func (c *Curve[V, F]) N() int {
	return len(c.points)
}

// At returns control point i.
func (c *Curve[V, F]) At(i int) V {
	return c.points[i]
}

// Set replaces control point i. The next evaluation reflects the change.
func (c *Curve[V, F]) Set(i int, p V) *Curve[V, F] {
	c.points[i] = p
	return c
}

// Points returns a copy of the control points.
func (c *Curve[V, F]) Points() []V {
	pts := make([]V, len(c.points))
	copy(pts, c.points)
	return pts
}

// Evaluate returns the point on the curve at parameter s. Usually s is in
// [0,1]; values outside this interval are not clamped, but extrapolated.
func (c *Curve[V, F]) Evaluate(s F) V {
	return c.EvaluateInto(s, nil)
}

// EvaluateInto is like Evaluate, but uses scratch as intermediate storage
// for the reduction. If scratch is too small to hold N() points, a new buffer
// is allocated. Callers evaluating many points may re-use a scratch buffer
// across calls. The contents of scratch are overwritten.
func (c *Curve[V, F]) EvaluateInto(s F, scratch []V) V {
	n := len(c.points)
	if n == 1 {
		return c.points[0]
	}
	if cap(scratch) < n {
		scratch = make([]V, n)
	}
	buf := scratch[:n]
	if c.cycle {
		return reduceCyclic(c.points, s, buf)
	}
	copy(buf, c.points)
	for m := n - 1; m > 0; m-- { // m = number of points after this level - 1
		for i := 0; i < m; i++ {
			buf[i] = buf[i].Lerp(buf[i+1], s)
		}
	}
	return buf[0]
}

// reduceCyclic evaluates a looping curve. The parameter s is stretched over
// n spans, span k covering [k/n, (k+1)/n). Within a span, the window of
// control points p.k … p.k+n-1 (indices wrapping) is reduced in n-1 levels.
// Each level interpolates neighbouring points of the window with blend
// factors sliding across the span, so that the window for span k+1 continues
// smoothly where the window for span k ends (the reduction is the one for
// uniform periodic B-splines of degree n-1).
func reduceCyclic[V Lerper[V, F], F constraints.Float](points []V, s F, buf []V) V {
	n := len(points)
	x := s * F(n)
	fl := math.Floor(float64(x))
	t := x - F(fl)
	k := int(fl) % n
	if k < 0 {
		k += n
	}
	for j := 0; j < n; j++ {
		buf[j] = points[(k+j)%n]
	}
	d := n - 1 // degree
	for r := 1; r <= d; r++ {
		for j := d; j >= r; j-- {
			alpha := (t + F(d-j)) / F(d+1-r)
			buf[j] = buf[j-1].Lerp(buf[j], alpha)
		}
	}
	return buf[d]
}

// Sample returns k points along the curve, evenly spaced in parameter space.
// For open curves the samples include both end points (s = i/(k-1)).
// For looping curves the samples run once around the loop (s = i/k), without
// repeating the starting point.
func (c *Curve[V, F]) Sample(k int) []V {
	if k < 1 {
		return nil
	}
	tracer().Debugf("sampling %d points from curve of degree %d", k, len(c.points)-1)
	samples := make([]V, k)
	scratch := make([]V, len(c.points))
	div := F(k - 1)
	if c.cycle {
		div = F(k)
	}
	if div == 0 {
		samples[0] = c.EvaluateInto(0, scratch)
		return samples
	}
	for i := 0; i < k; i++ {
		samples[i] = c.EvaluateInto(F(i)/div, scratch)
	}
	return samples
}

// Nearest returns the index of the control point closest to p, measured by
// metric dist. If two points are at equal distance, the lower index wins.
func (c *Curve[V, F]) Nearest(p V, dist func(a, b V) F) int {
	nearest, best := 0, F(math.Inf(1))
	for i, q := range c.points {
		if d := dist(p, q); d < best {
			nearest, best = i, d
		}
	}
	return nearest
}
