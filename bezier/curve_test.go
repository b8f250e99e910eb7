package bezier

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/npillmayer/bezsurf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pcurve = Curve[bezsurf.Pair, float64]

func newPairCurve(pts ...bezsurf.Pair) *pcurve {
	return New[bezsurf.Pair, float64](pts...)
}

func assertPairNear(t *testing.T, want, got bezsurf.Pair, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), 1e-9, msgAndArgs...)
	assert.InDelta(t, want.Y(), got.Y(), 1e-9, msgAndArgs...)
}

// cubic Bezier by its Bernstein polynomial form
func bernstein3(p [4]bezsurf.Pair, s float64) bezsurf.Pair {
	r := 1 - s
	b := [4]float64{r * r * r, 3 * s * r * r, 3 * s * s * r, s * s * s}
	var x, y float64
	for i := range p {
		x += b[i] * p[i].X()
		y += b[i] * p[i].Y()
	}
	return bezsurf.P(x, y)
}

func TestSinglePoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := bezsurf.P(3, -7)
	c := newPairCurve(p)
	for _, s := range []float64{-1, 0, 0.3, 1, 42} {
		assert.Equal(t, p, c.Evaluate(s))
	}
	assert.Equal(t, p, c.Cycle().Evaluate(0.7))
}

func TestSimpleCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New[math32.Vector2, float32](math32.Vec2(0, 0), math32.Vec2(1, 0))
	assert.Equal(t, math32.Vec2(0, 0), c.Evaluate(0))
	assert.Equal(t, math32.Vec2(1, 0), c.Evaluate(1))
	assert.Equal(t, math32.Vec2(0.5, 0), c.Evaluate(0.5))
}

func TestLinearIsLerp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p0, p1 := bezsurf.P(-1, 4), bezsurf.P(2, 0.5)
	c := newPairCurve(p0, p1)
	assert.Equal(t, p0, c.Evaluate(0))
	assert.Equal(t, p0.Lerp(p1, 0.5), c.Evaluate(0.5))
	assert.Equal(t, p0.Lerp(p1, 2), c.Evaluate(2), "curve must extrapolate outside [0,1]")
}

func TestCubicMatchesBernstein(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cp := [4]bezsurf.Pair{bezsurf.P(0, 0), bezsurf.P(1, 3), bezsurf.P(4, 3), bezsurf.P(5, -1)}
	c := newPairCurve(cp[:]...)
	for i := 0; i <= 20; i++ {
		s := float64(i) / 20
		assertPairNear(t, bernstein3(cp, s), c.Evaluate(s), "s = %g", s)
	}
}

func TestMutation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newPairCurve(bezsurf.P(0, 0), bezsurf.P(1, 1), bezsurf.P(2, 0))
	before := c.Evaluate(0.5)
	c.Set(1, bezsurf.P(1, -1))
	after := c.Evaluate(0.5)
	assertPairNear(t, bezsurf.P(1, 0.5), before)
	assertPairNear(t, bezsurf.P(1, -0.5), after)
	assert.Equal(t, bezsurf.P(1, -1), c.At(1))
	pts := c.Points()
	pts[0] = bezsurf.P(9, 9)
	assert.Equal(t, bezsurf.P(0, 0), c.At(0), "Points() must return a copy")
}

func TestNewCopiesPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []bezsurf.Pair{bezsurf.P(0, 0), bezsurf.P(1, 0)}
	c := newPairCurve(pts...)
	pts[1] = bezsurf.P(5, 5)
	assert.Equal(t, bezsurf.P(1, 0), c.At(1))
	assert.Panics(t, func() { newPairCurve() })
}

func TestEvaluateInto(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cp := [4]bezsurf.Pair{bezsurf.P(0, 0), bezsurf.P(1, 3), bezsurf.P(4, 3), bezsurf.P(5, -1)}
	c := newPairCurve(cp[:]...)
	small := make([]bezsurf.Pair, 1)
	assertPairNear(t, bernstein3(cp, 0.25), c.EvaluateInto(0.25, small))
	scratch := make([]bezsurf.Pair, 8)
	assertPairNear(t, bernstein3(cp, 0.75), c.EvaluateInto(0.75, scratch))
	assert.Equal(t, cp, [4]bezsurf.Pair(c.Points()), "evaluation must not touch control points")
}

func TestLoopingSeam(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newPairCurve(bezsurf.P(1, 0), bezsurf.P(0, 1), bezsurf.P(-1, 0), bezsurf.P(0, -1)).Cycle()
	require.True(t, c.IsCycle())
	assertPairNear(t, c.Evaluate(0), c.Evaluate(1), "loop must close at the seam")
	assertPairNear(t, c.Evaluate(0.1), c.Evaluate(1.1), "loop must be periodic")
	// approaching the seam from both sides
	const h = 1e-7
	assert.InDelta(t, 0, c.Evaluate(1-h).Dist(c.Evaluate(h)), 1e-5)
	// approaching an inner span boundary from both sides
	assert.InDelta(t, 0, c.Evaluate(0.25-h).Dist(c.Evaluate(0.25+h)), 1e-5)
}

func TestLoopingPhaseShift(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []bezsurf.Pair{bezsurf.P(2, 0), bezsurf.P(1, 2), bezsurf.P(-1, 1), bezsurf.P(-2, -1), bezsurf.P(0, -2)}
	n := len(pts)
	c := newPairCurve(pts...).Cycle()
	rotated := append(append([]bezsurf.Pair{}, pts[1:]...), pts[0])
	r := newPairCurve(rotated...).Cycle()
	for i := 0; i <= 16; i++ {
		s := float64(i) / 16
		assertPairNear(t, c.Evaluate(s+1/float64(n)), r.Evaluate(s), "s = %g", s)
	}
}

func TestLoopingTwoPointsIsPolygon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, b := bezsurf.P(0, 0), bezsurf.P(2, 0)
	c := newPairCurve(a, b).Cycle()
	assertPairNear(t, a, c.Evaluate(0))
	assertPairNear(t, bezsurf.P(1, 0), c.Evaluate(0.25))
	assertPairNear(t, b, c.Evaluate(0.5))
	assertPairNear(t, bezsurf.P(1, 0), c.Evaluate(0.75))
	c.SetLooping(false)
	assertPairNear(t, bezsurf.P(1, 0), c.Evaluate(0.5))
}

func TestSample(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newPairCurve(bezsurf.P(0, 0), bezsurf.P(1, 0))
	assert.Nil(t, c.Sample(0))
	assert.Equal(t, []bezsurf.Pair{bezsurf.P(0, 0)}, c.Sample(1))
	samples := c.Sample(5)
	require.Len(t, samples, 5)
	assert.Equal(t, bezsurf.P(0, 0), samples[0])
	assert.Equal(t, bezsurf.P(1, 0), samples[4])
	assertPairNear(t, bezsurf.P(0.25, 0), samples[1])
	loop := newPairCurve(bezsurf.P(0, 0), bezsurf.P(2, 0)).Cycle()
	samples = loop.Sample(4)
	require.Len(t, samples, 4)
	assertPairNear(t, bezsurf.P(2, 0), samples[2])
}

func TestNearest(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := newPairCurve(bezsurf.P(0, 0), bezsurf.P(1, 1), bezsurf.P(3, 0))
	dist := func(a, b bezsurf.Pair) float64 { return a.Dist(b) }
	assert.Equal(t, 1, c.Nearest(bezsurf.P(1.2, 0.9), dist))
	assert.Equal(t, 2, c.Nearest(bezsurf.P(10, 0), dist))
	assert.Equal(t, 0, c.Nearest(bezsurf.P(-1, -1), dist))
}

func BenchmarkEvaluate(b *testing.B) {
	rng := rand.New(rand.NewPCG(42, 42))
	params := make([]float32, 1000)
	for i := range params {
		params[i] = float32(i) / 1000
	}
	for _, n := range []int{2, 3, 5, 10, 50, 100} {
		pts := make([]math32.Vector2, n)
		for i := range pts {
			pts[i] = math32.Vec2(rng.Float32(), rng.Float32())
		}
		c := &Curve[math32.Vector2, float32]{points: pts}
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			scratch := make([]math32.Vector2, n)
			for i := 0; i < b.N; i++ {
				for _, s := range params {
					c.EvaluateInto(s, scratch)
				}
			}
		})
	}
}

func BenchmarkEvaluateCyclic(b *testing.B) {
	pts := make([]bezsurf.Pair, 16)
	for i := range pts {
		pts[i] = bezsurf.P(1, 0).Rotated(2 * math.Pi * float64(i) / 16)
	}
	c := &Curve[bezsurf.Pair, float64]{points: pts, cycle: true}
	for i := 0; i < b.N; i++ {
		c.Evaluate(float64(i%1000) / 1000)
	}
}
