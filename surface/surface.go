// Package surface implements Bezier surfaces, composed of Bezier curves.
//
// A surface is defined by a profile: an ordered list of 3D Bezier curves.
// A point of the surface at parameters (u,v) is found by evaluating every
// profile curve at u, and then evaluating the curve having these points as
// its control points at v.
//
// Surfaces may be triangulated into meshes (package mesh). Vertex normals
// are estimated by finite differences.
package surface

import (
	"errors"
	"math"

	"cogentcore.org/core/math32"
	"github.com/npillmayer/bezsurf"
	"github.com/npillmayer/bezsurf/bezier"
	"github.com/npillmayer/bezsurf/mesh"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'surface'
func tracer() tracing.Trace {
	return tracing.Select("surface")
}

var (
	// ErrInvalidGridSize indicates a triangulation grid with fewer than 2
	// points in one direction.
	ErrInvalidGridSize = errors.New("triangulation grid needs at least 2 x 2 points")
	// ErrMeshConstructionFailed indicates that the mesh rejected the vertex and
	// index lists of a triangulation.
	ErrMeshConstructionFailed = errors.New("mesh construction failed")
)

// DefaultPrecision is the default step size for finite differences.
const DefaultPrecision float32 = 1e-4

// Profile is a 3D Bezier curve, used as a cross-section of a surface.
type Profile = bezier.Curve[math32.Vector3, float32]

// NewProfile creates a profile curve from its control points.
func NewProfile(points ...math32.Vector3) *Profile {
	return bezier.New[math32.Vector3, float32](points...)
}

// Ring creates a looping profile curve in the plane at height y, with n
// control points evenly spaced on a circle of radius r around the Y axis.
//
// The control points are not interpolated: the curve runs inside the circle
// of control points, at a radius of about 0.65⋅r for n = 4, 0.81⋅r for n = 8
// and 0.90⋅r for n = 16. To get a loop of radius R, use r = R / factor.
func Ring(y, r float32, n int) *Profile {
	points := make([]math32.Vector3, n)
	for i := range points {
		p := bezsurf.P(float64(r), 0).Rotated(2 * math.Pi * float64(i) / float64(n))
		points[i] = math32.Vec3(float32(p.X()), y, float32(p.Y()))
	}
	return NewProfile(points...).Cycle()
}

// NormalMode selects the estimation of surface normals.
type NormalMode int

const (
	// NormalGradient normalizes the combined gradient (see Surface.Gradient).
	NormalGradient NormalMode = iota
	// NormalCurvature normalizes the second-order gradient (see Surface.Gradient2).
	NormalCurvature
	// NormalCross normalizes the cross product of the partial derivatives.
	NormalCross
)

// Surface is a Bezier surface. The profile curves are evaluated in direction u,
// the curve across the profile in direction v.
type Surface struct {
	profile []*Profile
	dt      float32    // step size for finite differences
	cycle   bool       // does the surface loop in direction v ?
	normals NormalMode // how to estimate normals

	// build constructs meshes from triangulations; nil selects mesh.New
	build func([]mesh.Vertex, []uint32) (*mesh.Mesh, error)
}

// New creates a surface from a profile, i.e. a list of curves. The curves are
// not copied: changing their control points changes the surface.
// New panics if the profile is empty.
func New(profile ...*Profile) *Surface {
	if len(profile) == 0 {
		panic("cannot create Bezier surface without profile curves")
	}
	sf := &Surface{
		profile: make([]*Profile, len(profile)),
		dt:      DefaultPrecision,
	}
	copy(sf.profile, profile)
	tracer().Debugf("new surface with %d profile curves", len(profile))
	return sf
}

// Cycle closes the surface into a loop in direction v. Part of builder functionality.
func (sf *Surface) Cycle() *Surface {
	sf.cycle = true
	return sf
}

// IsCycle is a predicate: does the surface loop in direction v?
func (sf *Surface) IsCycle() bool {
	return sf.cycle
}

// WithPrecision sets the step size for finite differences. Non-positive
// values select DefaultPrecision. Part of builder functionality.
func (sf *Surface) WithPrecision(dt float32) *Surface {
	if dt <= 0 {
		dt = DefaultPrecision
	}
	sf.dt = dt
	return sf
}

// Precision returns the step size for finite differences.
func (sf *Surface) Precision() float32 {
	return sf.dt
}

// WithNormals selects how normals are estimated. Part of builder functionality.
func (sf *Surface) WithNormals(mode NormalMode) *Surface {
	sf.normals = mode
	return sf
}

// N returns the number of profile curves.
func (sf *Surface) N() int {
	return len(sf.profile)
}

// Profile returns profile curve i.
func (sf *Surface) Profile(i int) *Profile {
	return sf.profile[i]
}

// loopsU is true if the surface loops in direction u, i.e. if every
// profile curve loops.
func (sf *Surface) loopsU() bool {
	for _, c := range sf.profile {
		if !c.IsCycle() {
			return false
		}
	}
	return true
}

// Evaluate returns the point of the surface at parameters (u,v).
func (sf *Surface) Evaluate(u, v float32) math32.Vector3 {
	return sf.evaluator().point(u, v)
}

// Gradient returns the sum of the forward differences of the surface at (u,v)
// in direction u and in direction v:
//
//	(P(u+dt,v) - P(u,v)) / dt  +  (P(u,v+dt) - P(u,v)) / dt
//
// This is not a normal vector, but NormalGradient uses it as such.
func (sf *Surface) Gradient(u, v float32) math32.Vector3 {
	return sf.evaluator().gradient(u, v)
}

// Gradient2 applies the finite differences of Gradient to Gradient itself.
// With float32 points this is numerically meaningful only for step sizes
// of about 1e-2 and above (see WithPrecision).
func (sf *Surface) Gradient2(u, v float32) math32.Vector3 {
	return sf.evaluator().gradient2(u, v)
}

// Partials returns the forward differences of the surface at (u,v) in
// direction u and in direction v, separately.
func (sf *Surface) Partials(u, v float32) (du, dv math32.Vector3) {
	return sf.evaluator().partials(u, v)
}

// Normal returns a unit normal vector at (u,v), estimated as selected by
// WithNormals. If the estimate degenerates, Normal falls back to the
// normalized gradient, and finally to +Y.
func (sf *Surface) Normal(u, v float32) math32.Vector3 {
	return sf.evaluator().normal(u, v)
}
