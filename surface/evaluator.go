package surface

import (
	"cogentcore.org/core/math32"
)

// evaluator holds the scratch space for evaluating points of a surface.
// Evaluators are cheap, but must not be shared between goroutines.
type evaluator struct {
	sf     *Surface
	across *Profile         // transient curve across the profile, in direction v
	buf    []math32.Vector3 // scratch for the reduction of profile curves
}

func (sf *Surface) evaluator() *evaluator {
	n := 0
	for _, c := range sf.profile {
		n = max(n, c.N())
	}
	ev := &evaluator{
		sf:     sf,
		across: NewProfile(make([]math32.Vector3, len(sf.profile))...),
		buf:    make([]math32.Vector3, max(n, len(sf.profile))),
	}
	ev.across.SetLooping(sf.cycle)
	return ev
}

func (ev *evaluator) point(u, v float32) math32.Vector3 {
	for i, c := range ev.sf.profile {
		ev.across.Set(i, c.EvaluateInto(u, ev.buf))
	}
	return ev.across.EvaluateInto(v, ev.buf)
}

func (ev *evaluator) partials(u, v float32) (du, dv math32.Vector3) {
	dt := ev.sf.dt
	anchor := ev.point(u, v)
	du = ev.point(u+dt, v).Sub(anchor).DivScalar(dt)
	dv = ev.point(u, v+dt).Sub(anchor).DivScalar(dt)
	return
}

func (ev *evaluator) gradient(u, v float32) math32.Vector3 {
	du, dv := ev.partials(u, v)
	return du.Add(dv)
}

func (ev *evaluator) gradient2(u, v float32) math32.Vector3 {
	dt := ev.sf.dt
	anchor := ev.gradient(u, v)
	du := ev.gradient(u+dt, v).Sub(anchor).DivScalar(dt)
	dv := ev.gradient(u, v+dt).Sub(anchor).DivScalar(dt)
	return du.Add(dv)
}

func (ev *evaluator) normal(u, v float32) math32.Vector3 {
	var estimate math32.Vector3
	switch ev.sf.normals {
	case NormalCurvature:
		estimate = ev.gradient2(u, v)
	case NormalCross:
		du, dv := ev.partials(u, v)
		estimate = du.Cross(dv)
	default:
		estimate = ev.gradient(u, v)
	}
	if n, ok := unit(estimate); ok {
		return n
	}
	if ev.sf.normals != NormalGradient {
		if n, ok := unit(ev.gradient(u, v)); ok {
			return n
		}
	}
	tracer().Debugf("degenerate normal at (%g,%g)", u, v)
	return math32.Vec3(0, 1, 0)
}

// unit normalizes a vector. It returns false for zero-length or non-finite
// vectors.
func unit(vec math32.Vector3) (math32.Vector3, bool) {
	l := vec.Length()
	if l == 0 || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return vec, false
	}
	return vec.DivScalar(l), true
}
