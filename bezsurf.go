/*
Package bezsurf implements Bezier curves and Bezier surfaces, and the
triangulation of surfaces into meshes.

Sub-packages:

	bezier   evaluation of Bezier curves over any lerp-capable point type
	surface  curve-of-curves surfaces, finite-difference normals, triangulation
	mesh     vertex/index buffers handed to a renderer
	polygon  flattening of 2D curves into polygons, polygon clipping

The root package holds numeric helpers and the 2D point type Pair.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezsurf

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bezsurf'
func tracer() tracing.Trace {
	return tracing.Select("bezsurf")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Pair Data Type ========================================================

// Pair is a 2D point, stored as a complex number.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return Origin
	}
	return Pair(c)
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Lerp interpolates linearly between p and q: p + s⋅(q - p).
// s outside of [0,1] extrapolates.
func (p Pair) Lerp(q Pair, s float64) Pair {
	return p + Pair(complex(s, 0))*(q-p)
}

// Dist returns the euclidean distance between p and q.
func (p Pair) Dist(q Pair) float64 {
	return cmplx.Abs((q - p).C())
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
// theta is in radians.
func (p Pair) Rotated(theta float64) Pair {
	return C2P(p.C() * cmplx.Rect(1, theta)).Zap()
}
