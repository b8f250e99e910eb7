// Package polygon deals with straight-edged polygons in the plane, e.g.
// flattened Bezier curves. Polygons may be combined by set operations
// (union, intersection, difference), which are delegated to
// github.com/akavel/polyclip-go.
/*
BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/bezsurf"
	"github.com/npillmayer/bezsurf/bezier"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to key 'polygon'.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// ErrTooFewKnots indicates a request for a polygon with less than 3 knots.
var ErrTooFewKnots = errors.New("polygon needs at least 3 knots")

// Polygon is a sequence of knots, connected by straight lines.
// Build polygons starting from NullPolygon().
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p bezsurf.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Pt returns knot (i mod N). An empty polygon returns the origin.
func (pg *Polygon) Pt(i int) bezsurf.Pair {
	n := pg.N()
	if n == 0 {
		return bezsurf.Origin
	}
	i = ((i % n) + n) % n
	return bezsurf.P(pg.contour[i].X, pg.contour[i].Y)
}

// Box creates a rectangle from its top left and bottom right corners.
// Knots run counter-clockwise, starting at the top left corner.
func Box(topleft, bottomright bezsurf.Pair) *Polygon {
	return NullPolygon().
		Knot(topleft).
		Knot(bezsurf.P(topleft.X(), bottomright.Y())).
		Knot(bottomright).
		Knot(bezsurf.P(bottomright.X(), topleft.Y())).
		Cycle()
}

// Flatten samples a 2D Bezier curve into a polygon of k knots. A looping
// curve results in a closed polygon, sampled once around the loop.
// An open curve results in an open polygon including both end points.
func Flatten(c *bezier.Curve[bezsurf.Pair, float64], k int) (*Polygon, error) {
	if k < 3 {
		return nil, fmt.Errorf("%w, requested %d", ErrTooFewKnots, k)
	}
	pg := NullPolygon()
	for _, p := range c.Sample(k) {
		pg.Knot(p)
	}
	if c.IsCycle() {
		pg.Cycle()
	}
	L().Debugf("flattened curve into polygon %s", AsString(pg))
	return pg, nil
}

// BBox returns the lower left and upper right corners of the bounding box.
func (pg *Polygon) BBox() (bezsurf.Pair, bezsurf.Pair) {
	r := pg.contour.BoundingBox()
	return bezsurf.P(r.Min.X, r.Min.Y), bezsurf.P(r.Max.X, r.Max.Y)
}

// Contains is a predicate: is p inside the area of the polygon?
// Open polygons are treated as if closed.
func (pg *Polygon) Contains(p bezsurf.Pair) bool {
	return pg.contour.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// Area returns the signed area of the polygon, treated as closed. The area is
// positive for knots running counter-clockwise.
func (pg *Polygon) Area() float64 {
	var a float64
	n := pg.N()
	for i := 0; i < n; i++ {
		p, q := pg.contour[i], pg.contour[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Union returns the union of two polygons. The result may consist of more
// than one polygon.
func Union(a, b *Polygon) []*Polygon {
	return construct(polyclip.UNION, a, b)
}

// Intersection returns the intersection of two polygons.
func Intersection(a, b *Polygon) []*Polygon {
	return construct(polyclip.INTERSECTION, a, b)
}

// Difference returns a minus b.
func Difference(a, b *Polygon) []*Polygon {
	return construct(polyclip.DIFFERENCE, a, b)
}

func construct(op polyclip.Op, a, b *Polygon) []*Polygon {
	subject := polyclip.Polygon{a.contour.Clone()}
	clipping := polyclip.Polygon{b.contour.Clone()}
	result := subject.Construct(op, clipping)
	pgs := make([]*Polygon, 0, len(result))
	for _, c := range result {
		pgs = append(pgs, &Polygon{contour: c, cycle: true})
	}
	L().Debugf("polygon operation %d resulted in %d contours", op, len(pgs))
	return pgs
}

// AsString returns a polygon as a (debugging) string, in MetaPost-like
// notation:
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(pg.Pt(i).String())
	}
	if pg.IsCycle() {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
