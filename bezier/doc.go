// Package bezier evaluates Bezier curves over arbitrary point types.
/*
A curve is defined by an ordered sequence of control points. Points may be of
any type which is able to interpolate linearly between two of its instances,
i.e. which has a method

	Lerp(other V, s F) V

for a floating point scalar type F. Examples are bezsurf.Pair (2D, float64)
and math32.Vector2 / math32.Vector3 (float32) of Cogent Core.

Open curves are evaluated by de Casteljau's algorithm: the control polygon is
reduced level by level, interpolating consecutive points at the curve
parameter, until a single point remains.

	c := bezier.New[bezsurf.Pair, float64](bezsurf.P(0, 0), bezsurf.P(1, 2), bezsurf.P(3, 0))
	pt := c.Evaluate(0.5)

A curve may be closed into a loop by calling Cycle(). A looping curve wraps
its control points (the point after the last one is the first one) and is
evaluated by a cyclic reduction, which interpolates within a window of n
consecutive points of the wrapped sequence. The window slides along the loop
as the curve parameter runs from 0 to 1, making the curve a closed, smooth
loop without a distinguished starting point: re-labelling the control points
by one position shifts the curve by 1/n in parameter space. Looping curves are
used as ring-shaped profiles, e.g. cross-sections of cylinders.

Control points may be changed in place at any time (e.g., when dragging them
in an editor). Evaluation never caches intermediate results.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier
