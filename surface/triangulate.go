package surface

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"
	"github.com/npillmayer/bezsurf/mesh"
)

// Triangulate converts the surface into a triangle mesh, sampling a grid of
// uSegs × vSegs points. Grid point (i,j) is the surface point at
//
//	(u,v) = (i/uSegs, j/vSegs),    0 ≤ i < uSegs, 0 ≤ j < vSegs
//
// i.e., the parameter interval is sampled including 0 and excluding 1.
// Vertex (i,j) has index j⋅uSegs + i, its UV coordinates are (u,v), its
// normal is Normal(u,v).
//
// Every grid cell spanned by (i,j), (i+1,j), (i,j+1), (i+1,j+1) is split into
// triangles
//
//	(i,j) (i+1,j) (i,j+1)   and   (i+1,j) (i+1,j+1) (i,j+1)
//
// which are counter-clockwise when seen from the side the u×v cross product
// points to. If the surface loops in direction v, the last row of the grid is
// connected to the first one. If all of the profile curves loop, the last
// column is connected to the first one. The mesh therefore has
// 6⋅cu⋅cv indices, with cu = uSegs-1 (cu = uSegs if looping in u) and
// cv = vSegs-1 (cv = vSegs if looping in v).
//
// As u = 1 and v = 1 are never sampled, a mesh of an open surface stops one
// grid step short of the far edges of the patch (at (uSegs-1)/uSegs and
// (vSegs-1)/vSegs), and coarse grids leave a noticeable strip uncovered. For
// looping directions the seam closes the gap, as u = 1 coincides with u = 0.
//
// Grids with more than 2^32 vertices cannot be indexed by uint32 and are
// rejected with ErrInvalidGridSize.
func (sf *Surface) Triangulate(uSegs, vSegs int) (*mesh.Mesh, error) {
	if uSegs < 2 || vSegs < 2 {
		tracer().Errorf("cannot triangulate %d x %d grid", uSegs, vSegs)
		return nil, fmt.Errorf("%w, have %d x %d", ErrInvalidGridSize, uSegs, vSegs)
	}
	if uint64(uSegs)*uint64(vSegs) > math.MaxUint32+1 {
		tracer().Errorf("%d x %d grid exceeds uint32 indices", uSegs, vSegs)
		return nil, fmt.Errorf("%w, %d x %d vertices overflow uint32 indices",
			ErrInvalidGridSize, uSegs, vSegs)
	}
	ev := sf.evaluator()
	vertices := make([]mesh.Vertex, 0, uSegs*vSegs)
	for j := 0; j < vSegs; j++ {
		v := float32(j) / float32(vSegs)
		for i := 0; i < uSegs; i++ {
			u := float32(i) / float32(uSegs)
			vertices = append(vertices, mesh.Vertex{
				Position: ev.point(u, v),
				Normal:   ev.normal(u, v),
				UV:       math32.Vec2(u, v),
			})
		}
	}
	indices := gridIndices(uSegs, vSegs, sf.loopsU(), sf.cycle)
	tracer().Debugf("triangulated %d x %d grid into %d triangles", uSegs, vSegs, len(indices)/3)
	build := sf.build
	if build == nil {
		build = mesh.New
	}
	m, err := build(vertices, indices)
	if err != nil {
		tracer().Errorf("mesh construction: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrMeshConstructionFailed, err)
	}
	return m, nil
}

// gridIndices returns the triangle indices for a row-major grid of
// ucnt × vcnt vertices, optionally wrapping around in u and/or v.
func gridIndices(ucnt, vcnt int, wrapU, wrapV bool) []uint32 {
	cu, cv := ucnt-1, vcnt-1
	if wrapU {
		cu = ucnt
	}
	if wrapV {
		cv = vcnt
	}
	indices := make([]uint32, 0, 6*cu*cv)
	for j := 0; j < cv; j++ {
		row, next := j*ucnt, ((j+1)%vcnt)*ucnt
		for i := 0; i < cu; i++ {
			right := (i + 1) % ucnt
			a, b := uint32(row+i), uint32(row+right)
			c, d := uint32(next+i), uint32(next+right)
			indices = append(indices,
				/* face 1 */ a, b, c,
				/* face 2 */ b, d, c)
		}
	}
	return indices
}
