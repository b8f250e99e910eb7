package mesh

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"
)

// UVSphere creates a sphere around the origin, with nlon segments of
// longitude and nlat segments of latitude. Vertex 0 is the north pole (+Y),
// followed by nlat-1 rings of nlon vertices each, and the south pole last.
// Triangles are wound counter-clockwise when seen from outside.
func UVSphere(radius float32, nlon, nlat int) (*Mesh, error) {
	if nlon < 3 || nlat < 2 {
		return nil, fmt.Errorf("%w: sphere needs nlon >= 3 and nlat >= 2, have %d x %d",
			ErrResolution, nlon, nlat)
	}
	vertices := make([]Vertex, 0, nlon*(nlat-1)+2)
	indices := make([]uint32, 0, nlon*(nlat-1)*6)
	latStep := math.Pi / float64(nlat)
	lonStep := 2 * math.Pi / float64(nlon)

	up := math32.Vec3(0, 1, 0)
	vertices = append(vertices, Vertex{Position: up.MulScalar(radius), Normal: up, UV: math32.Vec2(0.5, 1)})
	for j := 1; j < nlat; j++ {
		phi := math.Pi/2 - float64(j)*latStep
		sphi, cphi := math.Sincos(phi)
		for i := 0; i < nlon; i++ {
			sth, cth := math.Sincos(float64(i) * lonStep)
			n := math32.Vec3(float32(cphi*cth), float32(sphi), float32(cphi*sth))
			vertices = append(vertices, Vertex{
				Position: n.MulScalar(radius),
				Normal:   n,
				UV:       math32.Vec2(float32(i)/float32(nlon), 1-float32(j)/float32(nlat)),
			})
		}
	}
	down := math32.Vec3(0, -1, 0)
	vertices = append(vertices, Vertex{Position: down.MulScalar(radius), Normal: down, UV: math32.Vec2(0.5, 0)})

	ring := func(j, i int) uint32 { // vertex i of ring j, longitude wrapping
		return uint32(1 + (j-1)*nlon + i%nlon)
	}
	for i := 0; i < nlon; i++ {
		indices = append(indices, 0, ring(1, i+1), ring(1, i))
	}
	for j := 1; j < nlat-1; j++ {
		for i := 0; i < nlon; i++ {
			tl, tr := ring(j, i), ring(j, i+1)
			bl, br := ring(j+1, i), ring(j+1, i+1)
			indices = append(indices, tl, tr, bl, bl, tr, br)
		}
	}
	south := uint32(len(vertices) - 1)
	for i := 0; i < nlon; i++ {
		indices = append(indices, south, ring(nlat-1, i), ring(nlat-1, i+1))
	}
	return New(vertices, indices)
}
