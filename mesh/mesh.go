// Package mesh holds indexed triangle meshes, ready to be handed to a renderer.
//
// A mesh stores flat float32 buffers for positions, normals and texture
// coordinates, and a uint32 index buffer with three indices per triangle.
// Meshes are value objects: they do not reference whatever produced them.
package mesh

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mesh'
func tracer() tracing.Trace {
	return tracing.Select("mesh")
}

var (
	// ErrNoVertices indicates an empty vertex list.
	ErrNoVertices = errors.New("mesh has no vertices")
	// ErrIndexCount indicates an index list which does not consist of triangles.
	ErrIndexCount = errors.New("mesh index count is not a multiple of 3")
	// ErrIndexRange indicates an index referencing a non-existing vertex.
	ErrIndexRange = errors.New("mesh index out of range")
	// ErrResolution indicates too few segments for a generated shape.
	ErrResolution = errors.New("mesh resolution too low")
)

// Vertex is a single mesh vertex.
type Vertex struct {
	Position math32.Vector3
	Normal   math32.Vector3
	UV       math32.Vector2
}

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Position math32.ArrayF32 // 3 floats per vertex
	Normal   math32.ArrayF32 // 3 floats per vertex
	TexCoord math32.ArrayF32 // 2 floats per vertex
	Index    math32.ArrayU32 // 3 indices per triangle, counter-clockwise
	BBox     math32.Box3     // bounding box of all positions
}

// New creates a mesh from a list of vertices and a list of triangle indices.
// It returns an error if the lists are inconsistent.
func New(vertices []Vertex, indices []uint32) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices", ErrIndexCount, len(indices))
	}
	nv := len(vertices)
	for i, idx := range indices {
		if int(idx) >= nv {
			return nil, fmt.Errorf("%w: index[%d] = %d, %d vertices", ErrIndexRange, i, idx, nv)
		}
	}
	m := &Mesh{
		Position: make(math32.ArrayF32, nv*3),
		Normal:   make(math32.ArrayF32, nv*3),
		TexCoord: make(math32.ArrayF32, nv*2),
		Index:    make(math32.ArrayU32, len(indices)),
	}
	m.BBox.SetEmpty()
	for i, vtx := range vertices {
		m.Position.SetVector3(i*3, vtx.Position)
		m.Normal.SetVector3(i*3, vtx.Normal)
		m.TexCoord.Set(i*2, vtx.UV.X, vtx.UV.Y)
		m.BBox.ExpandByPoint(vtx.Position)
	}
	copy(m.Index, indices)
	tracer().Debugf("mesh with %d vertices, %d triangles", nv, len(indices)/3)
	return m, nil
}

// NumVertex returns the number of vertices.
func (m *Mesh) NumVertex() int {
	return len(m.Position) / 3
}

// NumTriangles returns the number of triangles.
func (m *Mesh) NumTriangles() int {
	return len(m.Index) / 3
}

// Vertex returns vertex i.
func (m *Mesh) Vertex(i int) Vertex {
	return Vertex{
		Position: math32.Vec3(m.Position[i*3], m.Position[i*3+1], m.Position[i*3+2]),
		Normal:   math32.Vec3(m.Normal[i*3], m.Normal[i*3+1], m.Normal[i*3+2]),
		UV:       math32.Vec2(m.TexCoord[i*2], m.TexCoord[i*2+1]),
	}
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c uint32) {
	return m.Index[i*3], m.Index[i*3+1], m.Index[i*3+2]
}
