// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides an indexed triangle mesh with half-edge
// connectivity. Vertices and faces are referred to by opaque handles
// that are only valid within the mesh that created them.
package mesh

import (
	"fmt"
	"iter"

	"cogentcore.org/uvsphere/base/errors"
	"cogentcore.org/uvsphere/math32"
)

var (
	// ErrInvalidHandle is returned when a handle does not refer to
	// a vertex of the mesh.
	ErrInvalidHandle = errors.New("mesh: invalid vertex handle")

	// ErrDegenerateFace is returned when a face repeats a vertex.
	ErrDegenerateFace = errors.New("mesh: face repeats a vertex")

	// ErrComplexEdge is returned when a face would add a directed edge
	// that another face already has, which happens when the winding is
	// inconsistent or more than two faces share an edge.
	ErrComplexEdge = errors.New("mesh: complex edge")
)

// VertexHandle refers to a vertex of a [Mesh].
type VertexHandle int32

// FaceHandle refers to a face of a [Mesh].
type FaceHandle int32

// InvalidVertex is the zero-information vertex handle.
const InvalidVertex VertexHandle = -1

// InvalidFace is the zero-information face handle.
const InvalidFace FaceHandle = -1

// Idx returns the index of the vertex in the mesh vertex order.
func (vh VertexHandle) Idx() int { return int(vh) }

// Idx returns the index of the face in the mesh face order.
func (fh FaceHandle) Idx() int { return int(fh) }

// halfEdge is a directed edge from one vertex to another.
type halfEdge struct {
	from, to VertexHandle
}

// Mesh is a triangle mesh. Vertices and faces are kept in creation order,
// which is the order all iteration and packing functions use.
// Each face owns three half-edges, keyed by direction, so a face can
// look up its neighbor across an edge through the opposite half-edge.
//
// The zero value is an empty mesh ready to use.
type Mesh struct {
	points    []math32.Vector3
	texCoords []math32.Vector2
	faces     [][3]VertexHandle

	// halfEdges maps each directed edge to the face that owns it.
	halfEdges map[halfEdge]FaceHandle
}

// New returns a new empty mesh with room for the given
// number of vertices and faces.
func New(numVertex, numFace int) *Mesh {
	return &Mesh{
		points:    make([]math32.Vector3, 0, numVertex),
		faces:     make([][3]VertexHandle, 0, numFace),
		halfEdges: make(map[halfEdge]FaceHandle, 3*numFace),
	}
}

// NumVertices returns the number of vertices.
func (ms *Mesh) NumVertices() int { return len(ms.points) }

// NumFaces returns the number of faces.
func (ms *Mesh) NumFaces() int { return len(ms.faces) }

// NumHalfEdges returns the number of directed face edges, 3 per face.
func (ms *Mesh) NumHalfEdges() int { return len(ms.halfEdges) }

// NumEdges returns the number of undirected edges.
func (ms *Mesh) NumEdges() int {
	n := 0
	for he := range ms.halfEdges {
		if _, ok := ms.halfEdges[halfEdge{he.to, he.from}]; !ok || he.from < he.to {
			n++
		}
	}
	return n
}

// IsValid returns whether the handle refers to a vertex of this mesh.
func (ms *Mesh) IsValid(vh VertexHandle) bool {
	return vh >= 0 && int(vh) < len(ms.points)
}

// AddVertex adds a vertex at the given point and returns its handle.
func (ms *Mesh) AddVertex(p math32.Vector3) VertexHandle {
	ms.points = append(ms.points, p)
	if ms.texCoords != nil {
		ms.texCoords = append(ms.texCoords, math32.Vector2{})
	}
	return VertexHandle(len(ms.points) - 1)
}

// AddFace adds a triangle with the given vertices in counter-clockwise
// order as seen from the front. The vertices must be distinct, already
// added vertices, and none of the face's directed edges may already
// belong to another face. Nothing is changed when an error is returned.
func (ms *Mesh) AddFace(a, b, c VertexHandle) (FaceHandle, error) {
	vs := [3]VertexHandle{a, b, c}
	for _, vh := range vs {
		if !ms.IsValid(vh) {
			return InvalidFace, fmt.Errorf("%w: %d", ErrInvalidHandle, vh)
		}
	}
	if a == b || b == c || c == a {
		return InvalidFace, fmt.Errorf("%w: (%d, %d, %d)", ErrDegenerateFace, a, b, c)
	}
	if ms.halfEdges == nil {
		ms.halfEdges = make(map[halfEdge]FaceHandle)
	}
	for i := range 3 {
		he := halfEdge{vs[i], vs[(i+1)%3]}
		if _, has := ms.halfEdges[he]; has {
			return InvalidFace, fmt.Errorf("%w: %d -> %d", ErrComplexEdge, he.from, he.to)
		}
	}
	fh := FaceHandle(len(ms.faces))
	ms.faces = append(ms.faces, vs)
	for i := range 3 {
		ms.halfEdges[halfEdge{vs[i], vs[(i+1)%3]}] = fh
	}
	return fh, nil
}

// Point returns the position of the given vertex.
func (ms *Mesh) Point(vh VertexHandle) math32.Vector3 {
	return ms.points[vh]
}

// Points returns a copy of all vertex positions in vertex order.
func (ms *Mesh) Points() []math32.Vector3 {
	return append([]math32.Vector3(nil), ms.points...)
}

// FaceVertices returns the three vertices of the given face,
// in the order they were added.
func (ms *Mesh) FaceVertices(fh FaceHandle) [3]VertexHandle {
	return ms.faces[fh]
}

// Vertices returns an iterator over all vertex handles in vertex order.
func (ms *Mesh) Vertices() iter.Seq[VertexHandle] {
	return func(yield func(VertexHandle) bool) {
		for i := range ms.points {
			if !yield(VertexHandle(i)) {
				return
			}
		}
	}
}

// Faces returns an iterator over all face handles in face order.
func (ms *Mesh) Faces() iter.Seq[FaceHandle] {
	return func(yield func(FaceHandle) bool) {
		for i := range ms.faces {
			if !yield(FaceHandle(i)) {
				return
			}
		}
	}
}

// OppositeFace returns the face on the other side of the edge from a to b,
// which is the face that owns the half-edge from b to a.
func (ms *Mesh) OppositeFace(a, b VertexHandle) (FaceHandle, bool) {
	fh, ok := ms.halfEdges[halfEdge{b, a}]
	return fh, ok
}

// IsBoundary returns whether the directed edge from a to b belongs to
// a face and has no opposite half-edge.
func (ms *Mesh) IsBoundary(a, b VertexHandle) bool {
	if _, ok := ms.halfEdges[halfEdge{a, b}]; !ok {
		return false
	}
	_, ok := ms.halfEdges[halfEdge{b, a}]
	return !ok
}

// BoundaryEdges returns the number of half-edges that have no opposite.
func (ms *Mesh) BoundaryEdges() int {
	n := 0
	for he := range ms.halfEdges {
		if _, ok := ms.halfEdges[halfEdge{he.to, he.from}]; !ok {
			n++
		}
	}
	return n
}

// IsClosed returns whether every edge is shared by exactly two faces.
func (ms *Mesh) IsClosed() bool {
	return len(ms.faces) > 0 && ms.BoundaryEdges() == 0
}

// BoundaryLength returns the summed length of all boundary half-edges.
func (ms *Mesh) BoundaryLength() float32 {
	var l float32
	for he := range ms.halfEdges {
		if _, ok := ms.halfEdges[halfEdge{he.to, he.from}]; !ok {
			l += ms.points[he.from].DistanceTo(ms.points[he.to])
		}
	}
	return l
}

// FaceArea returns the area of the given face.
func (ms *Mesh) FaceArea(fh FaceHandle) float32 {
	f := ms.faces[fh]
	tri := math32.NewTriangle(ms.points[f[0]], ms.points[f[1]], ms.points[f[2]])
	return tri.Area()
}

// FaceNormal returns the unit normal of the given face by the right-hand
// rule over its vertex order, or the zero vector if the face has no area.
func (ms *Mesh) FaceNormal(fh FaceHandle) math32.Vector3 {
	f := ms.faces[fh]
	return math32.Normal(ms.points[f[0]], ms.points[f[1]], ms.points[f[2]])
}

// BBox returns the bounding box of all vertices.
func (ms *Mesh) BBox() math32.Box3 {
	bb := math32.B3Empty()
	bb.ExpandByPoints(ms.points)
	return bb
}
