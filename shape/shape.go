// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates UV-sphere geometry. Two strategies are provided:
// [NewCapSphere] builds a half-edge [mesh.Mesh] from a ring grid closed by
// an explicit south pole vertex, and [NewSphere] builds a [Sphere] of
// parallel position, normal, texture coordinate and tangent buffers whose
// first and last rings collapse onto the poles.
//
// Both results can be handed to a renderer through the [Mesh] interface,
// which writes vertex data into flat arrays at given offsets so several
// shapes can share one set of buffers (see [Group]).
package shape

import "cogentcore.org/uvsphere/math32"

// Mesh is the interface for all shapes that can be written into
// the flat vertex, normal, texture coordinate and index arrays
// that a renderer uploads. Only indexed triangle meshes are supported.
type Mesh interface {
	// MeshSize returns the number of vertex points and index points
	// in this shape element.
	MeshSize() (numVertex, numIndex int)

	// Offsets returns the starting offsets for vertices and indexes
	// in the full shape arrays, in terms of points, not floats.
	Offsets() (vtxOffset, idxOffset int)

	// SetOffsets sets the starting offsets for vertices and indexes
	// in the full shape arrays, in terms of points, not floats.
	SetOffsets(vtxOffset, idxOffset int)

	// Set writes the shape into the given allocated arrays,
	// starting at the offsets. Indexes are relative to the full
	// vertex array, so they include the vertex offset.
	Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32)

	// MeshBBox returns the bounding box for the shape, typically
	// centered around 0. This is only valid after Set has been called.
	MeshBBox() math32.Box3
}

// Tangenter is implemented by shapes that also provide a per-vertex
// tangent, for normal mapping.
type Tangenter interface {
	// SetTangents writes one tangent per vertex into the given array,
	// starting at the vertex offset.
	SetTangents(tangent math32.ArrayF32)
}

// ShapeBase is the base shape element.
type ShapeBase struct {

	// vertex offset, in points
	VertexOffset int

	// index offset, in points
	IndexOffset int

	// cubic bounding box in local coords
	CBBox math32.Box3

	// all shapes take a 3D position offset to enable composition
	Pos math32.Vector3
}

// Offsets returns starting offset for vertices, indexes in full shape array,
// in terms of points, not floats
func (sb *ShapeBase) Offsets() (vtxOffset, idxOffset int) {
	return sb.VertexOffset, sb.IndexOffset
}

// SetOffsets sets starting offsets for vertices, indexes in full shape array
func (sb *ShapeBase) SetOffsets(vtxOffset, idxOffset int) {
	sb.VertexOffset, sb.IndexOffset = vtxOffset, idxOffset
}

// MeshBBox returns the bounding box for the shape, typically centered around 0
// This is only valid after Set has been called.
func (sb *ShapeBase) MeshBBox() math32.Box3 {
	return sb.CBBox
}

// NewArrays returns vertex, normal, texture coordinate and index arrays
// sized for the given shape.
func NewArrays(sh Mesh) (vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	numVertex, numIndex := sh.MeshSize()
	vertex = math32.NewArrayF32(numVertex*3, numVertex*3)
	normal = math32.NewArrayF32(numVertex*3, numVertex*3)
	texcoord = math32.NewArrayF32(numVertex*2, numVertex*2)
	index = math32.NewArrayU32(numIndex, numIndex)
	return
}

// BBoxFromVertices returns the bounding box updated from the range of vertex points
func BBoxFromVertices(vertex math32.ArrayF32, vtxOffset int, numVertex int) math32.Box3 {
	bb := math32.B3Empty()
	vidx := vtxOffset * 3
	var vtx math32.Vector3
	for vi := 0; vi < numVertex; vi++ {
		vtx.FromSlice(vertex, vidx+vi*3)
		bb.ExpandByPoint(vtx)
	}
	return bb
}
