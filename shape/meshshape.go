// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/uvsphere/math32"
	"cogentcore.org/uvsphere/mesh"
)

// MeshShape adapts a [mesh.Mesh] on the unit sphere, such as the result
// of [NewCapSphere], to the [Mesh] interface. Normals are the normalized
// vertex positions, and texture coordinates are (0, 0) unless the mesh
// has them (see [AssignUV]).
type MeshShape struct {
	ShapeBase

	// Mesh is the source mesh.
	Mesh *mesh.Mesh
}

// NewMeshShape returns a new [MeshShape] for the given mesh.
func NewMeshShape(ms *mesh.Mesh) *MeshShape {
	return &MeshShape{Mesh: ms}
}

// MeshSize returns the number of vertices and of triangle indices in the mesh.
func (sh *MeshShape) MeshSize() (numVertex, numIndex int) {
	return sh.Mesh.NumVertices(), 3 * sh.Mesh.NumFaces()
}

// Set writes the mesh into the given allocated arrays, offset by Pos.
func (sh *MeshShape) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	ms := sh.Mesh
	vidx := sh.VertexOffset * 3
	tidx := sh.VertexOffset * 2
	for vh := range ms.Vertices() {
		k := vh.Idx()
		p := ms.Point(vh)
		vertex.SetVector3(vidx+k*3, p.Add(sh.Pos))
		normal.SetVector3(vidx+k*3, p.Normal())
		texcoord.SetVector2(tidx+k*2, ms.TexCoord(vh))
	}
	vOff := uint32(sh.VertexOffset)
	ii := sh.IndexOffset
	for fh := range ms.Faces() {
		f := ms.FaceVertices(fh)
		index.Set(ii, vOff+uint32(f[0]), vOff+uint32(f[1]), vOff+uint32(f[2]))
		ii += 3
	}
	sh.CBBox = BBoxFromVertices(vertex, sh.VertexOffset, ms.NumVertices())
}
