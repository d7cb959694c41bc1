// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/uvsphere/math32"
	"cogentcore.org/uvsphere/mesh"
)

// Vertex is the interleaved vertex record handed to a renderer:
// a position followed by a texture coordinate, all float32.
type Vertex struct {
	Position [3]float32
	TexCoord [2]float32
}

const (
	// VertexStride is the number of floats per [Vertex].
	VertexStride = 5

	// TexCoordOffset is the float offset of TexCoord within a [Vertex].
	TexCoordOffset = 3
)

// Pack returns one [Vertex] per mesh vertex, in mesh vertex order,
// so that the indexes returned by [PackIndices] refer to them.
// Vertices without texture coordinates get (0, 0).
func Pack(ms *mesh.Mesh) []Vertex {
	vs := make([]Vertex, 0, ms.NumVertices())
	for vh := range ms.Vertices() {
		p := ms.Point(vh)
		uv := ms.TexCoord(vh)
		vs = append(vs, Vertex{
			Position: [3]float32{p.X, p.Y, p.Z},
			TexCoord: [2]float32{uv.X, uv.Y},
		})
	}
	return vs
}

// PackIndices returns the three vertex indexes of every face,
// in mesh face order.
func PackIndices(ms *mesh.Mesh) []uint32 {
	idx := make([]uint32, 0, 3*ms.NumFaces())
	for fh := range ms.Faces() {
		f := ms.FaceVertices(fh)
		idx = append(idx, uint32(f[0].Idx()), uint32(f[1].Idx()), uint32(f[2].Idx()))
	}
	return idx
}

// Floats returns the records as one flat array with [VertexStride]
// floats per vertex.
func Floats(vs []Vertex) math32.ArrayF32 {
	fs := math32.NewArrayF32(0, len(vs)*VertexStride)
	for _, v := range vs {
		fs.Append(v.Position[:]...)
		fs.Append(v.TexCoord[:]...)
	}
	return fs
}

// Unpack returns the positions and texture coordinates of the records.
func Unpack(vs []Vertex) ([]math32.Vector3, []math32.Vector2) {
	pos := make([]math32.Vector3, len(vs))
	uvs := make([]math32.Vector2, len(vs))
	for i, v := range vs {
		pos[i] = math32.Vec3(v.Position[0], v.Position[1], v.Position[2])
		uvs[i] = math32.Vec2(v.TexCoord[0], v.TexCoord[1])
	}
	return pos, uvs
}
