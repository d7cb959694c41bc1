// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/uvsphere/math32"

// Group is a group of shapes written into one set of arrays,
// one after the other.
type Group struct {
	ShapeBase

	// list of shapes in group
	Shapes []Mesh
}

// NewGroup returns a new group of the given shapes.
func NewGroup(shapes ...Mesh) *Group {
	return &Group{Shapes: shapes}
}

// MeshSize returns number of vertex, index points in this shape element.
func (sb *Group) MeshSize() (numVertex, numIndex int) {
	for _, sh := range sb.Shapes {
		nv, ni := sh.MeshSize()
		numVertex += nv
		numIndex += ni
	}
	return
}

// Set sets points in given allocated arrays, also updates offsets
func (sb *Group) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	vo := sb.VertexOffset
	io := sb.IndexOffset
	sb.CBBox.SetEmpty()
	for _, sh := range sb.Shapes {
		sh.SetOffsets(vo, io)
		sh.Set(vertex, normal, texcoord, index)
		sb.CBBox.ExpandByBox(sh.MeshBBox())
		nv, ni := sh.MeshSize()
		vo += nv
		io += ni
	}
}

// SetTangents writes tangents for each shape that has them, after
// [Group.Set] has assigned the offsets. Vertices of shapes without
// tangents are left as they are.
func (sb *Group) SetTangents(tangent math32.ArrayF32) {
	for _, sh := range sb.Shapes {
		if tg, ok := sh.(Tangenter); ok {
			tg.SetTangents(tangent)
		}
	}
}
