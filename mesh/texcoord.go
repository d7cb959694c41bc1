// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/uvsphere/math32"

// RequestTexCoords adds the per-vertex texture coordinate attribute,
// initialized to (0, 0) for every existing vertex. Vertices added
// afterward also get (0, 0). It is a no-op if the attribute exists.
func (ms *Mesh) RequestTexCoords() {
	if ms.texCoords != nil {
		return
	}
	ms.texCoords = make([]math32.Vector2, len(ms.points), cap(ms.points))
}

// HasTexCoords returns whether the texture coordinate attribute exists.
func (ms *Mesh) HasTexCoords() bool {
	return ms.texCoords != nil
}

// SetTexCoord sets the texture coordinate of the given vertex,
// adding the attribute if needed.
func (ms *Mesh) SetTexCoord(vh VertexHandle, uv math32.Vector2) {
	ms.RequestTexCoords()
	ms.texCoords[vh] = uv
}

// TexCoord returns the texture coordinate of the given vertex,
// which is (0, 0) if the attribute does not exist.
func (ms *Mesh) TexCoord(vh VertexHandle) math32.Vector2 {
	if ms.texCoords == nil {
		return math32.Vector2{}
	}
	return ms.texCoords[vh]
}

// TexCoords returns a copy of all texture coordinates in vertex order,
// or nil if the attribute does not exist.
func (ms *Mesh) TexCoords() []math32.Vector2 {
	if ms.texCoords == nil {
		return nil
	}
	return append([]math32.Vector2(nil), ms.texCoords...)
}
