// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"cogentcore.org/uvsphere/math32"
	"cogentcore.org/uvsphere/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapSphereCounts(t *testing.T) {
	ms, err := NewCapSphere(4)
	require.NoError(t, err)
	// 4 rings of 4 plus the south pole
	assert.Equal(t, 17, ms.NumVertices())
	assert.Equal(t, 2*4*(4-1)+4, ms.NumFaces())
	assert.Equal(t, 28, ms.NumFaces())
	assert.False(t, ms.HasTexCoords())

	for _, n := range []int{3, 4, 5, 10, 32, 100} {
		ms, err := NewCapSphere(n)
		require.NoError(t, err)
		nv, nf := CapSphereN(n)
		assert.Equal(t, nv, ms.NumVertices())
		assert.Equal(t, nf, ms.NumFaces())
	}
}

func TestCapSphereInvalid(t *testing.T) {
	for _, n := range []int{-4, 0, 1, 2} {
		ms, err := NewCapSphere(n)
		assert.ErrorIs(t, err, ErrInvalidPrecision, "n = %d", n)
		assert.Nil(t, ms)
	}

	ms, err := CapSphereOptions{RequireEven: true}.New(5)
	assert.ErrorIs(t, err, ErrOddPrecision)
	assert.Nil(t, ms)

	ms, err = CapSphereOptions{RequireEven: true}.New(6)
	assert.NoError(t, err)
	assert.Equal(t, 37, ms.NumVertices())

	_, err = CapSphereOptions{RequireEven: true}.New(0)
	assert.ErrorIs(t, err, ErrInvalidPrecision)
}

func TestCapSphereVertices(t *testing.T) {
	n := 4
	ms, err := NewCapSphere(n)
	require.NoError(t, err)
	for vh := range ms.Vertices() {
		assert.InDelta(t, 1, ms.Point(vh).Length(), tol)
	}
	// ring 0 is n coincident vertices at the north pole
	for i := 0; i < n; i++ {
		assert.Equal(t, math32.Vec3(0, 0, 1), ms.Point(mesh.VertexHandle(i)))
	}
	// the equator ring starts on +x and goes toward +y
	p := ms.Point(mesh.VertexHandle(2*n + 1))
	assert.InDelta(t, 0, p.X, tol)
	assert.InDelta(t, 1, p.Y, tol)
	assert.InDelta(t, 0, p.Z, tol)
	// the pole is last
	assert.Equal(t, math32.Vec3(0, 0, -1), ms.Point(mesh.VertexHandle(n*n)))
}

func TestCapSphereFaceOrder(t *testing.T) {
	ms, err := NewCapSphere(4)
	require.NoError(t, err)
	// first quad: bottomRight, bottomLeft, topRight then bottomLeft, topLeft, topRight
	assert.Equal(t, [3]mesh.VertexHandle{4, 5, 0}, ms.FaceVertices(0))
	assert.Equal(t, [3]mesh.VertexHandle{5, 1, 0}, ms.FaceVertices(1))
	// seam quad wraps to column 0
	assert.Equal(t, [3]mesh.VertexHandle{7, 4, 3}, ms.FaceVertices(6))
	assert.Equal(t, [3]mesh.VertexHandle{4, 0, 3}, ms.FaceVertices(7))
	// pole fan walks the last ring backward
	assert.Equal(t, [3]mesh.VertexHandle{15, 14, 16}, ms.FaceVertices(24))
	assert.Equal(t, [3]mesh.VertexHandle{12, 15, 16}, ms.FaceVertices(27))
}

func TestCapSphereTopology(t *testing.T) {
	for _, n := range []int{3, 4, 7, 16} {
		ms, err := NewCapSphere(n)
		require.NoError(t, err)
		// the only boundary is ring 0, collapsed onto the north pole
		assert.Equal(t, n, ms.BoundaryEdges())
		assert.Equal(t, float32(0), ms.BoundaryLength())
		assert.False(t, ms.IsClosed())
		assert.Equal(t, 3*ms.NumFaces(), ms.NumHalfEdges())
		assert.Equal(t, 3*n*n-n, ms.NumEdges())
		assert.Equal(t, 1, ms.NumVertices()-ms.NumEdges()+ms.NumFaces())
		for i := 0; i < n; i++ {
			assert.True(t, ms.IsBoundary(mesh.VertexHandle((i+1)%n), mesh.VertexHandle(i)))
		}
	}
}

func TestCapSphereWinding(t *testing.T) {
	n := 8
	ms, err := NewCapSphere(n)
	require.NoError(t, err)
	degenerate := 0
	for fh := range ms.Faces() {
		if ms.FaceArea(fh) == 0 {
			degenerate++
			f := ms.FaceVertices(fh)
			assert.Less(t, f[1].Idx(), n, "zero area face %d is not on ring 0", fh)
			assert.Less(t, f[2].Idx(), n, "zero area face %d is not on ring 0", fh)
			continue
		}
		f := ms.FaceVertices(fh)
		c := ms.Point(f[0]).Add(ms.Point(f[1])).Add(ms.Point(f[2]))
		assert.Greater(t, ms.FaceNormal(fh).Dot(c), float32(0), "face %d points inward", fh)
	}
	assert.Equal(t, n, degenerate)
}

func TestCapSphereIdempotent(t *testing.T) {
	a, err := NewCapSphere(12)
	require.NoError(t, err)
	b, err := NewCapSphere(12)
	require.NoError(t, err)
	assert.Equal(t, a.Points(), b.Points())
	assert.Equal(t, PackIndices(a), PackIndices(b))
}

func TestMeshShape(t *testing.T) {
	ms, err := NewCapSphere(6)
	require.NoError(t, err)
	AssignUV(ms)
	sh := NewMeshShape(ms)
	nv, ni := sh.MeshSize()
	assert.Equal(t, ms.NumVertices(), nv)
	assert.Equal(t, 3*ms.NumFaces(), ni)

	vertex, normal, texcoord, index := NewArrays(sh)
	sh.Set(vertex, normal, texcoord, index)
	for vh := range ms.Vertices() {
		k := vh.Idx()
		assert.Equal(t, ms.Point(vh), vertex.Vector3(k*3))
		assert.InDelta(t, 1, normal.Vector3(k*3).Length(), tol)
		assert.Equal(t, ms.TexCoord(vh), texcoord.Vector2(k*2))
	}
	assert.Equal(t, PackIndices(ms), []uint32(index))
	bb := sh.MeshBBox()
	assert.Equal(t, float32(1), bb.Max.Z)
	assert.Equal(t, float32(-1), bb.Min.Z)
}
