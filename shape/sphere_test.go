// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"cogentcore.org/uvsphere/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func TestSphereSizes(t *testing.T) {
	for _, prec := range []int{1, 2, 3, 4, 7, 16, 48, 100} {
		sp, err := NewSphere(prec)
		require.NoError(t, err)
		nv, ni := SphereN(prec)
		assert.Equal(t, (prec+1)*(prec+1), nv)
		assert.Equal(t, 6*prec*prec, ni)
		assert.Equal(t, nv, sp.NumVertices())
		assert.Equal(t, ni, sp.NumIndices())
		assert.Len(t, sp.Positions(), nv)
		assert.Len(t, sp.Normals(), nv)
		assert.Len(t, sp.Tangents(), nv)
		assert.Len(t, sp.TexCoords(), nv)
		assert.Len(t, sp.Indices(), ni)
		for _, ix := range sp.Indices() {
			assert.Less(t, int(ix), nv)
		}
	}
}

func TestSphereInvalid(t *testing.T) {
	for _, prec := range []int{0, -1, -48} {
		sp, err := NewSphere(prec)
		assert.ErrorIs(t, err, ErrInvalidPrecision)
		assert.Nil(t, sp)
	}
}

func TestSphereUnit(t *testing.T) {
	sp, err := NewSphere(48)
	require.NoError(t, err)
	for k, p := range sp.Positions() {
		assert.InDelta(t, 1, p.Length(), tol, "slot %d", k)
		assert.Equal(t, p, sp.Normals()[k])
	}
}

func TestSphereTangents(t *testing.T) {
	for _, prec := range []int{1, 2, 5, 48, 360} {
		sp, err := NewSphere(prec)
		require.NoError(t, err)
		for k, tg := range sp.Tangents() {
			assert.False(t, tg.IsZero(), "precision %d slot %d", prec, k)
			assert.InDelta(t, 0, tg.Dot(sp.Normals()[k]), tol)
		}
	}

	sp, err := NewSphere(4)
	require.NoError(t, err)
	// equator, longitude 90: position (0, 0, 1), tangent up x (0, 0, 1) = (1, 0, 0)
	k := sp.Slot(2, 1)
	p := sp.Positions()[k]
	assert.InDelta(t, 0, p.X, tol)
	assert.InDelta(t, 0, p.Y, tol)
	assert.InDelta(t, 1, p.Z, tol)
	tg := sp.Tangents()[k]
	assert.InDelta(t, 1, tg.X, tol)
	assert.InDelta(t, 0, tg.Y, tol)
	assert.InDelta(t, 0, tg.Z, tol)
}

func TestSpherePoles(t *testing.T) {
	for _, prec := range []int{1, 2, 6, 48} {
		sp, err := NewSphere(prec)
		require.NoError(t, err)
		// both pole rings collapse to a single point with zero ring
		// radius, so every column gets the fixed tangent
		for j := 0; j <= prec; j++ {
			bot := sp.Slot(0, j)
			assert.Equal(t, math32.Vec3(0, -1, 0), sp.Positions()[bot], "precision %d column %d", prec, j)
			assert.Equal(t, math32.Vec3(0, 0, -1), sp.Tangents()[bot], "precision %d column %d", prec, j)
			top := sp.Slot(prec, j)
			assert.Equal(t, math32.Vec3(0, 1, 0), sp.Positions()[top], "precision %d column %d", prec, j)
			assert.Equal(t, math32.Vec3(0, 0, -1), sp.Tangents()[top], "precision %d column %d", prec, j)
		}
	}

	sp, err := NewSphere(6)
	require.NoError(t, err)
	// longitude 0 starts on -x
	p := sp.Positions()[sp.Slot(3, 0)]
	assert.InDelta(t, -1, p.X, tol)
}

func TestSphereSeam(t *testing.T) {
	for _, prec := range []int{1, 3, 8, 48} {
		sp, err := NewSphere(prec)
		require.NoError(t, err)
		for i := 0; i <= prec; i++ {
			first := sp.Slot(i, 0)
			last := sp.Slot(i, prec)
			for _, buf := range [][]math32.Vector3{sp.Positions(), sp.Normals()} {
				assert.InDelta(t, buf[first].X, buf[last].X, tol)
				assert.InDelta(t, buf[first].Y, buf[last].Y, tol)
				assert.InDelta(t, buf[first].Z, buf[last].Z, tol)
			}
		}
	}
}

func TestSphereTexCoords(t *testing.T) {
	prec := 8
	sp, err := NewSphere(prec)
	require.NoError(t, err)
	for i := 0; i <= prec; i++ {
		for j := 0; j <= prec; j++ {
			uv := sp.TexCoords()[sp.Slot(i, j)]
			assert.InDelta(t, float32(i)/float32(prec), uv.X, tol)
			assert.InDelta(t, 2*float32(j)/float32(prec), uv.Y, tol)
		}
	}
	assert.Equal(t, math32.Vec2(1, 2), sp.TexCoords()[sp.NumVertices()-1])
}

func TestSphereIndices(t *testing.T) {
	sp, err := NewSphere(1)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2, 1, 3, 2}, sp.Indices())

	sp, err = NewSphere(2)
	require.NoError(t, err)
	assert.Equal(t, []uint32{
		0, 1, 3, 1, 4, 3,
		1, 2, 4, 2, 5, 4,
		3, 4, 6, 4, 7, 6,
		4, 5, 7, 5, 8, 7,
	}, sp.Indices())
}

func TestSphereWinding(t *testing.T) {
	sp, err := NewSphere(16)
	require.NoError(t, err)
	pos := sp.Positions()
	idx := sp.Indices()
	degenerate := 0
	for f := 0; f < len(idx); f += 3 {
		tri := math32.NewTriangle(pos[idx[f]], pos[idx[f+1]], pos[idx[f+2]])
		if tri.Area() < 1e-4 {
			degenerate++
			continue
		}
		assert.Greater(t, tri.Normal().Dot(tri.Midpoint()), float32(0), "triangle %d", f/3)
	}
	// one per column in each pole row
	assert.Equal(t, 2*16, degenerate)
}

func TestSphereIdempotent(t *testing.T) {
	a, err := NewSphere(32)
	require.NoError(t, err)
	b, err := NewSphere(32)
	require.NoError(t, err)
	assert.Equal(t, a.Positions(), b.Positions())
	assert.Equal(t, a.Normals(), b.Normals())
	assert.Equal(t, a.Tangents(), b.Tangents())
	assert.Equal(t, a.TexCoords(), b.TexCoords())
	assert.Equal(t, a.Indices(), b.Indices())
}

func TestSphereSet(t *testing.T) {
	sp, err := NewSphere(4)
	require.NoError(t, err)
	vertex, normal, texcoord, index := NewArrays(sp)
	sp.Set(vertex, normal, texcoord, index)
	for k := range sp.NumVertices() {
		assert.Equal(t, sp.Positions()[k], vertex.Vector3(k*3))
		assert.Equal(t, sp.Normals()[k], normal.Vector3(k*3))
		assert.Equal(t, sp.TexCoords()[k], texcoord.Vector2(k*2))
	}
	assert.Equal(t, sp.Indices(), []uint32(index))

	tangent := math32.NewArrayF32(len(vertex), len(vertex))
	sp.SetTangents(tangent)
	for k := range sp.NumVertices() {
		assert.Equal(t, sp.Tangents()[k], tangent.Vector3(k*3))
	}

	bb := sp.MeshBBox()
	assert.InDelta(t, -1, bb.Min.Y, tol)
	assert.InDelta(t, 1, bb.Max.Y, tol)
	assert.Equal(t, bb, BBoxFromVertices(vertex, 0, sp.NumVertices()))
}

func TestSphereMesh(t *testing.T) {
	sp, err := NewSphere(6)
	require.NoError(t, err)
	ms, err := sp.Mesh()
	require.NoError(t, err)
	assert.Equal(t, sp.NumVertices(), ms.NumVertices())
	assert.Equal(t, sp.NumIndices()/3, ms.NumFaces())
	assert.Equal(t, sp.Positions(), ms.Points())
	assert.Equal(t, sp.TexCoords(), ms.TexCoords())
	assert.Equal(t, 4*6, ms.BoundaryEdges())
	for fh := range ms.Faces() {
		f := ms.FaceVertices(fh)
		k := 3 * fh.Idx()
		assert.Equal(t, sp.Indices()[k:k+3], []uint32{uint32(f[0]), uint32(f[1]), uint32(f[2])})
	}
}
