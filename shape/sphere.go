// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/uvsphere/math32"
	"cogentcore.org/uvsphere/mesh"
)

// Sphere is a unit sphere with y as the polar axis, stored as parallel
// per-vertex buffers and a flat triangle index buffer. Vertex slot
// i*(Precision+1)+j holds ring i and column j, where ring 0 is the pole
// at y = -1 and ring Precision is the pole at y = 1. Column Precision repeats
// the longitude of column 0 so that texture coordinates do not wrap,
// and the pole rings repeat the pole point once per column.
//
// A Sphere is built once by [NewSphere] and must not be modified;
// the slices returned by its accessors are shared, not copied.
type Sphere struct {
	ShapeBase

	// Precision is the number of rings and columns of quads.
	Precision int

	positions []math32.Vector3
	texCoords []math32.Vector2
	normals   []math32.Vector3
	tangents  []math32.Vector3
	indices   math32.ArrayU32
}

// SphereN returns the number of vertices and indexes of a sphere
// with the given precision.
func SphereN(precision int) (numVertex, numIndex int) {
	return (precision + 1) * (precision + 1), 6 * precision * precision
}

// NewSphere returns a new unit [Sphere] with the given precision,
// which must be at least 1.
//
// For ring i the latitude angle is 180 - i*180/precision degrees and
// y is its cosine; for column j the longitude is j*360/precision
// degrees. The position is (-cos(lon)*s, y, sin(lon)*s) where
// s = sqrt(1 - y*y), and the normal equals the position.
// The texture coordinate is (i/precision, 2*j/precision), so v
// runs to 2 across the full longitude range.
// The tangent is up x normal, except at the poles where that cross
// product vanishes and the tangent is (0, 0, -1).
//
// Each grid cell is split into the triangles (a, a+1, b) and
// (a+1, b+1, b), with a the slot of (i, j) and b the slot of (i+1, j),
// which are counter-clockwise seen from outside. The triangles touching
// a pole with two corners have zero area.
func NewSphere(precision int) (*Sphere, error) {
	if precision < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrecision, precision)
	}
	numVertex, numIndex := SphereN(precision)
	sp := &Sphere{
		Precision: precision,
		positions: make([]math32.Vector3, numVertex),
		texCoords: make([]math32.Vector2, numVertex),
		normals:   make([]math32.Vector3, numVertex),
		tangents:  make([]math32.Vector3, numVertex),
		indices:   math32.NewArrayU32(numIndex, numIndex),
	}
	prec := float32(precision)
	up := math32.Vec3(0, 1, 0)
	for i := 0; i <= precision; i++ {
		y := math32.Cos(math32.DegToRad(180 - float32(i)*180/prec))
		sinTheta := math32.Sqrt(math32.Max(0, 1-y*y))
		for j := 0; j <= precision; j++ {
			sl, cl := math32.Sincos(math32.DegToRad(float32(j) * 360 / prec))
			pt := math32.Vec3(-cl*sinTheta, y, sl*sinTheta)
			k := i*(precision+1) + j
			sp.positions[k] = pt
			sp.normals[k] = pt
			sp.texCoords[k] = math32.Vec2(float32(i)/prec, float32(j)/prec*2)
			if sinTheta == 0 {
				sp.tangents[k] = math32.Vec3(0, 0, -1)
			} else {
				sp.tangents[k] = up.Cross(pt)
			}
		}
	}

	p1 := precision + 1
	for i := 0; i < precision; i++ {
		for j := 0; j < precision; j++ {
			a := uint32(i*p1 + j)
			b := uint32((i+1)*p1 + j)
			sp.indices.Set(6*(i*precision+j), a, a+1, b, a+1, b+1, b)
		}
	}
	return sp, nil
}

// NumVertices returns the number of vertices, (Precision+1)^2.
func (sp *Sphere) NumVertices() int { return len(sp.positions) }

// NumIndices returns the number of triangle corner indexes, 6*Precision^2.
func (sp *Sphere) NumIndices() int { return len(sp.indices) }

// Positions returns the vertex positions. The slice must not be modified.
func (sp *Sphere) Positions() []math32.Vector3 { return sp.positions }

// Normals returns the vertex normals. The slice must not be modified.
func (sp *Sphere) Normals() []math32.Vector3 { return sp.normals }

// Tangents returns the vertex tangents. The slice must not be modified.
func (sp *Sphere) Tangents() []math32.Vector3 { return sp.tangents }

// TexCoords returns the vertex texture coordinates.
// The slice must not be modified.
func (sp *Sphere) TexCoords() []math32.Vector2 { return sp.texCoords }

// Indices returns the triangle corner indexes, three per triangle.
// The slice must not be modified.
func (sp *Sphere) Indices() []uint32 { return sp.indices }

// Slot returns the vertex slot of ring i and column j.
func (sp *Sphere) Slot(i, j int) int {
	return i*(sp.Precision+1) + j
}

// MeshSize returns the number of vertices and indices the sphere writes.
func (sp *Sphere) MeshSize() (numVertex, numIndex int) {
	return len(sp.positions), len(sp.indices)
}

// Set writes the sphere into the given allocated arrays, offset by Pos.
func (sp *Sphere) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	vidx := sp.VertexOffset * 3
	tidx := sp.VertexOffset * 2
	bb := math32.B3Empty()
	for k, p := range sp.positions {
		pt := p.Add(sp.Pos)
		vertex.SetVector3(vidx+k*3, pt)
		normal.SetVector3(vidx+k*3, sp.normals[k])
		texcoord.SetVector2(tidx+k*2, sp.texCoords[k])
		bb.ExpandByPoint(pt)
	}
	vOff := uint32(sp.VertexOffset)
	for k, ix := range sp.indices {
		index[sp.IndexOffset+k] = vOff + ix
	}
	sp.CBBox = bb
}

// SetTangents writes the tangents into the given allocated array at
// the same vertex offset as [Sphere.Set].
func (sp *Sphere) SetTangents(tangent math32.ArrayF32) {
	vidx := sp.VertexOffset * 3
	for k, t := range sp.tangents {
		tangent.SetVector3(vidx+k*3, t)
	}
}

// Mesh returns a new [mesh.Mesh] with the positions, texture
// coordinates and triangles of the sphere, for export.
// The duplicated pole and seam vertices stay distinct vertices,
// so the result is open along the seam and around the poles.
func (sp *Sphere) Mesh() (*mesh.Mesh, error) {
	ms := mesh.New(len(sp.positions), len(sp.indices)/3)
	ms.RequestTexCoords()
	for k, p := range sp.positions {
		vh := ms.AddVertex(p)
		ms.SetTexCoord(vh, sp.texCoords[k])
	}
	for k := 0; k < len(sp.indices); k += 3 {
		ix := sp.indices[k : k+3]
		_, err := ms.AddFace(mesh.VertexHandle(ix[0]), mesh.VertexHandle(ix[1]), mesh.VertexHandle(ix[2]))
		if err != nil {
			return nil, err
		}
	}
	return ms, nil
}
