// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/uvsphere/math32"
	"cogentcore.org/uvsphere/mesh"
)

// CapSphereOptions are the options for building a cap sphere.
type CapSphereOptions struct {

	// RequireEven rejects odd precisions with [ErrOddPrecision].
	// An even precision puts a ring on the equator and samples
	// both hemispheres symmetrically.
	RequireEven bool
}

// NewCapSphere returns a unit sphere mesh with n rings of n vertices
// plus one south pole vertex. See [CapSphereOptions.New].
func NewCapSphere(n int) (*mesh.Mesh, error) {
	return CapSphereOptions{}.New(n)
}

// CapSphereN returns the number of vertices and faces of a cap sphere
// with the given precision.
func CapSphereN(n int) (numVertex, numFace int) {
	return n*n + 1, 2*n*(n-1) + n
}

// New returns a unit sphere mesh with z as the polar axis.
// Ring j in [0, n) is at polar angle j*Pi/n and has n vertices at
// azimuth 2*Pi*i/n. Ring 0 is not collapsed: its n vertices all sit at
// the north pole (0, 0, 1). Adjacent rings are stitched with two
// triangles per column, wrapping at the seam, and the last ring is
// fanned into an explicit south pole vertex at (0, 0, -1), which is
// the last vertex. Faces are wound counter-clockwise seen from outside.
//
// n must be at least 3, since smaller grids repeat vertices or edges.
// The mesh has no texture coordinates; see [AssignUV].
func (o CapSphereOptions) New(n int) (*mesh.Mesh, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: %d (cap sphere needs at least 3)", ErrInvalidPrecision, n)
	}
	if o.RequireEven && n%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddPrecision, n)
	}
	numVertex, numFace := CapSphereN(n)
	ms := mesh.New(numVertex, numFace)

	// handles indexed by ring*n + column
	vhs := make([]mesh.VertexHandle, 0, numVertex)
	for j := 0; j < n; j++ {
		theta := float32(j) * math32.Pi / float32(n)
		rc := math32.Sin(theta)
		h := math32.Cos(theta)
		for i := 0; i < n; i++ {
			sa, ca := math32.Sincos(2 * float32(i) * math32.Pi / float32(n))
			vhs = append(vhs, ms.AddVertex(math32.Vec3(rc*ca, rc*sa, h)))
		}
	}

	for i := 0; i < n-1; i++ {
		for j := 0; j < n; j++ {
			topRight := vhs[i*n+j]
			topLeft := vhs[i*n+(j+1)%n]
			bottomRight := vhs[(i+1)*n+j]
			bottomLeft := vhs[(i+1)*n+(j+1)%n]
			if _, err := ms.AddFace(bottomRight, bottomLeft, topRight); err != nil {
				return nil, err
			}
			if _, err := ms.AddFace(bottomLeft, topLeft, topRight); err != nil {
				return nil, err
			}
		}
	}

	k := len(vhs) - 1
	pole := ms.AddVertex(math32.Vec3(0, 0, -1))
	for i := 0; i < n; i++ {
		if _, err := ms.AddFace(vhs[k-i], vhs[k-(i+1)%n], pole); err != nil {
			return nil, err
		}
	}
	return ms, nil
}
