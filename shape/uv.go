// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/uvsphere/math32"
	"cogentcore.org/uvsphere/mesh"
)

// AssignUV sets the texture coordinate of every vertex of the mesh
// from its position by equirectangular projection:
//
//	u = 0.5 + atan2(z, x) / (2*Pi)
//	v = 0.5 - asin(y) / Pi
//
// Positions are assumed to be on the unit sphere. Triangles that
// cross the x < 0, z = 0 half plane get a u discontinuity at the seam;
// that is a property of the projection and is not corrected here.
func AssignUV(ms *mesh.Mesh) {
	for vh := range ms.Vertices() {
		ms.SetTexCoord(vh, SphericalUV(ms.Point(vh)))
	}
}

// SphericalUV returns the equirectangular texture coordinate of
// a point on the unit sphere, as used by [AssignUV].
func SphericalUV(p math32.Vector3) math32.Vector2 {
	u := 0.5 + math32.Atan2(p.Z, p.X)/(2*math32.Pi)
	v := 0.5 - math32.Asin(math32.Clamp(p.Y, -1, 1))/math32.Pi
	return math32.Vec2(u, v)
}
