// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 is an axis-aligned 3D bounding box from Min to Max.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns a new empty [Box3], which any point expands.
func B3Empty() Box3 {
	var b Box3
	b.SetEmpty()
	return b
}

// SetEmpty sets Min to +Infinity and Max to -Infinity.
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// ExpandByPoint grows the box to include the point.
func (b *Box3) ExpandByPoint(p Vector3) {
	b.Min.SetMin(p)
	b.Max.SetMax(p)
}

// ExpandByPoints grows the box to include all the points.
func (b *Box3) ExpandByPoints(points []Vector3) {
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// ExpandByBox grows the box to include the other box.
func (b *Box3) ExpandByBox(other Box3) {
	b.ExpandByPoint(other.Min)
	b.ExpandByPoint(other.Max)
}
