// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Triangle is a triangle with corners A, B and C.
type Triangle struct {
	A, B, C Vector3
}

// NewTriangle returns a new [Triangle] with the given corners.
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{a, b, c}
}

// Normal returns the unit normal of the triangle a, b, c, which points
// toward the side from which the corners run counter-clockwise.
// It is the zero vector for a triangle with no area.
func Normal(a, b, c Vector3) Vector3 {
	return c.Sub(b).Cross(a.Sub(b)).Normal()
}

// Area returns the area of the triangle.
func (t Triangle) Area() float32 {
	return t.C.Sub(t.B).Cross(t.A.Sub(t.B)).Length() / 2
}

// Midpoint returns the centroid of the triangle.
func (t Triangle) Midpoint() Vector3 {
	return t.A.Add(t.B).Add(t.C).MulScalar(float32(1) / 3)
}

// Normal returns the unit normal of the triangle; see [Normal].
func (t Triangle) Normal() Vector3 {
	return Normal(t.A, t.B, t.C)
}
