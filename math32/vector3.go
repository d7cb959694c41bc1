// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector3 is a 3D vector or point with X, Y and Z components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// IsZero returns whether all components are 0.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// SetScalar sets all components to the given value.
func (v *Vector3) SetScalar(s float32) {
	v.X, v.Y, v.Z = s, s, s
}

// FromSlice sets the vector from the three floats at offset in slice.
func (v *Vector3) FromSlice(slice []float32, offset int) {
	v.X, v.Y, v.Z = slice[offset], slice[offset+1], slice[offset+2]
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vec3(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vec3(v.X-other.X, v.Y-other.Y, v.Z-other.Z)
}

// MulScalar returns v scaled by s.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vec3(v.X*s, v.Y*s, v.Z*s)
}

// DivScalar returns v divided by s, or the zero vector if s is 0.
func (v Vector3) DivScalar(s float32) Vector3 {
	if s == 0 {
		return Vector3{}
	}
	return v.MulScalar(1 / s)
}

// SetMin sets each component to the smaller of it and the
// matching component of other.
func (v *Vector3) SetMin(other Vector3) {
	v.X, v.Y, v.Z = min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)
}

// SetMax sets each component to the larger of it and the
// matching component of other.
func (v *Vector3) SetMax(other Vector3) {
	v.X, v.Y, v.Z = max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)
}

// Dot returns the dot product of v and other.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// LengthSquared returns the squared length of v.
func (v Vector3) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the length of v.
func (v Vector3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normal returns v scaled to unit length, or the zero vector
// if v has no length.
func (v Vector3) Normal() Vector3 {
	return v.DivScalar(v.Length())
}

// DistanceTo returns the distance between the points v and other.
func (v Vector3) DistanceTo(other Vector3) float32 {
	return v.Sub(other).Length()
}

// Cross returns the cross product v x other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vec3(v.Y*other.Z-v.Z*other.Y, v.Z*other.X-v.X*other.Z, v.X*other.Y-v.Y*other.X)
}
