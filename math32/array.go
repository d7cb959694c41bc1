// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// ArrayF32 is a flat float32 array of vertex data, as uploaded to a GPU.
// Positions are float offsets, not point indexes.
type ArrayF32 []float32

// NewArrayF32 returns a new array with the given size and capacity.
func NewArrayF32(size, capacity int) ArrayF32 {
	return make([]float32, size, capacity)
}

// NumBytes returns the size of the array in bytes.
func (a *ArrayF32) NumBytes() int {
	return len(*a) * 4
}

// Append appends the given values.
func (a *ArrayF32) Append(v ...float32) {
	*a = append(*a, v...)
}

// Vector2 returns the [Vector2] at the given position.
func (a ArrayF32) Vector2(pos int) Vector2 {
	var v Vector2
	v.FromSlice(a, pos)
	return v
}

// Vector3 returns the [Vector3] at the given position.
func (a ArrayF32) Vector3(pos int) Vector3 {
	var v Vector3
	v.FromSlice(a, pos)
	return v
}

// SetVector2 stores v at the given position.
func (a ArrayF32) SetVector2(pos int, v Vector2) {
	a[pos], a[pos+1] = v.X, v.Y
}

// SetVector3 stores v at the given position.
func (a ArrayF32) SetVector3(pos int, v Vector3) {
	a[pos], a[pos+1], a[pos+2] = v.X, v.Y, v.Z
}

// ArrayU32 is a flat uint32 array of triangle indexes.
type ArrayU32 []uint32

// NewArrayU32 returns a new array with the given size and capacity.
func NewArrayU32(size, capacity int) ArrayU32 {
	return make([]uint32, size, capacity)
}

// Set stores the values starting at the given position.
func (a ArrayU32) Set(pos int, v ...uint32) {
	copy(a[pos:], v)
}
