// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector2 is a 2D vector, used for texture coordinates.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// FromSlice sets the vector from the two floats at offset in slice.
func (v *Vector2) FromSlice(slice []float32, offset int) {
	v.X, v.Y = slice[offset], slice[offset+1]
}
