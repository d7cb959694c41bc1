// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-6

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{5, 10, 15}, Vec3(5, 10, 15))
	assert.Equal(t, "(-1, 7, 3)", Vec3(-1, 7, 3).String())

	v := Vector3{}
	assert.True(t, v.IsZero())
	v.SetScalar(8.5)
	assert.Equal(t, Vector3{8.5, 8.5, 8.5}, v)
	assert.False(t, v.IsZero())

	v.FromSlice([]float32{0, 1, 2, 3}, 1)
	assert.Equal(t, Vec3(1, 2, 3), v)

	v.SetMin(Vec3(0, 5, 3))
	assert.Equal(t, Vec3(0, 2, 3), v)
	v.SetMax(Vec3(-1, 4, 3))
	assert.Equal(t, Vec3(0, 4, 3), v)
}

func TestVector3Math(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, -5, 6)

	assert.Equal(t, Vec3(5, -3, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(0.5, 1, 1.5), a.DivScalar(2))
	assert.Equal(t, Vector3{}, a.DivScalar(0))
	assert.Equal(t, float32(12), a.Dot(b))
	assert.Equal(t, Vec3(27, 6, -13), a.Cross(b))
	assert.Equal(t, float32(0), a.Cross(b).Dot(a))

	v := Vec3(3, 4, 12)
	assert.Equal(t, float32(169), v.LengthSquared())
	assert.Equal(t, float32(13), v.Length())
	assert.Equal(t, float32(13), v.DistanceTo(Vector3{}))
	assert.InDelta(t, 1, v.Normal().Length(), standardTol)
	assert.InDelta(t, 3.0/13, v.Normal().X, standardTol)
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
}

func TestVector2(t *testing.T) {
	v := Vec2(0.25, 0.5)
	assert.Equal(t, Vector2{0.25, 0.5}, v)
	v.FromSlice([]float32{9, 1, 2}, 1)
	assert.Equal(t, Vec2(1, 2), v)
}
