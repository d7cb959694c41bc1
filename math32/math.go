// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and math package
// for generating 3D mesh geometry.
package math32

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Pi is the float32 value of pi.
const Pi = math.Pi

// DegToRadFactor is the number of radians per degree.
const DegToRadFactor = Pi / 180

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// The scalar functions below forward to chewxy/math32, which computes
// in float32 without converting through float64.

// Asin returns the arcsine of x in radians, or NaN outside [-1, 1].
func Asin(x float32) float32 { return math32.Asin(x) }

// Atan2 returns the arc tangent of y/x, using the signs of both
// to pick the quadrant.
func Atan2(y, x float32) float32 { return math32.Atan2(y, x) }

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 { return math32.Cos(x) }

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 { return math32.Sin(x) }

// Sincos returns Sin(x), Cos(x).
func Sincos(x float32) (sin, cos float32) { return math32.Sincos(x) }

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Max returns the larger of x or y, and NaN if either is NaN.
func Max(x, y float32) float32 { return math32.Max(x, y) }

// IsNaN reports whether x is a "not-a-number" value.
func IsNaN(x float32) bool { return math32.IsNaN(x) }

// Clamp returns x limited to the closed interval [a, b].
func Clamp[T constraints.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
