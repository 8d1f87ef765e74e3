// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and matrix package
// for 3D graphics, organized column-major as the GPU expects.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Mathematical constants.
const (
	Pi = math.Pi
)

// Floating-point limit values.
const (
	MaxFloat32             = math.MaxFloat32
	SmallestNonzeroFloat32 = math.SmallestNonzeroFloat32
)

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 {
	return math32.Tan(x)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// IsNaN reports whether x is a "not-a-number" value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// IsInf reports whether x is an infinity, according to sign.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) float32 {
	return math32.Inf(sign)
}

// DegToRad converts a number of degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * (Pi / 180)
}

// RadToDeg converts a number of radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * (180 / Pi)
}
