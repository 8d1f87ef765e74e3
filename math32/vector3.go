// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar(scalar float32) Vector3 {
	return Vector3{X: scalar, Y: scalar, Z: scalar}
}

// Set sets this vector X, Y and Z components.
func (v *Vector3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector3) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
	v.Z = scalar
}

// SetZero sets all of the vector's components to zero.
func (v *Vector3) SetZero() {
	v.SetScalar(0)
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vec3(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vec3(v.X-other.X, v.Y-other.Y, v.Z-other.Z)
}

// Mul multiplies each component of this vector by the corresponding one from the
// other given vector and returns the resulting vector.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vec3(v.X*other.X, v.Y*other.Y, v.Z*other.Z)
}

// MulScalar multiplies each component of this vector by the given scalar value
// and returns the resulting vector.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vec3(v.X*s, v.Y*s, v.Z*s)
}

// DivScalar divides each component of this vector by the given scalar value
// and returns the resulting vector. It does not check for divide by zero
// (divide by zero results in +/- Inf).
func (v Vector3) DivScalar(scalar float32) Vector3 {
	return Vec3(v.X/scalar, v.Y/scalar, v.Z/scalar)
}

// Negate returns the vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vec3(-v.X, -v.Y, -v.Z)
}

// Min returns a vector where each component is the minimum of the
// corresponding component of this and the other given vector.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vec3(Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z))
}

// SetMin sets this vector's components to the minimum of itself and the other given vector.
func (v *Vector3) SetMin(other Vector3) {
	*v = v.Min(other)
}

// Max returns a vector where each component is the maximum of the
// corresponding component of this and the other given vector.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vec3(Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z))
}

// SetMax sets this vector's components to the maximum of itself and the other given vector.
func (v *Vector3) SetMax(other Vector3) {
	*v = v.Max(other)
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of this vector with the other given vector.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vec3(v.Y*other.Z-v.Z*other.Y, v.Z*other.X-v.X*other.Z, v.X*other.Y-v.Y*other.X)
}

// Length returns the length of this vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normal returns this vector divided by its length (its unit vector).
// The zero vector is returned unchanged.
func (v Vector3) Normal() Vector3 {
	lsq := v.LengthSquared()
	if lsq == 0 {
		return Vector3{}
	}
	return v.DivScalar(Sqrt(lsq))
}

// DistanceTo returns the distance between these two vectors as points.
func (v Vector3) DistanceTo(other Vector3) float32 {
	return Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the squared distance between these two vectors as points.
func (v Vector3) DistanceToSquared(other Vector3) float32 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Lerp returns a vector that is the linear interpolation between this vector and
// the other given vector, with the given interpolation factor.
func (v Vector3) Lerp(other Vector3, alpha float32) Vector3 {
	return Vec3(v.X+(other.X-v.X)*alpha, v.Y+(other.Y-v.Y)*alpha, v.Z+(other.Z-v.Z)*alpha)
}
