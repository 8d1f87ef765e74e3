// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3] and w component.
func Vector4FromVector3(v Vector3, w float32) Vector4 {
	nv := Vector4{}
	nv.SetFromVector3(v, w)
	return nv
}

// Set sets this vector X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// SetFromVector3 sets this vector from a Vector3 and W.
func (v *Vector4) SetFromVector3(other Vector3, w float32) {
	v.X = other.X
	v.Y = other.Y
	v.Z = other.Z
	v.W = w
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vec4(v.X+other.X, v.Y+other.Y, v.Z+other.Z, v.W+other.W)
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vec4(v.X-other.X, v.Y-other.Y, v.Z-other.Z, v.W-other.W)
}

// MulScalar multiplies each component of this vector by the given scalar value
// and returns the resulting vector.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vec4(v.X*s, v.Y*s, v.Z*s, v.W*s)
}

// DivScalar divides each component of this vector by the given scalar value
// and returns the resulting vector. It does not check for divide by zero
// (divide by zero results in +/- Inf).
func (v Vector4) DivScalar(scalar float32) Vector4 {
	return Vec4(v.X/scalar, v.Y/scalar, v.Z/scalar, v.W/scalar)
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the length of this vector.
func (v Vector4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
func (v Vector4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normal returns this vector divided by its length (its unit vector).
// The zero vector is returned unchanged.
func (v Vector4) Normal() Vector4 {
	lsq := v.LengthSquared()
	if lsq == 0 {
		return Vector4{}
	}
	return v.DivScalar(Sqrt(lsq))
}

// MulMatrix4 returns this vector multiplied by the given 4x4 matrix (m·v).
func (v Vector4) MulMatrix4(m *Matrix4) Vector4 {
	return Vector4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// PerspDiv returns the 3-vector of normalized display coordinates (NDC)
// from this homogeneous vector, by dividing by the 4th W component.
func (v Vector4) PerspDiv() Vector3 {
	return Vec3(v.X/v.W, v.Y/v.W, v.Z/v.W)
}

// ToVector3 returns the X, Y and Z components of this vector, dropping W.
func (v Vector4) ToVector3() Vector3 {
	return Vec3(v.X, v.Y, v.Z)
}
