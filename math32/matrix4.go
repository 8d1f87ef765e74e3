// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "errors"

// Matrix4 is a 4x4 matrix organized internally as column matrix,
// the layout expected by GPU uniform and vertex data.
type Matrix4 [16]float32

// Identity is the 4x4 identity matrix.
var Identity = func() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}()

// NewMatrix4 returns a new identity [Matrix4] matrix.
func NewMatrix4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Set sets all the elements of the matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth. The internal storage remains
// column-major.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0] = n11
	m[4] = n12
	m[8] = n13
	m[12] = n14
	m[1] = n21
	m[5] = n22
	m[9] = n23
	m[13] = n24
	m[2] = n31
	m[6] = n32
	m[10] = n33
	m[14] = n34
	m[3] = n41
	m[7] = n42
	m[11] = n43
	m[15] = n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetZero sets this matrix as the zero matrix.
func (m *Matrix4) SetZero() {
	m.Set(
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	)
}

// SetTranslation sets this matrix to a translation matrix from the given x, y and z values.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m.Set(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// SetRotationY sets this matrix to a rotation matrix of the given angle,
// in radians, around the Y axis.
func (m *Matrix4) SetRotationY(theta float32) {
	c := Cos(theta)
	s := Sin(theta)
	m.Set(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// Mul returns this matrix times the other given matrix (m*other, in that order).
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// MulMatrices sets this matrix as the product a*b (in that order).
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	a11 := a[0]
	a12 := a[4]
	a13 := a[8]
	a14 := a[12]
	a21 := a[1]
	a22 := a[5]
	a23 := a[9]
	a24 := a[13]
	a31 := a[2]
	a32 := a[6]
	a33 := a[10]
	a34 := a[14]
	a41 := a[3]
	a42 := a[7]
	a43 := a[11]
	a44 := a[15]

	b11 := b[0]
	b12 := b[4]
	b13 := b[8]
	b14 := b[12]
	b21 := b[1]
	b22 := b[5]
	b23 := b[9]
	b24 := b[13]
	b31 := b[2]
	b32 := b[6]
	b33 := b[10]
	b34 := b[14]
	b41 := b[3]
	b42 := b[7]
	b43 := b[11]
	b44 := b[15]

	m[0] = a11*b11 + a12*b21 + a13*b31 + a14*b41
	m[4] = a11*b12 + a12*b22 + a13*b32 + a14*b42
	m[8] = a11*b13 + a12*b23 + a13*b33 + a14*b43
	m[12] = a11*b14 + a12*b24 + a13*b34 + a14*b44

	m[1] = a21*b11 + a22*b21 + a23*b31 + a24*b41
	m[5] = a21*b12 + a22*b22 + a23*b32 + a24*b42
	m[9] = a21*b13 + a22*b23 + a23*b33 + a24*b43
	m[13] = a21*b14 + a22*b24 + a23*b34 + a24*b44

	m[2] = a31*b11 + a32*b21 + a33*b31 + a34*b41
	m[6] = a31*b12 + a32*b22 + a33*b32 + a34*b42
	m[10] = a31*b13 + a32*b23 + a33*b33 + a34*b43
	m[14] = a31*b14 + a32*b24 + a33*b34 + a34*b44

	m[3] = a41*b11 + a42*b21 + a43*b31 + a44*b41
	m[7] = a41*b12 + a42*b22 + a43*b32 + a44*b42
	m[11] = a41*b13 + a42*b23 + a43*b33 + a44*b43
	m[15] = a41*b14 + a42*b24 + a43*b34 + a44*b44
}

// Transpose returns the transpose of this matrix as a new matrix.
func (m *Matrix4) Transpose() *Matrix4 {
	nm := &Matrix4{}
	nm.Set(
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15],
	)
	return nm
}

// SetInverse sets this matrix to the inverse of the given source matrix,
// returning an error and setting the identity if the source matrix
// cannot be inverted (determinant of zero).
func (m *Matrix4) SetInverse(src *Matrix4) error {
	n11 := src[0]
	n12 := src[4]
	n13 := src[8]
	n14 := src[12]
	n21 := src[1]
	n22 := src[5]
	n23 := src[9]
	n24 := src[13]
	n31 := src[2]
	n32 := src[6]
	n33 := src[10]
	n34 := src[14]
	n41 := src[3]
	n42 := src[7]
	n43 := src[11]
	n44 := src[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14
	if det == 0 {
		m.SetIdentity()
		return errors.New("math32.Matrix4: can't invert matrix, determinant is 0")
	}

	detInv := 1 / det

	m[0] = t11 * detInv
	m[1] = (n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * detInv
	m[2] = (n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * detInv
	m[3] = (n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * detInv

	m[4] = t12 * detInv
	m[5] = (n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * detInv
	m[6] = (n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * detInv
	m[7] = (n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * detInv

	m[8] = t13 * detInv
	m[9] = (n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * detInv
	m[10] = (n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * detInv
	m[11] = (n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * detInv

	m[12] = t14 * detInv
	m[13] = (n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34) * detInv
	m[14] = (n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34) * detInv
	m[15] = (n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33) * detInv

	return nil
}

// Inverse returns the inverse of this matrix as a new matrix,
// or the identity matrix and an error if it cannot be inverted.
func (m *Matrix4) Inverse() (*Matrix4, error) {
	nm := &Matrix4{}
	err := nm.SetInverse(m)
	return nm, err
}

// SetLookAt sets this matrix as a right-handed view transform for a camera
// at eye looking at target, with the given up direction. A degenerate
// direction (eye equal to target) looks down the negative Z axis, and an
// up direction parallel to the view direction is nudged off axis, so the
// result is always a valid orthonormal basis.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	f := target.Sub(eye)
	if f.LengthSquared() == 0 {
		f.Z = -1
	}
	f = f.Normal()

	s := f.Cross(up)
	if s.LengthSquared() == 0 {
		// up and view direction are parallel
		if Abs(up.Z) == 1 {
			f.X += 0.0001
		} else {
			f.Z += 0.0001
		}
		f = f.Normal()
		s = f.Cross(up)
	}
	s = s.Normal()
	u := s.Cross(f)

	m.Set(
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	)
}

// NewLookAt returns a new [Matrix4] right-handed view transform for a
// camera at eye looking at target, with the given up direction.
func NewLookAt(eye, target, up Vector3) *Matrix4 {
	m := &Matrix4{}
	m.SetLookAt(eye, target, up)
	return m
}

// SetPerspectiveInfiniteReverse sets this matrix to a right-handed
// perspective projection with an infinite far plane and reversed depth:
// view-space depth -near maps to clip depth 1 and depth approaches 0 with
// distance. fovy is the vertical field of view in radians, aspect is the
// viewport width over height, and near is the near clipping distance.
// Pair with a GreaterEqual depth test and a depth clear value of 0.
func (m *Matrix4) SetPerspectiveInfiniteReverse(fovy, aspect, near float32) {
	f := 1 / Tan(fovy/2)
	m.Set(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, 0, near,
		0, 0, -1, 0,
	)
}
