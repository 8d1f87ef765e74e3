// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	v := Vec3(1, 2, 3)
	assert.Equal(t, Vec3(3, 5, 7), v.Add(Vec3(2, 3, 4)))
	assert.Equal(t, Vec3(-1, -1, -1), v.Sub(Vec3(2, 3, 4)))
	assert.Equal(t, Vec3(2, 4, 6), v.MulScalar(2))
	assert.Equal(t, Vec3(0.5, 1, 1.5), v.DivScalar(2))
	assert.Equal(t, Vec3(-1, -2, -3), v.Negate())
	assert.Equal(t, float32(14), v.Dot(v))
	assert.Equal(t, float32(14), v.LengthSquared())

	x := Vec3(1, 0, 0)
	y := Vec3(0, 1, 0)
	assert.Equal(t, Vec3(0, 0, 1), x.Cross(y))
	assert.Equal(t, float32(0), x.Cross(y).Dot(x))

	n := Vec3(3, 0, 4).Normal()
	assert.InDelta(t, 1, n.Length(), 1e-6)
	assert.Equal(t, Vector3{}, Vector3{}.Normal())

	assert.Equal(t, Vec3(1, 2, 2), Vec3(1, 2, 3).Min(Vec3(4, 2, 2)))
	assert.Equal(t, Vec3(4, 2, 3), Vec3(1, 2, 3).Max(Vec3(4, 2, 2)))
	assert.Equal(t, float32(5), Vec3(0, 0, 0).DistanceTo(Vec3(3, 4, 0)))
	assert.Equal(t, Vec3(1, 1, 1), Vec3(0, 0, 0).Lerp(Vec3(2, 2, 2), 0.5))
}

func TestVector4(t *testing.T) {
	v := Vec4(1, 2, 3, 4)
	assert.Equal(t, Vec4(2, 4, 6, 8), v.Add(v))
	assert.Equal(t, Vector4{}, v.Sub(v))
	assert.Equal(t, float32(30), v.Dot(v))

	assert.Equal(t, Vec3(2, 4, 6), Vec4(4, 8, 12, 2).PerspDiv())
	assert.Equal(t, Vec3(1, 2, 3), v.ToVector3())

	h := Vector4FromVector3(Vec3(5, 6, 7), 1)
	assert.Equal(t, Vec4(5, 6, 7, 1), h)

	n := Vec4(0, 3, 0, 4).Normal()
	assert.InDelta(t, 1, n.Length(), 1e-6)
}

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())

	b.ExpandByPoint(Vec3(1, 2, 3))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vector3{}, b.Size())

	b.ExpandByPoint(Vec3(-1, 0, 5))
	assert.Equal(t, Vec3(2, 2, 2), b.Size())
	assert.Equal(t, Vec3(0, 1, 4), b.Center())
	assert.True(t, b.ContainsPoint(Vec3(0, 1, 4)))
	assert.False(t, b.ContainsPoint(Vec3(0, 3, 4)))

	pts := []Vector3{Vec3(0, 0, 0), Vec3(1, -1, 2), Vec3(-2, 4, 1)}
	b.SetFromPoints(pts)
	assert.Equal(t, Vec3(-2, -1, 0), b.Min)
	assert.Equal(t, Vec3(1, 4, 2), b.Max)
}
