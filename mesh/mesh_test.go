// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/starlinghq/starling/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangle(t *testing.T) {
	m := Triangle()
	assert.NoError(t, m.Validate())
	assert.Equal(t, 1, m.NumTriangles())
	b := m.Bounds()
	assert.Equal(t, math32.Vec3(-0.5, -0.5, 0), b.Min)
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0), b.Max)
}

func TestColorAt(t *testing.T) {
	m := Triangle()

	// corners carry the exact vertex colors
	for i, ix := range m.Indices {
		col, ok := m.ColorAt(m.Positions[ix].ToVector3())
		require.True(t, ok, "corner %d", i)
		assert.InDelta(t, m.Colors[ix].X, col.X, 1e-6)
		assert.InDelta(t, m.Colors[ix].Y, col.Y, 1e-6)
		assert.InDelta(t, m.Colors[ix].Z, col.Z, 1e-6)
	}

	// the centroid is the equal-weight average of the corners
	cent := math32.Vec3(0, -1.0/6.0, 0)
	col, ok := m.ColorAt(cent)
	require.True(t, ok)
	third := float32(1.0 / 3.0)
	assert.InDelta(t, third, col.X, 1e-5)
	assert.InDelta(t, third, col.Y, 1e-5)
	assert.InDelta(t, third, col.Z, 1e-5)

	_, ok = m.ColorAt(math32.Vec3(5, 5, 0))
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	m := Triangle()
	m.Colors = m.Colors[:2]
	assert.Error(t, m.Validate())

	m = Triangle()
	m.Indices = []uint16{0, 1}
	assert.Error(t, m.Validate())

	m = Triangle()
	m.Indices = []uint16{0, 1, 3}
	assert.Error(t, m.Validate())
}

func TestOpenTriangle(t *testing.T) {
	m, err := Open("testdata/triangle.gltf")
	require.NoError(t, err)
	assert.Equal(t, "triangle", m.Name)
	want := Triangle()
	assert.Equal(t, want.Positions, m.Positions)
	assert.Equal(t, want.Colors, m.Colors)
	assert.Equal(t, want.Indices, m.Indices)
}

func TestOpenPairOffsetsIndices(t *testing.T) {
	m, err := Open("testdata/pair.gltf")
	require.NoError(t, err)
	require.Len(t, m.Positions, 6)
	require.Len(t, m.Colors, 6)
	assert.Equal(t, []uint16{0, 1, 2, 3, 4, 5}, m.Indices)

	// all vertices carry W = 1
	for _, p := range m.Positions {
		assert.Equal(t, float32(1), p.W)
	}

	b := m.Bounds()
	assert.Equal(t, math32.Vec3(-0.5, -0.5, 0), b.Min)
	assert.Equal(t, math32.Vec3(2.5, 0.5, 0), b.Max)
}

func TestOpenMixedSkipsUnsupported(t *testing.T) {
	m, err := Open("testdata/mixed.gltf")
	require.NoError(t, err)
	// the lines, 32-bit-index, and colorless primitives are skipped;
	// only the one well-formed triangle primitive survives
	assert.Len(t, m.Positions, 3)
	assert.Equal(t, []uint16{0, 1, 2}, m.Indices)
	assert.Equal(t, 1, m.NumTriangles())
}

func TestDecodeGLTFGarbage(t *testing.T) {
	_, err := DecodeGLTF([]byte("not gltf"))
	assert.Error(t, err)
}

func TestDecodeGLTFEmpty(t *testing.T) {
	_, err := DecodeGLTF([]byte(`{"asset":{"version":"2.0"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no triangle geometry")
}
