// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides triangle mesh geometry: vertex positions,
// vertex colors, and triangle indices, with import from glTF files.
package mesh

import (
	"fmt"

	"github.com/starlinghq/starling/math32"
)

// Mesh is an indexed triangle mesh. Positions are homogeneous
// coordinates with W = 1, and every vertex has an RGB color.
type Mesh struct {

	// Name of the mesh, for diagnostics.
	Name string

	// Positions are the vertex positions.
	Positions []math32.Vector4

	// Colors are the per-vertex RGB colors, one per position.
	Colors []math32.Vector3

	// Indices are the triangle indices, three per triangle.
	Indices []uint16
}

// Triangle returns the built-in triangle mesh: one triangle with
// red, green, and blue corners, counterclockwise when viewed down
// the -Z axis.
func Triangle() *Mesh {
	return &Mesh{
		Name: "triangle",
		Positions: []math32.Vector4{
			math32.Vec4(-0.5, -0.5, 0, 1),
			math32.Vec4(0.5, -0.5, 0, 1),
			math32.Vec4(0, 0.5, 0, 1),
		},
		Colors: []math32.Vector3{
			math32.Vec3(1, 0, 0),
			math32.Vec3(0, 1, 0),
			math32.Vec3(0, 0, 1),
		},
		Indices: []uint16{0, 1, 2},
	}
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Validate checks that the mesh is structurally sound: one color per
// position, whole triangles, and all indices in range.
func (m *Mesh) Validate() error {
	if len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("mesh %q: has %d colors for %d positions", m.Name, len(m.Colors), len(m.Positions))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q: index count %d is not a multiple of 3", m.Name, len(m.Indices))
	}
	for _, ix := range m.Indices {
		if int(ix) >= len(m.Positions) {
			return fmt.Errorf("mesh %q: index %d out of range for %d vertices", m.Name, ix, len(m.Positions))
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() math32.Box3 {
	b := math32.B3Empty()
	for _, p := range m.Positions {
		b.ExpandByPoint(p.ToVector3())
	}
	return b
}

// ColorAt returns the interpolated vertex color at the given point on
// the mesh, or false if the point is not on any triangle. The color is
// the barycentric-weighted average of the containing triangle's vertex
// colors, which is what rasterization delivers to the fragment stage
// for a sample at that point.
func (m *Mesh) ColorAt(p math32.Vector3) (math32.Vector3, bool) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tri := math32.NewTriangle(
			m.Positions[m.Indices[i]].ToVector3(),
			m.Positions[m.Indices[i+1]].ToVector3(),
			m.Positions[m.Indices[i+2]].ToVector3())
		if !tri.ContainsPoint(p) {
			continue
		}
		col, ok := tri.Interpolate(p,
			m.Colors[m.Indices[i]],
			m.Colors[m.Indices[i+1]],
			m.Colors[m.Indices[i+2]])
		if ok {
			return col, true
		}
	}
	return math32.Vector3{}, false
}
