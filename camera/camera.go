// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the 3D camera producing the view-projection
// matrix used to transform meshes for rendering.
package camera

import (
	"github.com/starlinghq/starling/math32"
)

// Camera is a perspective camera. The projection is infinite reversed-z:
// depth 1 at the near plane falling to 0 at infinity, paired with a
// greater-or-equal depth test and a depth clear value of 0.
type Camera struct {

	// Position of the camera in world coordinates.
	Position math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the world up direction, normally +Y.
	Up math32.Vector3

	// FOV is the vertical field of view in radians.
	FOV float32

	// Near is the near plane distance. There is no far plane.
	Near float32
}

// New returns a camera at position looking at target, with a 60 degree
// vertical field of view and a near plane of 0.1.
func New(position, target math32.Vector3) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       math32.Vec3(0, 1, 0),
		FOV:      math32.DegToRad(60),
		Near:     0.1,
	}
}

// View returns the world-to-camera view matrix.
func (c *Camera) View() math32.Matrix4 {
	var m math32.Matrix4
	m.SetLookAt(c.Position, c.Target, c.Up)
	return m
}

// Projection returns the infinite reversed-z projection matrix for the
// given aspect ratio (width / height).
func (c *Camera) Projection(aspect float32) math32.Matrix4 {
	var m math32.Matrix4
	m.SetPerspectiveInfiniteReverse(c.FOV, aspect, c.Near)
	return m
}

// ViewProjection returns the combined projection * view matrix for the
// given aspect ratio. Multiplying a world-space point by it yields the
// clip-space position.
func (c *Camera) ViewProjection(aspect float32) math32.Matrix4 {
	proj := c.Projection(aspect)
	view := c.View()
	var m math32.Matrix4
	m.MulMatrices(&proj, &view)
	return m
}
