// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 represents a 3D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum points.
func B3(min, max Vector3) Box3 {
	return Box3{Min: min, Max: max}
}

// B3Empty returns a new empty [Box3].
func B3Empty() Box3 {
	bx := Box3{}
	bx.SetEmpty()
	return bx
}

// SetEmpty sets this bounding box to empty (min infinity, max -infinity).
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Inf(1))
	b.Max.SetScalar(Inf(-1))
}

// IsEmpty returns whether this bounding box is empty (max < min on any coord).
func (b *Box3) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

// ExpandByPoint may expand this bounding box to include the given point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// SetFromPoints sets this bounding box from the given set of points.
func (b *Box3) SetFromPoints(points []Vector3) {
	b.SetEmpty()
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// Size returns the size of this bounding box: the vector from its
// minimum point to its maximum point.
func (b *Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of this bounding box.
func (b *Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ContainsPoint returns whether this bounding box contains the given point.
func (b *Box3) ContainsPoint(point Vector3) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z {
		return false
	}
	return true
}
