// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"cogentcore.org/core/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// V3 converts an mgl32 vector to a [math32.Vector3].
func V3(v mgl32.Vec3) math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}

// Vec converts a [math32.Vector3] to an mgl32 vector.
func Vec(v math32.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// BoxOf returns the smallest box containing all of the points,
// which is empty if there are none.
func BoxOf(pts ...mgl32.Vec3) math32.Box3 {
	bx := math32.B3Empty()
	for _, p := range pts {
		bx.ExpandByPoint(V3(p))
	}
	return bx
}

// Diagonal returns the length of the box diagonal, 0 if empty.
func Diagonal(bx math32.Box3) float32 {
	if bx.IsEmpty() {
		return 0
	}
	return bx.Size().Length()
}

// Corners returns the 8 corner points of the box, ordered
// min, then one max coordinate (z, y, x), then two (yz, xz, xy), then max.
func Corners(bx math32.Box3) [8]mgl32.Vec3 {
	mn, mx := bx.Min, bx.Max
	return [8]mgl32.Vec3{
		{mn.X, mn.Y, mn.Z},
		{mn.X, mn.Y, mx.Z},
		{mn.X, mx.Y, mn.Z},
		{mx.X, mn.Y, mn.Z},
		{mn.X, mx.Y, mx.Z},
		{mx.X, mn.Y, mx.Z},
		{mx.X, mx.Y, mn.Z},
		{mx.X, mx.Y, mx.Z},
	}
}

// TransformBox returns the axis-aligned bounds of the box after
// transforming it by the given affine matrix. An empty box stays empty.
func TransformBox(bx math32.Box3, m mgl32.Mat4) math32.Box3 {
	if bx.IsEmpty() {
		return bx
	}
	return bx.MulMatrix4((*math32.Matrix4)(&m))
}
