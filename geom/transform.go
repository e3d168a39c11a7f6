// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// TransformPoint transforms the point p by the affine matrix m.
func TransformPoint(p mgl32.Vec3, m mgl32.Mat4) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformDir transforms the direction d by the matrix m,
// ignoring translation.
func TransformDir(d mgl32.Vec3, m mgl32.Mat4) mgl32.Vec3 {
	return m.Mul4x1(d.Vec4(0)).Vec3()
}

// Invert returns the inverse of m, and false if m is singular.
func Invert(m mgl32.Mat4) (mgl32.Mat4, bool) {
	if math32.Abs(m.Det()) < Epsilon*Epsilon {
		return mgl32.Ident4(), false
	}
	return m.Inv(), true
}

// Combine returns the transform that applies first and then second,
// i.e., the composition second * first. A manipulation delta is
// combined as the first transform with the existing target transform
// as the second, so edits happen in the target's local space.
func Combine(first, second mgl32.Mat4) mgl32.Mat4 {
	return second.Mul4(first)
}

// Translation returns the translation matrix for the given vector.
func Translation(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(v[0], v[1], v[2])
}

// RotationAbout returns the rotation by the given angle in degrees
// about the given axis through the pivot point. It returns the identity
// and false if the axis is degenerate.
func RotationAbout(pivot, axis mgl32.Vec3, degrees float32) (mgl32.Mat4, bool) {
	na, ok := SafeNormalize(axis)
	if !ok {
		return mgl32.Ident4(), false
	}
	rot := mgl32.HomogRotate3D(mgl32.DegToRad(degrees), na)
	return Translation(pivot).Mul4(rot).Mul4(Translation(pivot.Mul(-1))), true
}
