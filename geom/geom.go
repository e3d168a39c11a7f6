// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the 3D geometric primitives used by hit-testing
// and manipulation: rays, planes, bounding boxes and transform helpers,
// all on top of [mgl32] vectors and matrices.
package geom

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the tolerance below which lengths and determinants
// are considered degenerate.
const Epsilon = float32(1.0e-6)

// SafeNormalize returns the unit vector in the direction of v,
// and false if v is too short (or not finite) to be normalized.
func SafeNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	ln := v.Len()
	if ln < Epsilon || math32.IsInf(ln, 0) || math32.IsNaN(ln) {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / ln), true
}

// IsFinite returns true if no component of v is NaN or infinite.
func IsFinite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// PointVec converts an integer screen point to a [mgl32.Vec2].
func PointVec(pt image.Point) mgl32.Vec2 {
	return mgl32.Vec2{float32(pt.X), float32(pt.Y)}
}
