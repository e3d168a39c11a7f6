// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"cogentcore.org/core/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents an oriented 3D line segment defined by an origin point
// and a (unit length) direction vector.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// NewRay returns a ray from origin in the given direction,
// and false if the direction is degenerate.
func NewRay(origin, dir mgl32.Vec3) (Ray, bool) {
	nd, ok := SafeNormalize(dir)
	if !ok {
		return Ray{}, false
	}
	return Ray{Origin: origin, Dir: nd}, true
}

// At returns the point at distance t along the ray.
func (ry Ray) At(t float32) mgl32.Vec3 {
	return ry.Origin.Add(ry.Dir.Mul(t))
}

// DistanceToPlane returns the distance along the ray to the plane,
// and false if the ray is parallel to the plane.
// The distance can be negative if the plane is behind the origin.
func (ry Ray) DistanceToPlane(pl Plane) (float32, bool) {
	den := pl.Normal.Dot(ry.Dir)
	if math32.Abs(den) < Epsilon {
		return 0, false
	}
	return -(ry.Origin.Dot(pl.Normal) + pl.Off) / den, true
}

// IntersectPlane returns the point where the ray crosses the plane,
// and false if the ray is parallel to it or points away from it.
func (ry Ray) IntersectPlane(pl Plane) (mgl32.Vec3, bool) {
	t, ok := ry.DistanceToPlane(pl)
	if !ok || t < 0 {
		return mgl32.Vec3{}, false
	}
	return ry.At(t), true
}

// IntersectLinePlane returns the point where the infinite line through the
// ray crosses the plane, in either direction, and false if it is parallel.
func (ry Ray) IntersectLinePlane(pl Plane) (mgl32.Vec3, bool) {
	t, ok := ry.DistanceToPlane(pl)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return ry.At(t), true
}

// IntersectTriangle returns the distance along the ray to the triangle
// a, b, c (either winding), using the Moller-Trumbore algorithm.
func (ry Ray) IntersectTriangle(a, b, c mgl32.Vec3) (float32, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := ry.Dir.Cross(e2)
	det := e1.Dot(p)
	if math32.Abs(det) < Epsilon*Epsilon {
		return 0, false
	}
	inv := 1 / det
	s := ry.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := ry.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectBox returns the distance along the ray to the first point
// inside the box (0 if the origin is inside), using the slab method.
func (ry Ray) IntersectBox(bx math32.Box3) (float32, bool) {
	if bx.IsEmpty() {
		return 0, false
	}
	mn, mx := Vec(bx.Min), Vec(bx.Max)
	tmin := float32(0)
	tmax := math32.Inf(1)
	for d := 0; d < 3; d++ {
		if math32.Abs(ry.Dir[d]) < Epsilon {
			if ry.Origin[d] < mn[d] || ry.Origin[d] > mx[d] {
				return 0, false
			}
			continue
		}
		inv := 1 / ry.Dir[d]
		t0 := (mn[d] - ry.Origin[d]) * inv
		t1 := (mx[d] - ry.Origin[d]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = math32.Max(tmin, t0)
		tmax = math32.Min(tmax, t1)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
