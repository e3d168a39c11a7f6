// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// TriangleOverlapsRect returns whether the screen-space triangle abc
// overlaps the closed rectangle r, touching included. It is a separating
// axis test over the rectangle axes and the triangle edge normals, so
// degenerate triangles (segments and points) are handled too.
func TriangleOverlapsRect(a, b, c mgl32.Vec2, r image.Rectangle) bool {
	r = r.Canon()
	corners := [4]mgl32.Vec2{
		{float32(r.Min.X), float32(r.Min.Y)},
		{float32(r.Max.X), float32(r.Min.Y)},
		{float32(r.Max.X), float32(r.Max.Y)},
		{float32(r.Min.X), float32(r.Max.Y)},
	}
	tri := [3]mgl32.Vec2{a, b, c}
	axes := [5]mgl32.Vec2{
		{1, 0},
		{0, 1},
		{b.Y() - a.Y(), a.X() - b.X()},
		{c.Y() - b.Y(), b.X() - c.X()},
		{a.Y() - c.Y(), c.X() - a.X()},
	}
	for _, ax := range axes {
		if ax.X() == 0 && ax.Y() == 0 {
			continue
		}
		tmin, tmax := span(ax, tri[:])
		rmin, rmax := span(ax, corners[:])
		if tmax < rmin || rmax < tmin {
			return false
		}
	}
	return true
}

// span returns the extent of the points projected onto the axis.
func span(ax mgl32.Vec2, pts []mgl32.Vec2) (lo, hi float32) {
	lo = ax.Dot(pts[0])
	hi = lo
	for _, p := range pts[1:] {
		d := ax.Dot(p)
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return lo, hi
}
