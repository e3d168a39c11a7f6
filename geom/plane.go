// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/go-gl/mathgl/mgl32"

// Plane represents a plane in 3D space by its unit normal vector
// and the offset from the origin: points p on the plane satisfy
// Normal.Dot(p) + Off == 0.
type Plane struct {
	Normal mgl32.Vec3
	Off    float32
}

// NewPlane returns the plane with the given normal passing through
// the given point, and false if the normal is degenerate.
func NewPlane(normal, point mgl32.Vec3) (Plane, bool) {
	nn, ok := SafeNormalize(normal)
	if !ok {
		return Plane{}, false
	}
	return Plane{Normal: nn, Off: -point.Dot(nn)}, true
}

// DistanceToPoint returns the signed distance from the plane to the point.
func (pl Plane) DistanceToPoint(p mgl32.Vec3) float32 {
	return pl.Normal.Dot(p) + pl.Off
}

// ProjectPoint returns the closest point on the plane to p.
func (pl Plane) ProjectPoint(p mgl32.Vec3) mgl32.Vec3 {
	return p.Sub(pl.Normal.Mul(pl.DistanceToPoint(p)))
}
