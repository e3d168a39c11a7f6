// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/xyzedit/geom"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera defines the properties of the camera
type Camera struct {
	// Pos is the position of the camera
	Pos mgl32.Vec3

	// Target is the location the camera is pointing at; it moves
	// with panning movements and is reset by LookAt
	Target mgl32.Vec3

	// UpDir is the up direction for the camera
	UpDir mgl32.Vec3

	// Ortho makes the camera orthographic instead of perspective
	Ortho bool

	// FOV is the vertical field of view in degrees
	FOV float32 `default:"30"`

	// Near is the near clipping distance
	Near float32 `default:"0.01"`

	// Far is the far clipping distance
	Far float32 `default:"1000"`
}

// Defaults sets default parameters, looking at the origin from 0,0,10,
// with up Y axis.
func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Near = .01
	cm.Far = 1000
	cm.Ortho = false
	cm.Pos = mgl32.Vec3{0, 0, 10}
	cm.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// LookAt points the camera at given target location, using given up direction.
func (cm *Camera) LookAt(target, upDir mgl32.Vec3) {
	cm.Target = target
	if _, ok := geom.SafeNormalize(upDir); !ok {
		upDir = mgl32.Vec3{0, 1, 0}
	}
	cm.UpDir = upDir
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() mgl32.Vec3 {
	return cm.Pos.Sub(cm.Target)
}

// DistanceToTarget returns the distance from the camera to its target.
func (cm *Camera) DistanceToTarget() float32 {
	return cm.ViewVector().Len()
}

// LookDirection returns the unit direction the camera is looking in.
// A degenerate camera (position at the target) looks down -Z.
func (cm *Camera) LookDirection() mgl32.Vec3 {
	if ld, ok := geom.SafeNormalize(cm.Target.Sub(cm.Pos)); ok {
		return ld
	}
	return mgl32.Vec3{0, 0, -1}
}

// Basis returns the orthonormal camera frame: the right and up
// directions of the view plane and the look direction.
func (cm *Camera) Basis() (right, up, look mgl32.Vec3) {
	look = cm.LookDirection()
	right, _ = geom.SafeNormalize(look.Cross(cm.upVector(look)))
	up = right.Cross(look)
	return
}

// upVector returns UpDir, or a fallback axis when looking along UpDir.
func (cm *Camera) upVector(look mgl32.Vec3) mgl32.Vec3 {
	for _, up := range []mgl32.Vec3{cm.UpDir, {0, 1, 0}, {0, 0, 1}} {
		if look.Cross(up).Len() >= geom.Epsilon {
			return up
		}
	}
	return mgl32.Vec3{1, 0, 0}
}

// ViewMatrix returns the world to camera transform.
func (cm *Camera) ViewMatrix() mgl32.Mat4 {
	look := cm.LookDirection()
	return mgl32.LookAtV(cm.Pos, cm.Pos.Add(look), cm.upVector(look))
}

// ProjectionMatrix returns the perspective or orthographic projection
// for the given width / height aspect ratio.
func (cm *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if cm.Ortho {
		height := 2 * math32.Max(cm.DistanceToTarget(), cm.Near) * math32.Tan(mgl32.DegToRad(cm.FOV*0.5))
		width := aspect * height
		return mgl32.Ortho(-width/2, width/2, -height/2, height/2, cm.Near, cm.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(cm.FOV), aspect, cm.Near, cm.Far)
}

// ViewMainAxis returns the dimension along which the view vector is largest
// along with the sign of that axis (+1 for positive, -1 for negative).
// this is useful for determining how manipulations should function, for example.
func (cm *Camera) ViewMainAxis() (dim int, sign float32) {
	vv := cm.ViewVector()
	ax, ay, az := math32.Abs(vv[0]), math32.Abs(vv[1]), math32.Abs(vv[2])
	switch {
	case ax > ay && ax > az:
		return 0, sign32(vv[0])
	case ay > ax && ay > az:
		return 1, sign32(vv[1])
	default:
		return 2, sign32(vv[2])
	}
}

func sign32(v float32) float32 {
	if math32.Signbit(v) {
		return -1
	}
	return 1
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down),
// relative to current position and orientation,
// keeping the same distance from the Target, and rotating the camera and
// the Up direction vector to keep looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	dir, ok := geom.SafeNormalize(ctdir)
	if !ok {
		ctdir = mgl32.Vec3{0, 0, 1}
		dir = ctdir
	}
	up := cm.UpDir
	right, ok := geom.SafeNormalize(up.Cross(dir))
	if !ok {
		right = mgl32.Vec3{1, 0, 0}
	}
	dxq := mgl32.QuatRotate(mgl32.DegToRad(delX), up)
	dyq := mgl32.QuatRotate(mgl32.DegToRad(delY), right)
	q := dyq.Mul(dxq)
	cm.Pos = cm.Target.Add(q.Rotate(ctdir))
	cm.UpDir = dyq.Rotate(cm.UpDir)
}

// Pan moves the camera along the given 2D axes (left/right, up/down),
// relative to current position and orientation (i.e., in the plane of the
// current window view), and it moves the target by the same increment.
func (cm *Camera) Pan(delX, delY float32) {
	right, up, _ := cm.Basis()
	td := right.Mul(delX).Add(up.Mul(delY))
	cm.Pos = cm.Pos.Add(td)
	cm.Target = cm.Target.Add(td)
}

// Zoom moves along axis given pct closer or further from the target.
// Negative values zoom in; the camera never moves past the target.
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis.Len() < geom.Epsilon {
		ctaxis = mgl32.Vec3{0, 0, 1}
	}
	zoomPct = math32.Max(zoomPct, -0.99)
	cm.Pos = cm.Target.Add(ctaxis.Mul(1 + zoomPct))
}
