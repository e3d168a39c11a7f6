// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/xyzedit/geom"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
)

// Hit is one result of hit-testing: the visual that was hit, the element
// that contributed it, and the world point and distance of the hit.
type Hit struct {
	// Visual is the hit visual
	Visual *Visual

	// Container is the Owner of the visual
	Container any

	// Point is the world-space hit point; for rectangle hits it is
	// the center of the world bounds
	Point mgl32.Vec3

	// Distance is the distance from the camera, used for ordering
	Distance float32
}

// HitTester returns the visuals under a screen point or rectangle,
// nearest first.
type HitTester interface {
	HitTest(pt image.Point) []Hit
	HitTestRect(r image.Rectangle) []Hit
}

// Projector converts between screen and world coordinates.
// Screen coordinates are in pixels with Y increasing downward.
type Projector interface {
	// Project returns the screen point of the world point, and false if it is
	// behind the camera.
	Project(world mgl32.Vec3) (mgl32.Vec2, bool)

	// Unproject returns the world point under the screen point on the
	// plane through the camera target facing the camera.
	Unproject(screen mgl32.Vec2) (mgl32.Vec3, bool)

	// RayFromScreenPoint returns the world-space ray under the screen point.
	RayFromScreenPoint(screen mgl32.Vec2) (geom.Ray, bool)

	// LookDirection returns the unit camera look direction.
	LookDirection() mgl32.Vec3

	// ScreenToWorldLength returns the world length spanning the given
	// number of pixels at the depth of the anchor point.
	ScreenToWorldLength(anchor mgl32.Vec3, pixels float32) float32
}

// Viewport3D is the viewport contract used by layers.
type Viewport3D interface {
	HitTester
	Projector
}

// Viewport is a [Viewport3D] rendering a [Scene] through a [Camera]
// into a pixel area of the given size.
type Viewport struct {
	// Scene is the scene being viewed
	Scene *Scene

	// Camera is the camera
	Camera Camera

	// Size is the size of the viewport in pixels
	Size image.Point

	// SavedCams are saved camera positions, by name
	SavedCams map[string]Camera
}

// NewViewport returns a new viewport on the scene with a default camera.
func NewViewport(sc *Scene, size image.Point) *Viewport {
	vp := &Viewport{Scene: sc, Size: size}
	vp.Camera.Defaults()
	return vp
}

// Aspect returns the width / height aspect ratio.
func (vp *Viewport) Aspect() float32 {
	if vp.Size.Y <= 0 {
		return 1
	}
	return float32(vp.Size.X) / float32(vp.Size.Y)
}

func (vp *Viewport) matrices() (view, proj mgl32.Mat4) {
	return vp.Camera.ViewMatrix(), vp.Camera.ProjectionMatrix(vp.Aspect())
}

func (vp *Viewport) Project(world mgl32.Vec3) (mgl32.Vec2, bool) {
	view, proj := vp.matrices()
	if eye := view.Mul4x1(world.Vec4(1)); eye.Z() >= 0 {
		return mgl32.Vec2{}, false
	}
	win := mgl32.Project(world, view, proj, 0, 0, vp.Size.X, vp.Size.Y)
	return mgl32.Vec2{win.X(), float32(vp.Size.Y) - win.Y()}, geom.IsFinite(win)
}

// RayFromScreenPoint builds the ray from the camera basis rather than
// unprojecting the far plane, which loses float32 precision.
func (vp *Viewport) RayFromScreenPoint(screen mgl32.Vec2) (geom.Ray, bool) {
	if vp.Size.X <= 0 || vp.Size.Y <= 0 {
		return geom.Ray{}, false
	}
	cm := &vp.Camera
	nx := 2*screen.X()/float32(vp.Size.X) - 1
	ny := 1 - 2*screen.Y()/float32(vp.Size.Y)
	right, up, look := cm.Basis()
	th := math32.Tan(mgl32.DegToRad(cm.FOV * 0.5))
	if cm.Ortho {
		hh := math32.Max(cm.DistanceToTarget(), cm.Near) * th
		hw := hh * vp.Aspect()
		org := cm.Pos.Add(right.Mul(nx * hw)).Add(up.Mul(ny * hh))
		return geom.NewRay(org, look)
	}
	dir := look.Add(right.Mul(nx * th * vp.Aspect())).Add(up.Mul(ny * th))
	return geom.NewRay(cm.Pos, dir)
}

func (vp *Viewport) Unproject(screen mgl32.Vec2) (mgl32.Vec3, bool) {
	pl, ok := geom.NewPlane(vp.LookDirection(), vp.Camera.Target)
	if !ok {
		return mgl32.Vec3{}, false
	}
	ry, ok := vp.RayFromScreenPoint(screen)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return ry.IntersectPlane(pl)
}

func (vp *Viewport) LookDirection() mgl32.Vec3 {
	return vp.Camera.LookDirection()
}

func (vp *Viewport) ScreenToWorldLength(anchor mgl32.Vec3, pixels float32) float32 {
	sp, ok := vp.Project(anchor)
	if !ok {
		return 0
	}
	pl, ok := geom.NewPlane(vp.LookDirection(), anchor)
	if !ok {
		return 0
	}
	r0, ok0 := vp.RayFromScreenPoint(sp)
	r1, ok1 := vp.RayFromScreenPoint(sp.Add(mgl32.Vec2{pixels, 0}))
	if !ok0 || !ok1 {
		return 0
	}
	p0, ok0 := r0.IntersectPlane(pl)
	p1, ok1 := r1.IntersectPlane(pl)
	if !ok0 || !ok1 {
		return 0
	}
	return p1.Sub(p0).Len()
}

// HitTest returns the hittable visuals under the screen point,
// nearest first.
func (vp *Viewport) HitTest(pt image.Point) []Hit {
	if vp.Scene == nil {
		return nil
	}
	ry, ok := vp.RayFromScreenPoint(geom.PointVec(pt))
	if !ok {
		return nil
	}
	var hits []Hit
	for _, vs := range vp.Scene.Visuals() {
		if !vs.IsHittable() {
			continue
		}
		if d, ok := vs.IntersectRay(ry); ok {
			hits = append(hits, Hit{Visual: vs, Container: vs.Owner, Point: ry.At(d), Distance: d})
		}
	}
	sortHits(hits)
	return hits
}

// HitTestRect returns the hittable visuals with at least one triangle
// whose projection overlaps the screen rectangle, nearest first.
// Triangles with a vertex behind the camera are skipped.
func (vp *Viewport) HitTestRect(r image.Rectangle) []Hit {
	if vp.Scene == nil {
		return nil
	}
	r = r.Canon()
	var hits []Hit
	for _, vs := range vp.Scene.Visuals() {
		if !vs.IsHittable() || !vp.overlapsRect(vs, r) {
			continue
		}
		ctr := geom.Vec(vs.WorldBounds().Center())
		hits = append(hits, Hit{Visual: vs, Container: vs.Owner, Point: ctr, Distance: ctr.Sub(vp.Camera.Pos).Len()})
	}
	sortHits(hits)
	return hits
}

// overlapsRect returns whether any projected triangle of the visual
// overlaps the screen rectangle.
func (vp *Viewport) overlapsRect(vs *Visual, r image.Rectangle) bool {
	ms := vs.Mesh
	var sp [3]mgl32.Vec2
	for i := 0; i < ms.NumTriangles(); i++ {
		a, b, c := ms.Triangle(i)
		ok := true
		for j, v := range [3]mgl32.Vec3{a, b, c} {
			if sp[j], ok = vp.Project(geom.TransformPoint(v, vs.Transform)); !ok {
				break
			}
		}
		if ok && geom.TriangleOverlapsRect(sp[0], sp[1], sp[2], r) {
			return true
		}
	}
	return false
}

func sortHits(hits []Hit) {
	slices.SortStableFunc(hits, func(a, b Hit) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}

// SaveCamera saves the current camera with given name.
func (vp *Viewport) SaveCamera(name string) {
	if vp.SavedCams == nil {
		vp.SavedCams = make(map[string]Camera)
	}
	var cam Camera
	copier.Copy(&cam, &vp.Camera)
	vp.SavedCams[name] = cam
}

// SetCamera sets the current camera to that of given name,
// returning an error if not found.
func (vp *Viewport) SetCamera(name string) error {
	cam, ok := vp.SavedCams[name]
	if !ok {
		return fmt.Errorf("render.Viewport: %w: %q", ErrNoSavedCamera, name)
	}
	return copier.Copy(&vp.Camera, &cam)
}

// ErrNoSavedCamera is returned by SetCamera for unknown camera names.
var ErrNoSavedCamera = errors.New("saved camera not found")
