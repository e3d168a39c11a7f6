// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"iter"
	"log/slog"

	"cogentcore.org/xyzedit/manip"
	"cogentcore.org/xyzedit/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is a sphere centered at the origin of its transform.
type Sphere struct {
	Base

	// Radius is the radius of the sphere
	Radius float32 `default:"0.5"`

	// Segs is the number of segments around the sphere
	Segs int `default:"16"`
}

// NewSphere returns a new drawn sphere with the given radius
// (0.5 if it is not positive).
func NewSphere(name string, radius float32) *Sphere {
	sp := &Sphere{Radius: 0.5, Segs: mesh.DefaultSegs}
	sp.Init(sp, name)
	if positive(radius) {
		sp.Radius = radius
	}
	sp.Drawing()
	return sp
}

func (sp *Sphere) Drawing() {
	sp.visual.Mesh = mesh.NewSphere(mgl32.Vec3{}, sp.Radius, sp.Segs)
	sp.Drawn()
}

// SetRadius sets the radius and redraws, returning false
// and leaving the sphere unchanged if it is not positive.
func (sp *Sphere) SetRadius(radius float32) bool {
	if !positive(radius) {
		slog.Debug("shape.Sphere: invalid radius", "name", sp.Nm, "radius", radius)
		return false
	}
	sp.Radius = radius
	sp.Drawing()
	return true
}

// positionAxes are the directions of the position handles; X points
// away from the radius handle.
var positionAxes = [3]mgl32.Vec3{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Manipulators returns a radius handle on the +X side, and three
// handles from the center that move the sphere along X, Y and Z.
func (sp *Sphere) Manipulators() iter.Seq[*manip.Manipulator] {
	return func(yield func(*manip.Manipulator) bool) {
		r := sp.Radius
		rm := manip.NewTranslate(sp.Nm+"-radius", mgl32.Vec3{1, 0, 0})
		rm.Param = ParamRadius
		rm.Position = mgl32.Vec3{r, 0, 0}
		rm.Length = r
		rm.Diameter = r / 10
		rm.Space = sp.Transform
		rm.Receiver = sp
		if !yield(rm) {
			return
		}
		for i, ax := range positionAxes {
			pm := manip.NewTranslate(sp.Nm+"-pos", ax)
			pm.Param = ParamPosition
			pm.Index = i
			pm.Length = 2 * r
			pm.Diameter = r / 10
			pm.Target = sp
			pm.Receiver = sp
			if !yield(pm) {
				return
			}
		}
	}
}

func (sp *Sphere) ManipulatorChanged(msg manip.Message) bool {
	switch msg.Param {
	case ParamRadius:
		return sp.SetRadius(sp.Radius + msg.Delta)
	case ParamPosition:
		sp.Drawing()
		return true
	}
	return false
}
