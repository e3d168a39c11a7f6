// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"iter"
	"log/slog"

	"cogentcore.org/xyzedit/manip"
	"cogentcore.org/xyzedit/mesh"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Parameter names reported in manipulator messages.
const (
	ParamSideLength = "SideLength"
	ParamRadius     = "Radius"
	ParamRotation   = "Rotation"
	ParamPosition   = "Position"
	ParamPoint      = "Point"
)

// positive returns whether v is a usable size: positive and finite.
func positive(v float32) bool {
	return v > 0 && !math32.IsInf(v, 0) && !math32.IsNaN(v)
}

// Cube is an axis-aligned cube centered at the origin of its transform.
type Cube struct {
	Base

	// SideLength is the length of each side
	SideLength float32 `default:"1"`
}

// NewCube returns a new drawn cube with the given side length
// (1 if it is not positive).
func NewCube(name string, side float32) *Cube {
	cb := &Cube{}
	cb.Init(cb, name)
	cb.SideLength = 1
	if positive(side) {
		cb.SideLength = side
	}
	cb.Drawing()
	return cb
}

func (cb *Cube) Drawing() {
	s := cb.SideLength
	cb.visual.Mesh = mesh.NewBox(mgl32.Vec3{s, s, s})
	cb.Drawn()
}

// SetSideLength sets the side length and redraws, returning false
// and leaving the cube unchanged if it is not positive.
func (cb *Cube) SetSideLength(side float32) bool {
	if !positive(side) {
		slog.Debug("shape.Cube: invalid side length", "name", cb.Nm, "side", side)
		return false
	}
	cb.SideLength = side
	cb.Drawing()
	return true
}

// Manipulators returns a handle on the +X face that changes the side
// length by twice the drag distance, and a ring that rotates the cube
// about its Y axis.
func (cb *Cube) Manipulators() iter.Seq[*manip.Manipulator] {
	return func(yield func(*manip.Manipulator) bool) {
		half := cb.SideLength / 2
		sl := manip.NewTranslate(cb.Nm+"-side", mgl32.Vec3{1, 0, 0})
		sl.Param = ParamSideLength
		sl.Position = mgl32.Vec3{half, 0, 0}
		sl.Length = half
		sl.Diameter = cb.SideLength / 20
		sl.Space = cb.Transform
		sl.Receiver = cb
		if !yield(sl) {
			return
		}
		rot := manip.NewRotate(cb.Nm+"-rot", mgl32.Vec3{0, 1, 0})
		rot.Param = ParamRotation
		rot.Length = cb.SideLength * 0.9
		rot.Diameter = cb.SideLength / 20
		rot.Target = cb
		rot.Receiver = cb
		yield(rot)
	}
}

// ManipulatorChanged applies a handle drag, rejecting a side length
// that would not be positive.
func (cb *Cube) ManipulatorChanged(msg manip.Message) bool {
	switch msg.Param {
	case ParamSideLength:
		return cb.SetSideLength(cb.SideLength + 2*msg.Delta)
	case ParamRotation:
		cb.Drawing()
		return true
	}
	return false
}
