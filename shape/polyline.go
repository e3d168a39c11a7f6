// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"iter"
	"slices"

	"cogentcore.org/xyzedit/geom"
	"cogentcore.org/xyzedit/manip"
	"cogentcore.org/xyzedit/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

var unitAxes = [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Polyline is a pipe through a list of control points.
type Polyline struct {
	Base

	// Points are the control points in local coordinates
	Points []mgl32.Vec3

	// Diameter is the pipe diameter
	Diameter float32 `default:"0.05"`

	// Segs is the number of segments around the pipe
	Segs int `default:"8"`
}

// NewPolyline returns a new drawn polyline through the points.
func NewPolyline(name string, points ...mgl32.Vec3) *Polyline {
	pl := &Polyline{Diameter: 0.05, Segs: 8}
	pl.Init(pl, name)
	pl.Points = slices.Clone(points)
	pl.Drawing()
	return pl
}

func (pl *Polyline) Drawing() {
	pl.visual.Mesh = mesh.NewPolyline(pl.Points, pl.Diameter, pl.Segs)
	pl.Drawn()
}

// SetPoint moves control point i and redraws, returning false if
// i is out of range or p is not finite.
func (pl *Polyline) SetPoint(i int, p mgl32.Vec3) bool {
	if i < 0 || i >= len(pl.Points) || !geom.IsFinite(p) {
		return false
	}
	pl.Points[i] = p
	pl.Drawing()
	return true
}

// Manipulators returns three handles per control point,
// moving it along X, Y and Z.
func (pl *Polyline) Manipulators() iter.Seq[*manip.Manipulator] {
	return func(yield func(*manip.Manipulator) bool) {
		for i, p := range pl.Points {
			for _, ax := range unitAxes {
				m := manip.NewTranslate(pl.Nm+"-pt", ax)
				m.Param = ParamPoint
				m.Index = i
				m.Position = p
				m.Length = 0.3
				m.Diameter = pl.Diameter / 2
				m.Space = pl.Transform
				m.Receiver = pl
				if !yield(m) {
					return
				}
			}
		}
	}
}

func (pl *Polyline) ManipulatorChanged(msg manip.Message) bool {
	if msg.Param != ParamPoint || msg.Index < 0 || msg.Index >= len(pl.Points) {
		return false
	}
	ax, ok := geom.SafeNormalize(msg.Axis)
	if !ok {
		return false
	}
	return pl.SetPoint(msg.Index, pl.Points[msg.Index].Add(ax.Mul(msg.Delta)))
}
