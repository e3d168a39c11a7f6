// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manip provides draggable on-screen handles that turn pointer
// drags into scalar value changes and transform edits.
package manip

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/xyzedit/geom"
	"cogentcore.org/xyzedit/mesh"
	"cogentcore.org/xyzedit/render"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"golang.org/x/image/colornames"
)

// Manipulator is a handle bound to one editable parameter of a shape.
// Its geometry and drag math are expressed in a local space given by
// Space (or the Target transform), so handles follow the shape.
//
// During a drag, translation accumulates the drag distance along Axis,
// and rotation accumulates the angle in degrees about Axis through Pivot.
// Every nonzero step is reported as a [Message], and applied only if
// the receiver accepts it: composed into the Target transform if set,
// otherwise a translation moves the manipulator Position.
type Manipulator struct {
	// ID identifies the manipulator in messages
	ID uuid.UUID

	// Kind is the kind of manipulation
	Kind Kinds

	// Name is used for debugging
	Name string

	// Param names the edited parameter
	Param string

	// Index distinguishes manipulators of the same Param
	Index int

	// Axis is the direction of translation, or the rotation axis
	Axis mgl32.Vec3

	// Position is the start of the translate handle
	Position mgl32.Vec3

	// Pivot is the center of rotation
	Pivot mgl32.Vec3

	// Length is the length of the translate handle, or the radius of the
	// rotate ring
	Length float32 `default:"1"`

	// Diameter is the thickness of the handle
	Diameter float32 `default:"0.05"`

	// ScreenDiameter, if > 0, keeps the handle this many pixels thick
	// by updating Diameter on camera changes
	ScreenDiameter float32

	// Color is the handle color
	Color color.RGBA

	// Value is the accumulated value of all drags
	Value float32

	// Target is the transform edited by the manipulator, if any
	Target Transformer

	// Space returns the local to world transform of the handle. If nil,
	// the Target transform is used, or the identity.
	Space func() mgl32.Mat4

	// Receiver receives messages when no [Dispatcher] is registered
	Receiver Receiver

	// Capture is the pointer capture shared with other manipulators
	Capture *Capture

	dispatcher *Dispatcher
	state      DragStates
	plane      geom.Plane
	lastPoint  mgl32.Vec3
	visual     *render.Visual
}

// New returns a new manipulator of given kind along the axis,
// with default sizes.
func New(kind Kinds, name string, axis mgl32.Vec3) *Manipulator {
	m := &Manipulator{ID: uuid.New(), Kind: kind, Name: name, Param: name, Axis: axis}
	m.Defaults()
	return m
}

// NewTranslate returns a new translate manipulator along the axis.
func NewTranslate(name string, axis mgl32.Vec3) *Manipulator {
	return New(Translate, name, axis)
}

// NewRotate returns a new rotate manipulator about the axis.
func NewRotate(name string, axis mgl32.Vec3) *Manipulator {
	return New(Rotate, name, axis)
}

func (m *Manipulator) Defaults() {
	m.Length = 1
	m.Diameter = 0.05
	m.Color = colornames.Orange
}

func (m *Manipulator) String() string {
	return fmt.Sprintf("%s %s %s", m.Kind, m.Name, m.state)
}

// State returns the drag state.
func (m *Manipulator) State() DragStates {
	return m.state
}

// IsDragging returns whether the manipulator is being dragged.
func (m *Manipulator) IsDragging() bool {
	return m.state == Dragging
}

// Frame returns the local to world transform.
func (m *Manipulator) Frame() mgl32.Mat4 {
	switch {
	case m.Space != nil:
		return m.Space()
	case m.Target != nil:
		return m.Target.Transform()
	}
	return mgl32.Ident4()
}

// ToWorld returns the world point of a local point.
func (m *Manipulator) ToWorld(p mgl32.Vec3) mgl32.Vec3 {
	return geom.TransformPoint(p, m.Frame())
}

// ToLocal returns the local point of a world point, and false
// if the frame is not invertible.
func (m *Manipulator) ToLocal(p mgl32.Vec3) (mgl32.Vec3, bool) {
	inv, ok := geom.Invert(m.Frame())
	if !ok {
		return mgl32.Vec3{}, false
	}
	return geom.TransformPoint(p, inv), true
}

// Anchor returns the local point the handle is attached to:
// Position for translate, Pivot for rotate.
func (m *Manipulator) Anchor() mgl32.Vec3 {
	if m.Kind == Rotate {
		return m.Pivot
	}
	return m.Position
}

func (m *Manipulator) axis() mgl32.Vec3 {
	ax, ok := geom.SafeNormalize(m.Axis)
	if !ok {
		return mgl32.Vec3{1, 0, 0}
	}
	return ax
}

// Visual returns the visual of the handle, creating it if needed.
func (m *Manipulator) Visual() *render.Visual {
	if m.visual == nil {
		m.Drawing()
	}
	return m.visual
}

// Drawing regenerates the handle geometry: an arrow for translate
// and a ring for rotate.
func (m *Manipulator) Drawing() {
	if m.visual == nil {
		m.visual = render.NewVisual(m.Name, m)
	}
	ax := m.axis()
	switch m.Kind {
	case Translate:
		m.visual.Mesh = mesh.NewArrow(m.Position, m.Position.Add(ax.Mul(m.Length)), m.Diameter, m.Length*0.25, mesh.DefaultSegs)
	case Rotate:
		m.visual.Mesh = mesh.NewTorus(m.Pivot, ax, m.Length, m.Diameter, 2*mesh.DefaultSegs)
	}
	if m.visual.Material == nil {
		m.visual.Material = render.NewMaterial(m.Color)
	}
	m.visual.Material.Color = m.Color
	m.visual.Transform = m.Frame()
}

// CameraUpdate keeps the handle at ScreenDiameter pixels, if set.
func (m *Manipulator) CameraUpdate(pj render.Projector) {
	if m.ScreenDiameter <= 0 {
		return
	}
	d := pj.ScreenToWorldLength(m.ToWorld(m.Anchor()), m.ScreenDiameter)
	if d <= 0 {
		return
	}
	m.Diameter = d
	m.Drawing()
}

// dragPlane returns the world plane that pointer rays are intersected
// with: for translate it contains the axis and faces the camera as
// much as possible, for rotate it is normal to the axis through the pivot.
func (m *Manipulator) dragPlane(look mgl32.Vec3) (geom.Plane, bool) {
	fr := m.Frame()
	axw := geom.TransformDir(m.axis(), fr)
	if m.Kind == Rotate {
		return geom.NewPlane(axw, geom.TransformPoint(m.Pivot, fr))
	}
	up := look.Cross(axw)
	return geom.NewPlane(up.Cross(axw), geom.TransformPoint(m.Position, fr))
}

// planePoint returns the world point on the drag plane under the screen point.
func (m *Manipulator) planePoint(pj render.Projector, pt mgl32.Vec2) (mgl32.Vec3, bool) {
	ry, ok := pj.RayFromScreenPoint(pt)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return ry.IntersectPlane(m.plane)
}

// Press starts a drag at the screen point, which should be over the
// handle. It returns false if the drag plane is degenerate (the
// translate axis points at the camera), the point misses the plane,
// or another manipulator holds capture.
func (m *Manipulator) Press(pj render.Projector, pt mgl32.Vec2) bool {
	if m.state == Dragging {
		return false
	}
	pl, ok := m.dragPlane(pj.LookDirection())
	if !ok {
		slog.Debug("manip.Manipulator: degenerate drag plane", "name", m.Name)
		return false
	}
	m.plane = pl
	hit, ok := m.planePoint(pj, pt)
	if !ok {
		return false
	}
	lp, ok := m.ToLocal(hit)
	if !ok {
		return false
	}
	if m.Capture != nil && !m.Capture.Acquire(m) {
		return false
	}
	m.lastPoint = lp
	m.state = Dragging
	slog.Debug("manip.Manipulator: drag start", "name", m.Name, "kind", m.Kind)
	return true
}

// Drag continues the drag at the screen point, applying and reporting
// the change since the last point. It returns false if there was no
// change, or if the receiver rejected it; a rejected step leaves the
// manipulator, its Target and the last drag point as they were.
// Drag panics if the manipulator is not being dragged.
func (m *Manipulator) Drag(pj render.Projector, pt mgl32.Vec2) (Message, bool) {
	if m.state != Dragging {
		panic(fmt.Sprintf("manip.Manipulator.Drag: %s is not being dragged", m.Name))
	}
	hit, ok := m.planePoint(pj, pt)
	if !ok {
		return Message{}, false
	}
	cur, ok := m.ToLocal(hit)
	if !ok {
		return Message{}, false
	}
	var delta float32
	switch m.Kind {
	case Translate:
		delta = cur.Sub(m.lastPoint).Dot(m.axis())
	case Rotate:
		delta = m.angle(cur)
	}
	if delta == 0 || math32.IsNaN(delta) {
		m.lastPoint = cur
		return Message{}, false
	}
	var prev mgl32.Mat4
	if m.Target != nil {
		prev = m.Target.Transform()
		m.Target.SetTransform(geom.Combine(m.step(delta), prev))
	}
	msg := Message{ID: m.ID, Param: m.Param, Index: m.Index, Kind: m.Kind, Axis: m.Axis, Delta: delta, Value: m.Value + delta}
	if !m.emit(msg) {
		if m.Target != nil {
			m.Target.SetTransform(prev)
		}
		slog.Debug("manip.Manipulator: change rejected", "name", m.Name, "delta", delta)
		return Message{}, false
	}
	if m.Kind == Translate && m.Target == nil {
		m.Position = m.Position.Add(m.axis().Mul(delta))
	}
	m.Value = msg.Value
	if lp, ok := m.ToLocal(hit); ok {
		m.lastPoint = lp
	}
	m.Drawing()
	return msg, true
}

// step returns the Target transform change for a drag step.
func (m *Manipulator) step(delta float32) mgl32.Mat4 {
	ax := m.axis()
	if m.Kind == Rotate {
		if rm, ok := geom.RotationAbout(m.Pivot, ax, delta); ok {
			return rm
		}
		return mgl32.Ident4()
	}
	return geom.Translation(ax.Mul(delta))
}

// angle returns the signed angle in degrees between the last and
// current points as seen from the pivot.
func (m *Manipulator) angle(cur mgl32.Vec3) float32 {
	u, uok := geom.SafeNormalize(cur.Sub(m.Pivot))
	v, vok := geom.SafeNormalize(m.lastPoint.Sub(m.Pivot))
	if !uok || !vok {
		return 0
	}
	rot := u.Cross(v)
	sn := math32.Min(rot.Len(), 1)
	if sn < geom.Epsilon {
		return 0
	}
	sign := float32(1)
	if -m.axis().Dot(rot) < 0 {
		sign = -1
	}
	return sign * mgl32.RadToDeg(math32.Asin(sn))
}

// emit reports the message, returning whether it was accepted.
// With nowhere to report it, it is accepted.
func (m *Manipulator) emit(msg Message) bool {
	switch {
	case m.dispatcher != nil:
		return m.dispatcher.Dispatch(msg)
	case m.Receiver != nil:
		return m.Receiver.ManipulatorChanged(msg)
	}
	return true
}

// Release ends the drag and releases capture.
func (m *Manipulator) Release() {
	if m.state != Dragging {
		return
	}
	m.state = Idle
	if m.Capture != nil {
		m.Capture.Release(m)
	}
	slog.Debug("manip.Manipulator: drag end", "name", m.Name, "value", m.Value)
}

// LostCapture returns to Idle without reporting any further change.
func (m *Manipulator) LostCapture() {
	m.state = Idle
}
