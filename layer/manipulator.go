// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"log/slog"
	"slices"

	"cogentcore.org/xyzedit/events"
	"cogentcore.org/xyzedit/manip"
	"cogentcore.org/xyzedit/shape"
)

// ManipulatorLayer is a [SelectionLayer] that shows the manipulators
// of the selected [shape.Manipulable] shapes, and lets the user drag them.
// Manipulators are rebuilt whenever the selection changes, and are drawn
// after the shapes and decorations.
//
// A left press on a manipulator starts a drag and consumes the event,
// so the selection is not changed by it. The manipulator then has the
// pointer capture of the view until release, and other selection layers
// of the view ignore the press and release while it is held, whether
// they come before or after this layer.
type ManipulatorLayer struct {
	SelectionLayer

	// Dispatcher routes manipulator messages to the shapes
	Dispatcher manip.Dispatcher

	manips []*manip.Manipulator
	active *manip.Manipulator
}

// NewManipulatorLayer returns a new empty manipulator layer.
func NewManipulatorLayer(name string) *ManipulatorLayer {
	ml := &ManipulatorLayer{}
	ml.initSelection(ml, name)
	ml.Engine.OnChanged(func(selected []shape.Shape) {
		ml.rebuildManipulators()
	})
	ml.Dispatcher.OnDispatch(ml.manipulated)
	return ml
}

// Manipulators returns the manipulators of the selected shapes.
func (ml *ManipulatorLayer) Manipulators() []*manip.Manipulator {
	return slices.Clone(ml.manips)
}

// Active returns the manipulator being dragged, or nil.
func (ml *ManipulatorLayer) Active() *manip.Manipulator {
	if ml.active != nil && !ml.active.IsDragging() {
		ml.active = nil
	}
	return ml.active
}

// rebuildManipulators replaces the manipulators with new ones from the
// selected shapes.
func (ml *ManipulatorLayer) rebuildManipulators() {
	if ml.active != nil {
		ml.active.Release()
		ml.active = nil
	}
	for _, m := range ml.manips {
		ml.RemoveVisual(m.Visual())
	}
	ml.manips = nil
	ml.Dispatcher.Reset()
	for _, sh := range ml.Engine.Selected() {
		mp, ok := sh.(shape.Manipulable)
		if !ok {
			continue
		}
		for m := range mp.Manipulators() {
			ml.setup(m)
			ml.manips = append(ml.manips, m)
			ml.AddVisual(m.Visual())
		}
	}
}

func (ml *ManipulatorLayer) setup(m *manip.Manipulator) {
	ml.Dispatcher.Register(m)
	if ml.view == nil {
		return
	}
	m.Capture = ml.view.Capture()
	if px := ml.Settings().ManipulatorPixels; px > 0 {
		m.ScreenDiameter = px
		m.CameraUpdate(ml.Viewport())
	}
}

// manipulated keeps all manipulator visuals in sync with the shapes
// after a change.
func (ml *ManipulatorLayer) manipulated(msg manip.Message) {
	slog.Debug("layer.ManipulatorLayer: manipulated", "layer", ml.Nm, "msg", msg.String())
	for _, m := range ml.manips {
		m.Drawing()
	}
}

// Drawing draws the shapes and decorations, and then the manipulators.
func (ml *ManipulatorLayer) Drawing() {
	ml.SelectionLayer.Drawing()
	for _, m := range ml.manips {
		if ml.view != nil {
			m.Capture = ml.view.Capture()
		}
		vs := m.Visual()
		ml.RemoveVisual(vs)
		ml.AddVisual(vs)
	}
}

func (ml *ManipulatorLayer) OnCameraUpdate() {
	ml.SelectionLayer.OnCameraUpdate()
	vp := ml.Viewport()
	if vp == nil {
		return
	}
	for _, m := range ml.manips {
		m.CameraUpdate(vp)
	}
}

// manipulatorHit returns the first manipulator of the layer under the point.
func (ml *ManipulatorLayer) manipulatorHit(ev *events.Mouse) *manip.Manipulator {
	vp := ml.Viewport()
	if vp == nil || len(ml.manips) == 0 {
		return nil
	}
	for _, ht := range vp.HitTest(ev.Where) {
		if m, ok := ht.Container.(*manip.Manipulator); ok && slices.Contains(ml.manips, m) {
			return m
		}
	}
	return nil
}

func (ml *ManipulatorLayer) OnMouseDown(ev *events.Mouse) {
	if !ev.IsHandled() && ev.Button == events.Left {
		if m := ml.manipulatorHit(ev); m != nil {
			ev.SetHandled()
			if m.Press(ml.Viewport(), ev.Pos()) {
				ml.active = m
			}
			return
		}
	}
	ml.SelectionLayer.OnMouseDown(ev)
}

func (ml *ManipulatorLayer) OnMouseMove(ev *events.Mouse) {
	if m := ml.Active(); m != nil && !ev.IsHandled() {
		m.Drag(ml.Viewport(), ev.Pos())
		ev.SetHandled()
	}
	ml.SelectionLayer.OnMouseMove(ev)
}

func (ml *ManipulatorLayer) OnMouseUp(ev *events.Mouse) {
	if ml.active == nil {
		ml.SelectionLayer.OnMouseUp(ev)
		return
	}
	ml.active.Release()
	ml.active = nil
	ev.SetHandled()
	ml.rebuildManipulators()
}
