// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"log/slog"
	"slices"

	"cogentcore.org/xyzedit/events"
	"cogentcore.org/xyzedit/manip"
	"cogentcore.org/xyzedit/render"
	"cogentcore.org/xyzedit/settings"
)

// View is an ordered collection of layers drawing into one scene,
// seen through one viewport. It broadcasts pointer and camera events
// to its layers, and owns the pointer capture and the deferred
// functions run at the end of each event cycle.
type View struct {
	scene    *render.Scene
	viewport render.Viewport3D
	settings *settings.Settings
	layers   []Layer
	queue    events.Queue
	deferred events.Deferred
	capture  manip.Capture
}

// NewView returns a new view on the scene and viewport.
// Nil settings means default settings.
func NewView(sc *render.Scene, vp render.Viewport3D, st *settings.Settings) *View {
	if st == nil {
		st = settings.New()
	}
	return &View{scene: sc, viewport: vp, settings: st}
}

func (vw *View) Scene() *render.Scene {
	return vw.scene
}

func (vw *View) Viewport() render.Viewport3D {
	return vw.viewport
}

func (vw *View) Settings() *settings.Settings {
	return vw.settings
}

// Capture returns the pointer capture shared by all manipulators of the view.
func (vw *View) Capture() *manip.Capture {
	return &vw.capture
}

// Deferred returns the functions run at the end of the event cycle.
func (vw *View) Deferred() *events.Deferred {
	return &vw.deferred
}

// Layers returns the layers in order.
func (vw *View) Layers() []Layer {
	return slices.Clone(vw.layers)
}

// AddLayer adds the layer at the end, removing it from any other view.
func (vw *View) AddLayer(ly Layer) {
	vw.InsertLayer(len(vw.layers), ly)
}

// InsertLayer inserts the layer at the index, removing it from any
// other view, and redraws.
func (vw *View) InsertLayer(idx int, ly Layer) {
	if ov := ly.View(); ov != nil {
		ov.RemoveLayer(ly)
	}
	idx = min(max(idx, 0), len(vw.layers))
	vw.layers = slices.Insert(vw.layers, idx, ly)
	vw.Redraw()
}

// RemoveLayer removes the layer and its content, and redraws.
// It returns false if the layer is not in the view.
func (vw *View) RemoveLayer(ly Layer) bool {
	i := slices.Index(vw.layers, ly)
	if i < 0 {
		return false
	}
	ly.Clear()
	ly.SetView(nil)
	vw.layers = slices.Delete(vw.layers, i, i+1)
	vw.Redraw()
	return true
}

// Redraw clears all layers, sets their view, and draws them in order.
func (vw *View) Redraw() {
	for _, ly := range vw.layers {
		ly.Clear()
	}
	for _, ly := range vw.layers {
		ly.SetView(vw)
	}
	for _, ly := range vw.layers {
		ly.Drawing()
	}
}

func (vw *View) broadcast(ev *events.Mouse) {
	for _, ly := range vw.layers {
		mh, ok := ly.(MouseHandler)
		if !ok {
			continue
		}
		switch ev.Type() {
		case events.MouseDown:
			mh.OnMouseDown(ev)
		case events.MouseMove:
			mh.OnMouseMove(ev)
		case events.MouseUp:
			mh.OnMouseUp(ev)
		case events.MouseLeave:
			mh.OnMouseLeave(ev)
		}
	}
}

// HandleEvent delivers one event to the layers and runs the
// deferred functions, as one event cycle.
func (vw *View) HandleEvent(ev *events.Mouse) {
	vw.broadcast(ev)
	vw.deferred.Run()
}

// Send queues an event for the next ProcessEvents.
func (vw *View) Send(ev *events.Mouse) {
	vw.queue.Send(ev)
}

// ProcessEvents delivers all queued events and then runs the deferred
// functions, as one event cycle.
func (vw *View) ProcessEvents() {
	for ev := vw.queue.NextEvent(); ev != nil; ev = vw.queue.NextEvent() {
		vw.broadcast(ev)
	}
	vw.deferred.Run()
}

// CameraChanged notifies the layers that the camera has changed.
func (vw *View) CameraChanged() {
	for _, ly := range vw.layers {
		if cu, ok := ly.(CameraUpdater); ok {
			cu.OnCameraUpdate()
		}
	}
	vw.deferred.Run()
}

// CancelCapture takes pointer capture away from any manipulator,
// for example when the view loses focus.
func (vw *View) CancelCapture() {
	if vw.capture.IsCaptured() {
		slog.Debug("layer.View: capture canceled")
	}
	vw.capture.Cancel()
}
