// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layer composes shapes into ordered layers of a 3D [View],
// and routes pointer and camera events through them: hit-testing,
// selection and hover, and manipulator drags.
package layer

import (
	"slices"

	"cogentcore.org/xyzedit/events"
	"cogentcore.org/xyzedit/render"
	"cogentcore.org/xyzedit/settings"
)

// Layer is the interface for all layers of a [View].
type Layer interface {
	// Name returns the name of the layer
	Name() string

	// Drawing adds the current content of the layer to the view scene
	Drawing()

	// Clear removes everything the layer added to the view scene
	Clear()

	// SetView sets the view the layer belongs to
	SetView(vw *View)

	// View returns the view the layer belongs to, or nil
	View() *View

	// AsLayerBase returns the [Base] of the layer
	AsLayerBase() *Base
}

// MouseHandler is a layer that handles pointer events. Events are
// delivered to all handlers in layer order; a handler that consumes
// an event marks it handled, and later handlers should ignore it.
type MouseHandler interface {
	OnMouseDown(ev *events.Mouse)
	OnMouseMove(ev *events.Mouse)
	OnMouseUp(ev *events.Mouse)
	OnMouseLeave(ev *events.Mouse)
}

// CameraUpdater is a layer that updates when the camera changes.
type CameraUpdater interface {
	OnCameraUpdate()
}

// defaultSettings are used by layers that are not in a view.
var defaultSettings = settings.New()

// Base is the base type for layers. It records the visuals the layer
// adds to the view scene, so Clear removes exactly those.
type Base struct {
	// This is the concrete layer embedding this Base
	This Layer

	// Nm is the name of the layer
	Nm string

	view    *View
	visuals []*render.Visual
}

// Init initializes the base for the given concrete layer.
func (lb *Base) Init(this Layer, name string) {
	lb.This = this
	lb.Nm = name
}

func (lb *Base) AsLayerBase() *Base {
	return lb
}

func (lb *Base) Name() string {
	return lb.Nm
}

func (lb *Base) SetView(vw *View) {
	lb.view = vw
}

func (lb *Base) View() *View {
	return lb.view
}

func (lb *Base) Drawing() {}

// Settings returns the settings of the view, or defaults.
func (lb *Base) Settings() *settings.Settings {
	if lb.view != nil {
		return lb.view.Settings()
	}
	return defaultSettings
}

// Viewport returns the viewport of the view, or nil.
func (lb *Base) Viewport() render.Viewport3D {
	if lb.view == nil {
		return nil
	}
	return lb.view.Viewport()
}

func (lb *Base) scene() *render.Scene {
	if lb.view == nil {
		return nil
	}
	return lb.view.Scene()
}

// AddVisual adds the visual to the view scene on behalf of the layer.
// It does nothing if the layer is not in a view or the visual is
// already in the scene.
func (lb *Base) AddVisual(vs *render.Visual) {
	sc := lb.scene()
	if sc == nil || vs == nil {
		return
	}
	if sc.Add(vs) {
		lb.visuals = append(lb.visuals, vs)
	}
}

// RemoveVisual removes a visual the layer added.
func (lb *Base) RemoveVisual(vs *render.Visual) {
	i := slices.Index(lb.visuals, vs)
	if i < 0 {
		return
	}
	lb.visuals = slices.Delete(lb.visuals, i, i+1)
	if sc := lb.scene(); sc != nil {
		sc.Remove(vs)
	}
}

// Visuals returns the visuals the layer has added, in order.
func (lb *Base) Visuals() []*render.Visual {
	return slices.Clone(lb.visuals)
}

func (lb *Base) Clear() {
	if sc := lb.scene(); sc != nil {
		for _, vs := range lb.visuals {
			sc.Remove(vs)
		}
	}
	lb.visuals = nil
}

// redraw clears and draws the concrete layer.
func (lb *Base) redraw() {
	lb.This.Clear()
	lb.This.Drawing()
}
