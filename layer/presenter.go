// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"slices"

	"cogentcore.org/xyzedit/render"
	"cogentcore.org/xyzedit/shape"
)

// ShapeSource is anything providing shapes, such as a [ShapeLayer].
type ShapeSource interface {
	Shapes() []shape.Shape
}

// PresenterLayer keeps the 2D presenters of the [shape.Presenter]
// shapes of a source in an overlay host, positioned at the projections
// of their anchors. It draws again on every camera update.
type PresenterLayer struct {
	Base

	// Source provides the shapes
	Source ShapeSource

	// Host hosts the presenters
	Host render.OverlayHost

	presented []any
}

// NewPresenterLayer returns a new presenter layer for the source shapes.
func NewPresenterLayer(name string, src ShapeSource, host render.OverlayHost) *PresenterLayer {
	pl := &PresenterLayer{Source: src, Host: host}
	pl.Init(pl, name)
	return pl
}

// Drawing adds new presenters to the host, positions all of them,
// and removes those whose shapes are gone.
func (pl *PresenterLayer) Drawing() {
	if pl.Source == nil || pl.Host == nil {
		return
	}
	vp := pl.Viewport()
	var current []any
	for _, sh := range pl.Source.Shapes() {
		pr, ok := sh.(shape.Presenter)
		if !ok {
			continue
		}
		el, anchor := pr.Presenter()
		if !slices.Contains(pl.presented, el) {
			pl.Host.AddOverlay(el)
		}
		current = append(current, el)
		if vp == nil {
			pl.Host.PositionOverlay(el, anchor.Vec2(), false)
			continue
		}
		pos, visible := vp.Project(anchor)
		pl.Host.PositionOverlay(el, pos, visible)
	}
	for _, el := range pl.presented {
		if !slices.Contains(current, el) {
			pl.Host.RemoveOverlay(el)
		}
	}
	pl.presented = current
}

// Clear removes all presenters from the host.
func (pl *PresenterLayer) Clear() {
	if pl.Host != nil {
		for _, el := range pl.presented {
			pl.Host.RemoveOverlay(el)
		}
	}
	pl.presented = nil
	pl.Base.Clear()
}

func (pl *PresenterLayer) OnCameraUpdate() {
	pl.Drawing()
}
