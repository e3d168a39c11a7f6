// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/xyzedit/geom"
	"cogentcore.org/xyzedit/mesh"
	"cogentcore.org/xyzedit/render"
	"github.com/go-gl/mathgl/mgl32"
)

// Label is a text label drawn over the view at an anchor point, which
// is marked in the scene by a small sphere.
type Label struct {
	Base

	// Text is the label text
	Text string

	// Anchor is the anchor point in local coordinates
	Anchor mgl32.Vec3

	// MarkerRadius is the radius of the marker sphere
	MarkerRadius float32 `default:"0.05"`

	// MarkerPixels, if > 0, keeps the marker this many pixels wide
	MarkerPixels float32
}

// NewLabel returns a new drawn label.
func NewLabel(name, text string, anchor mgl32.Vec3) *Label {
	lb := &Label{Text: text, Anchor: anchor, MarkerRadius: 0.05}
	lb.Init(lb, name)
	lb.Drawing()
	return lb
}

func (lb *Label) Drawing() {
	lb.visual.Mesh = mesh.NewSphere(lb.Anchor, lb.MarkerRadius, 8)
	lb.Drawn()
}

// Presenter returns the label itself as the overlay element,
// and the world anchor point.
func (lb *Label) Presenter() (any, mgl32.Vec3) {
	return lb, lb.WorldAnchor()
}

// WorldAnchor returns the anchor point in world coordinates.
func (lb *Label) WorldAnchor() mgl32.Vec3 {
	return geom.TransformPoint(lb.Anchor, lb.transform)
}

func (lb *Label) CameraUpdate(pj render.Projector) {
	if lb.MarkerPixels <= 0 {
		return
	}
	if d := pj.ScreenToWorldLength(lb.WorldAnchor(), lb.MarkerPixels); d > 0 {
		lb.MarkerRadius = d / 2
		lb.Drawing()
	}
}

func (lb *Label) String() string {
	return lb.Text
}
