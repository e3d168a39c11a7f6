// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/xyzedit/geom"
	"cogentcore.org/xyzedit/mesh"
	"cogentcore.org/xyzedit/render"
)

// BoundingBox is a wire box decorating a selected shape.
// It is neither selectable nor hoverable, and is not hit-tested.
type BoundingBox struct {
	Base

	// Box is the world box being outlined
	Box math32.Box3

	// Diameter is the thickness of the edges
	Diameter float32
}

// NewBoundingBox returns a new bounding box decoration in the given color.
func NewBoundingBox(name string, clr color.RGBA) *BoundingBox {
	bb := &BoundingBox{}
	bb.Init(bb, name)
	bb.Material = render.NewMaterial(clr)
	bb.Selection = nil
	bb.Hover = nil
	bb.visual.NoHit = true
	bb.visual.Material = bb.Material
	return bb
}

// SetBox outlines the box, with edges of diameter diagonal / ratio.
func (bb *BoundingBox) SetBox(box math32.Box3, ratio float32) {
	bb.Box = box
	bb.Diameter = 0
	if positive(ratio) && !box.IsEmpty() {
		bb.Diameter = geom.Diagonal(box) / ratio
	}
	bb.Drawing()
}

func (bb *BoundingBox) Drawing() {
	bb.visual.Mesh = mesh.NewBoundingBox(bb.Box, bb.Diameter)
	bb.Drawn()
}
