// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/core/base/ordmap"
	"github.com/go-gl/mathgl/mgl32"
)

// OverlayHost hosts 2D elements drawn over the 3D viewport,
// such as the labels of presented shapes.
type OverlayHost interface {
	AddOverlay(el any)
	PositionOverlay(el any, pos mgl32.Vec2, visible bool)
	RemoveOverlay(el any)
}

// OverlayItem is the placement of one overlay element.
type OverlayItem struct {
	// Pos is the screen position
	Pos mgl32.Vec2

	// Visible is false when the anchor point is behind the camera
	Visible bool
}

// Overlay is a basic [OverlayHost] that records placements in add order.
// Elements must be comparable.
type Overlay struct {
	items ordmap.Map[any, OverlayItem]
}

func (ov *Overlay) AddOverlay(el any) {
	if _, has := ov.items.IndexByKeyTry(el); has {
		return
	}
	ov.items.Add(el, OverlayItem{})
}

// PositionOverlay places an element; unknown elements are ignored.
func (ov *Overlay) PositionOverlay(el any, pos mgl32.Vec2, visible bool) {
	if _, has := ov.items.IndexByKeyTry(el); !has {
		return
	}
	ov.items.Add(el, OverlayItem{Pos: pos, Visible: visible})
}

func (ov *Overlay) RemoveOverlay(el any) {
	ov.items.DeleteKey(el)
}

// OverlayPosition returns the placement of the element.
func (ov *Overlay) OverlayPosition(el any) (OverlayItem, bool) {
	return ov.items.ValueByKeyTry(el)
}

// Elements returns the hosted elements in add order.
func (ov *Overlay) Elements() []any {
	return ov.items.Keys()
}

// Len returns the number of hosted elements.
func (ov *Overlay) Len() int {
	return ov.items.Len()
}
