// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection tracks which shapes are selected and hovered,
// and keeps their visual states consistent with that.
package selection

import (
	"log/slog"

	"cogentcore.org/xyzedit/events"
	"cogentcore.org/xyzedit/shape"
)

// Engine maintains the selected and hovered shape sets. A shape's
// display state follows the rule Selected over Hover over Default,
// applied through its Update methods whenever membership changes.
// OnChanged listeners are called once per change of the selected set.
type Engine struct {
	selected  *Set[shape.Shape]
	hovered   *Set[shape.Shape]
	listeners []func(selected []shape.Shape)
}

// init makes the sets of a zero Engine usable.
func (en *Engine) init() {
	if en.selected == nil {
		en.selected = NewSet[shape.Shape]()
	}
	if en.hovered == nil {
		en.hovered = NewSet[shape.Shape]()
	}
}

// OnChanged adds a function called when the selected set changes.
func (en *Engine) OnChanged(fun func(selected []shape.Shape)) {
	en.listeners = append(en.listeners, fun)
}

// Selected returns the selected shapes in selection order.
func (en *Engine) Selected() []shape.Shape {
	en.init()
	return en.selected.Items()
}

// Hovered returns the hovered shapes.
func (en *Engine) Hovered() []shape.Shape {
	en.init()
	return en.hovered.Items()
}

func (en *Engine) IsSelected(sh shape.Shape) bool {
	en.init()
	return en.selected.Contains(sh)
}

func (en *Engine) IsHovered(sh shape.Shape) bool {
	en.init()
	return en.hovered.Contains(sh)
}

// filter returns the unique non-nil shapes accepted by keep, in order.
func filter(shapes []shape.Shape, keep func(sh shape.Shape) bool) *Set[shape.Shape] {
	st := NewSet[shape.Shape]()
	for _, sh := range shapes {
		if sh != nil && keep(sh) {
			st.Add(sh)
		}
	}
	return st
}

func selectable(sh shape.Shape) bool   { return sh.UseSelectable() }
func mouseOverable(sh shape.Shape) bool { return sh.UseMouseOverable() }

// restore sets the display state of a shape that is not selected.
func (en *Engine) restore(sh shape.Shape) {
	if en.hovered.Contains(sh) && sh.UseMouseOverable() {
		sh.UpdateMouseOver()
		return
	}
	sh.UpdateDefault()
}

// Hover sets the hovered shapes to the mouse-overable ones among the
// given shapes, returning whether the hovered set changed.
// Selected shapes keep their Selected state.
func (en *Engine) Hover(shapes []shape.Shape) bool {
	en.init()
	next := filter(shapes, mouseOverable)
	if next.Equal(en.hovered) {
		return false
	}
	prev := en.hovered.Items()
	en.hovered = next
	for _, sh := range prev {
		if !en.hovered.Contains(sh) && !en.selected.Contains(sh) {
			sh.UpdateDefault()
		}
	}
	for _, sh := range en.hovered.Items() {
		if !en.selected.Contains(sh) {
			sh.UpdateMouseOver()
		}
	}
	return true
}

// ClearHover clears the hovered set.
func (en *Engine) ClearHover() bool {
	return en.Hover(nil)
}

// Select updates the selection from the shapes under a click or
// rectangle according to the mode: SelectOne replaces the selection,
// ExtendContinuous adds to it, and ExtendOne toggles each shape.
// Only selectable shapes are considered. It returns whether
// the selection changed.
func (en *Engine) Select(shapes []shape.Shape, mode events.SelectModes) bool {
	en.init()
	cand := filter(shapes, selectable)
	switch mode {
	case events.ExtendContinuous:
		next := en.selected.Clone()
		for _, sh := range cand.Items() {
			next.Add(sh)
		}
		return en.setSelected(next)
	case events.ExtendOne:
		next := en.selected.Clone()
		for _, sh := range cand.Items() {
			if !next.Remove(sh) {
				next.Add(sh)
			}
		}
		return en.setSelected(next)
	}
	return en.setSelected(cand)
}

// SetSelected replaces the selection with the selectable ones among the
// given shapes, returning whether the selection changed.
func (en *Engine) SetSelected(shapes ...shape.Shape) bool {
	return en.setSelected(filter(shapes, selectable))
}

// ClearSelection deselects all shapes.
func (en *Engine) ClearSelection() bool {
	return en.setSelected(NewSet[shape.Shape]())
}

func (en *Engine) setSelected(next *Set[shape.Shape]) bool {
	en.init()
	if next.Equal(en.selected) {
		return false
	}
	prev := en.selected
	en.selected = next
	for _, sh := range prev.Items() {
		if !en.selected.Contains(sh) {
			en.restore(sh)
		}
	}
	for _, sh := range en.selected.Items() {
		sh.UpdateSelect()
	}
	slog.Debug("selection.Engine: selection changed", "selected", en.selected.Len())
	en.notify()
	return true
}

func (en *Engine) notify() {
	sel := en.selected.Items()
	for _, fun := range en.listeners {
		fun(sel)
	}
}

// Retain drops the shapes for which alive returns false from both sets,
// resetting them to Default. It notifies if the selection changed.
func (en *Engine) Retain(alive func(sh shape.Shape) bool) bool {
	en.init()
	for _, sh := range en.hovered.Items() {
		if !alive(sh) {
			en.hovered.Remove(sh)
			sh.UpdateDefault()
		}
	}
	changed := false
	for _, sh := range en.selected.Items() {
		if !alive(sh) {
			en.selected.Remove(sh)
			sh.UpdateDefault()
			changed = true
		}
	}
	if changed {
		en.notify()
	}
	return changed
}
