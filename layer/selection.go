// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"image"

	"cogentcore.org/xyzedit/events"
	"cogentcore.org/xyzedit/selection"
	"cogentcore.org/xyzedit/shape"
)

// SelectionLayer is a [ShapeLayer] whose shapes can be selected by
// clicking on them or dragging a rectangle over them, and show hover
// feedback under the pointer. Every selected shape is decorated with
// a [shape.BoundingBox].
//
// A click is a press and release of the left button that moves less
// than the DragThreshold setting, and selects all shapes under the
// point; a larger move selects the shapes under the rectangle on
// release. Hover updates are deferred to the end of the event cycle,
// so any number of moves in one cycle cost one hit-test.
type SelectionLayer struct {
	ShapeLayer

	// Engine tracks the selected and hovered shapes
	Engine selection.Engine

	decorations []*shape.BoundingBox
	hooked      map[shape.Shape]bool

	pressed  bool
	rectDrag bool
	pressPos image.Point

	hoverScheduled bool
	hoverPos       image.Point
}

// NewSelectionLayer returns a new empty selection layer.
func NewSelectionLayer(name string) *SelectionLayer {
	sl := &SelectionLayer{}
	sl.initSelection(sl, name)
	return sl
}

func (sl *SelectionLayer) initSelection(this Layer, name string) {
	sl.Init(this, name)
	sl.hooked = make(map[shape.Shape]bool)
	sl.Engine.OnChanged(func(selected []shape.Shape) {
		sl.rebuildDecorations()
	})
}

// OnSelectionChanged adds a function called once for every change
// of the selected shapes.
func (sl *SelectionLayer) OnSelectionChanged(fun func(selected []shape.Shape)) {
	sl.Engine.OnChanged(fun)
}

// Selected returns the selected shapes.
func (sl *SelectionLayer) Selected() []shape.Shape {
	return sl.Engine.Selected()
}

// Decorations returns the bounding boxes of the selected shapes.
func (sl *SelectionLayer) Decorations() []*shape.BoundingBox {
	return sl.decorations
}

// rebuildDecorations replaces the bounding boxes with new ones
// for the current selection.
func (sl *SelectionLayer) rebuildDecorations() {
	for _, bb := range sl.decorations {
		sl.RemoveVisual(bb.Visual())
	}
	sl.decorations = nil
	st := sl.Settings()
	for _, sh := range sl.Engine.Selected() {
		bb := shape.NewBoundingBox(sh.Name()+"-bbox", st.BoundingBoxColor)
		bb.SetBox(sh.Visual().WorldBounds(), st.BoundingBoxRatio)
		sl.decorations = append(sl.decorations, bb)
		sl.AddVisual(bb.Visual())
	}
}

// adopt applies the settings colors to a shape and refreshes the
// decorations when a selected shape changes.
func (sl *SelectionLayer) adopt(sh shape.Shape) {
	st := sl.Settings()
	sb := sh.AsBase()
	if sb.Selection != nil {
		sb.Selection.Material.Color = st.SelectedColor
	}
	if sb.Hover != nil {
		sb.Hover.Material.Color = st.HoverColor
	}
	if sl.hooked[sh] {
		return
	}
	sl.hooked[sh] = true
	sb.OnChanged(func() {
		if sl.Engine.IsSelected(sh) {
			sl.rebuildDecorations()
		}
	})
}

// Drawing drops removed shapes from the selection, and adds the
// shapes and then the decorations to the scene.
func (sl *SelectionLayer) Drawing() {
	sl.Engine.Retain(sl.HasShape)
	for _, sh := range sl.shapes {
		sl.adopt(sh)
	}
	sl.ShapeLayer.Drawing()
	for _, bb := range sl.decorations {
		sl.AddVisual(bb.Visual())
	}
}

// captured returns whether a manipulator of the view holds the pointer.
func (sl *SelectionLayer) captured() bool {
	return sl.view != nil && sl.view.Capture().IsCaptured()
}

func (sl *SelectionLayer) OnMouseDown(ev *events.Mouse) {
	if ev.IsHandled() || ev.Button != events.Left || sl.captured() {
		return
	}
	sl.pressed = true
	sl.rectDrag = false
	sl.pressPos = ev.Where
}

func (sl *SelectionLayer) OnMouseMove(ev *events.Mouse) {
	if sl.pressed && !sl.rectDrag {
		d := ev.Where.Sub(sl.pressPos)
		thr := sl.Settings().DragThreshold
		if d.X*d.X+d.Y*d.Y > thr*thr {
			sl.rectDrag = true
		}
	}
	if !sl.Settings().Hover || sl.hoverSuppressed() {
		return
	}
	sl.scheduleHover(ev.Where)
}

// OnMouseUp selects what is under the pointer, or inside the dragged
// rectangle. A release that ends a manipulator drag is ignored, including
// when this layer saw the press before the manipulator layer did.
func (sl *SelectionLayer) OnMouseUp(ev *events.Mouse) {
	if !sl.pressed {
		return
	}
	sl.pressed = false
	if ev.IsHandled() || ev.Button != events.Left || sl.captured() {
		sl.rectDrag = false
		return
	}
	vp := sl.Viewport()
	if vp == nil {
		return
	}
	var shapes []shape.Shape
	if sl.rectDrag {
		shapes = sl.shapesOf(vp.HitTestRect(image.Rectangle{Min: sl.pressPos, Max: ev.Where}.Canon()))
	} else {
		shapes = sl.shapesOf(vp.HitTest(ev.Where))
	}
	sl.rectDrag = false
	mode := events.SelectModeBits(ev.Mods, sl.Settings().ExtendModifier())
	sl.Engine.Select(shapes, mode)
}

func (sl *SelectionLayer) OnMouseLeave(ev *events.Mouse) {
	sl.pressed = false
	sl.rectDrag = false
	sl.Engine.ClearHover()
}

// hoverSuppressed returns whether hover updates are off because
// a manipulator holds the pointer capture.
func (sl *SelectionLayer) hoverSuppressed() bool {
	return sl.Settings().SuppressHoverWhileDragging && sl.captured()
}

// scheduleHover records the pointer position and schedules one
// hover update for the end of the event cycle.
func (sl *SelectionLayer) scheduleHover(pt image.Point) {
	sl.hoverPos = pt
	if sl.hoverScheduled || sl.view == nil {
		return
	}
	sl.hoverScheduled = true
	sl.view.Deferred().Schedule(sl.updateHover)
}

func (sl *SelectionLayer) updateHover() {
	sl.hoverScheduled = false
	vp := sl.Viewport()
	if vp == nil || sl.hoverSuppressed() {
		return
	}
	sl.Engine.Hover(sl.shapesOf(vp.HitTest(sl.hoverPos)))
}
