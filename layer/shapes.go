// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"slices"

	"cogentcore.org/xyzedit/render"
	"cogentcore.org/xyzedit/shape"
)

// ShapeLayer is a layer with an ordered collection of shapes.
// Any change to the collection redraws the layer.
type ShapeLayer struct {
	Base

	shapes []shape.Shape
	has    map[shape.Shape]bool
}

// NewShapeLayer returns a new empty shape layer.
func NewShapeLayer(name string) *ShapeLayer {
	sl := &ShapeLayer{}
	sl.Init(sl, name)
	return sl
}

// Shapes returns the shapes in order.
func (sl *ShapeLayer) Shapes() []shape.Shape {
	return slices.Clone(sl.shapes)
}

// HasShape returns whether the shape is in the layer.
func (sl *ShapeLayer) HasShape(sh shape.Shape) bool {
	return sl.has[sh]
}

// AddShape adds the shape at the end, returning false if it
// is nil or already in the layer.
func (sl *ShapeLayer) AddShape(sh shape.Shape) bool {
	return sl.InsertShape(len(sl.shapes), sh)
}

// InsertShape inserts the shape at the index, returning false if it
// is nil or already in the layer.
func (sl *ShapeLayer) InsertShape(idx int, sh shape.Shape) bool {
	if sh == nil || sl.has[sh] {
		return false
	}
	if sl.has == nil {
		sl.has = make(map[shape.Shape]bool)
	}
	idx = min(max(idx, 0), len(sl.shapes))
	sl.shapes = slices.Insert(sl.shapes, idx, sh)
	sl.has[sh] = true
	sl.redraw()
	return true
}

// RemoveShape removes the shape, returning false if it is not in the layer.
func (sl *ShapeLayer) RemoveShape(sh shape.Shape) bool {
	i := slices.Index(sl.shapes, sh)
	if i < 0 {
		return false
	}
	sl.shapes = slices.Delete(sl.shapes, i, i+1)
	delete(sl.has, sh)
	sl.redraw()
	return true
}

// ResetShapes removes all shapes.
func (sl *ShapeLayer) ResetShapes() {
	sl.shapes = nil
	clear(sl.has)
	sl.redraw()
}

// ShapeOf returns the shape of the layer drawn by the visual, or nil.
func (sl *ShapeLayer) ShapeOf(vs *render.Visual) shape.Shape {
	for _, sh := range sl.shapes {
		if sh.Visual() == vs {
			return sh
		}
	}
	return nil
}

// shapesOf returns the shapes of the layer among the hits, in hit order.
func (sl *ShapeLayer) shapesOf(hits []render.Hit) []shape.Shape {
	var shapes []shape.Shape
	for _, ht := range hits {
		if sh, ok := ht.Container.(shape.Shape); ok && sl.has[sh] {
			shapes = append(shapes, sh)
		}
	}
	return shapes
}

// Drawing adds the visual of every shape to the scene.
func (sl *ShapeLayer) Drawing() {
	for _, sh := range sl.shapes {
		sl.AddVisual(sh.Visual())
	}
}

// OnCameraUpdate updates the shapes that depend on the camera.
func (sl *ShapeLayer) OnCameraUpdate() {
	vp := sl.Viewport()
	if vp == nil {
		return
	}
	for _, sh := range sl.shapes {
		if cu, ok := sh.(shape.CameraUpdater); ok {
			cu.CameraUpdate(vp)
		}
	}
}
