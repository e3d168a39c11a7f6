// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"image/color"

	"cogentcore.org/xyzedit/geom"
	"cogentcore.org/xyzedit/render"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

// SelectionBehavior makes a shape selectable.
type SelectionBehavior struct {
	// Material is used while the shape is selected
	Material *render.Material
}

// NewSelectionBehavior returns a selection behavior with the given color.
func NewSelectionBehavior(clr color.RGBA) *SelectionBehavior {
	return &SelectionBehavior{Material: render.NewMaterial(clr)}
}

// HoverBehavior makes a shape show feedback when the pointer is over it.
type HoverBehavior struct {
	// Material is used while the pointer is over the shape
	Material *render.Material
}

// NewHoverBehavior returns a hover behavior with the given color.
func NewHoverBehavior(clr color.RGBA) *HoverBehavior {
	return &HoverBehavior{Material: render.NewMaterial(clr)}
}

// Base is the base type for all shapes, which provides the
// [Shape] state handling. Concrete shapes embed it, call Init,
// and implement Drawing by setting the visual mesh and calling Drawn.
type Base struct {
	// This is the concrete shape embedding this Base
	This Shape

	// Nm is the name of the shape
	Nm string

	// Material is the default material
	Material *render.Material

	// BackMaterial, if set, is used for back faces
	BackMaterial *render.Material

	// Selection makes the shape selectable, if set
	Selection *SelectionBehavior

	// Hover makes the shape hoverable, if set
	Hover *HoverBehavior

	visual    *render.Visual
	state     VisualStates
	transform mgl32.Mat4
	revision  int
	onChanged []func()
}

// Init initializes the base for the given concrete shape,
// with default materials and behaviors.
func (sb *Base) Init(this Shape, name string) {
	sb.This = this
	sb.Nm = name
	sb.Material = render.NewMaterial(colornames.Lightgray)
	sb.Selection = NewSelectionBehavior(colornames.Yellow)
	sb.Hover = NewHoverBehavior(colornames.Lightskyblue)
	sb.transform = mgl32.Ident4()
	sb.visual = render.NewVisual(name, this)
	sb.visual.Transform = sb.transform
	sb.visual.Material = sb.Material
}

func (sb *Base) AsBase() *Base {
	return sb
}

func (sb *Base) Name() string {
	return sb.Nm
}

func (sb *Base) Visual() *render.Visual {
	return sb.visual
}

func (sb *Base) State() VisualStates {
	return sb.state
}

func (sb *Base) UseSelectable() bool {
	return sb.Selection != nil
}

func (sb *Base) UseMouseOverable() bool {
	return sb.Hover != nil
}

func (sb *Base) UpdateDefault() {
	sb.state = Default
	sb.visual.Material = sb.Material
}

func (sb *Base) UpdateSelect() {
	if sb.Selection == nil {
		return
	}
	sb.state = Selected
	sb.visual.Material = sb.Selection.Material
}

func (sb *Base) UpdateMouseOver() {
	if sb.Hover == nil {
		return
	}
	sb.state = Hover
	sb.visual.Material = sb.Hover.Material
}

// Transform returns the local to world transform of the shape.
func (sb *Base) Transform() mgl32.Mat4 {
	return sb.transform
}

// SetTransform sets the local to world transform of the shape.
func (sb *Base) SetTransform(tr mgl32.Mat4) {
	sb.transform = tr
	sb.visual.Transform = tr
}

// Revision returns the number of times the shape has been drawn.
func (sb *Base) Revision() int {
	return sb.revision
}

// OnChanged adds a function called after every Drawing.
func (sb *Base) OnChanged(fun func()) {
	sb.onChanged = append(sb.onChanged, fun)
}

// Drawn finishes a Drawing: it applies the transform and
// the material for the current state to the visual, and
// calls the OnChanged functions.
func (sb *Base) Drawn() {
	sb.revision++
	sb.visual.Transform = sb.transform
	sb.visual.BackMaterial = sb.BackMaterial
	switch {
	case sb.state == Selected && sb.Selection != nil:
		sb.visual.Material = sb.Selection.Material
	case sb.state == Hover && sb.Hover != nil:
		sb.visual.Material = sb.Hover.Material
	default:
		sb.visual.Material = sb.Material
	}
	for _, fun := range sb.onChanged {
		fun()
	}
}

// WorldCenter returns the center of the world bounds of the shape.
func (sb *Base) WorldCenter() mgl32.Vec3 {
	return geom.Vec(sb.visual.WorldBounds().Center())
}
