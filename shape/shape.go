// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides the drawable, selectable elements of a 3D view.
// Each shape owns one [render.Visual] whose geometry it regenerates in
// Drawing, and whose material follows its [VisualStates].
package shape

//go:generate core generate

import (
	"iter"

	"cogentcore.org/xyzedit/manip"
	"cogentcore.org/xyzedit/render"
	"github.com/go-gl/mathgl/mgl32"
)

// VisualStates are the display states of a shape.
type VisualStates int32 //enums:enum

const (
	// Default uses the shape's own material
	Default VisualStates = iota

	// Hover uses the hover material, when the pointer is over the shape
	Hover

	// Selected uses the selection material
	Selected
)

// Shape is the interface for all shapes, which are drawn into a
// layer's scene and can be selected and hovered.
type Shape interface {
	// Name returns the name of the shape
	Name() string

	// Visual returns the visual the shape draws into
	Visual() *render.Visual

	// Drawing regenerates the geometry from the current parameters
	Drawing()

	// UpdateDefault switches to the Default state
	UpdateDefault()

	// UpdateSelect switches to the Selected state
	UpdateSelect()

	// UpdateMouseOver switches to the Hover state
	UpdateMouseOver()

	// State returns the current display state
	State() VisualStates

	// UseSelectable returns whether the shape can be selected
	UseSelectable() bool

	// UseMouseOverable returns whether the shape shows hover feedback
	UseMouseOverable() bool

	// AsBase returns the [Base] of the shape
	AsBase() *Base
}

// Manipulable is a shape that provides manipulators when selected.
// Each call returns new manipulators, so the sequence can be iterated
// again to rebuild them.
type Manipulable interface {
	Manipulators() iter.Seq[*manip.Manipulator]
}

// CameraUpdater is a shape that updates its geometry when the camera moves.
type CameraUpdater interface {
	CameraUpdate(pj render.Projector)
}

// Presenter is a shape with a 2D element drawn over the view,
// positioned at the projection of a world anchor point.
type Presenter interface {
	Presenter() (el any, anchor mgl32.Vec3)
}
