// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the interaction settings of a 3D view,
// which are saved and loaded as TOML or YAML, and can be watched
// for changes.
package settings

import (
	"image/color"
	"log/slog"

	"cogentcore.org/xyzedit/events/key"
	"github.com/jinzhu/copier"
	"golang.org/x/image/colornames"
)

// Settings are the interaction settings of a view.
type Settings struct {

	// BoundingBoxRatio sets the edge thickness of selection bounding
	// boxes, as the box diagonal divided by this ratio
	BoundingBoxRatio float32 `default:"50"`

	// BoundingBoxColor is the color of selection bounding boxes
	BoundingBoxColor color.RGBA

	// HoverColor is the color of shapes under the pointer
	HoverColor color.RGBA

	// SelectedColor is the color of selected shapes
	SelectedColor color.RGBA

	// DragThreshold is the distance in pixels the pointer must move
	// with the button down for a rectangle selection instead of a click
	DragThreshold int `default:"4"`

	// ExtendKey is the modifier key that toggles shapes in and out of
	// the selection; Shift then adds to it. Empty means single selection.
	ExtendKey string `default:"Control"`

	// Hover enables hover feedback for shapes under the pointer
	Hover bool `default:"true"`

	// SuppressHoverWhileDragging stops hover updates while a
	// manipulator is being dragged
	SuppressHoverWhileDragging bool `default:"true"`

	// ManipulatorPixels, if > 0, keeps manipulators this many pixels thick
	ManipulatorPixels float32

	// Camera has the default camera parameters
	Camera CameraSettings
}

// CameraSettings are the default camera parameters.
type CameraSettings struct {

	// FOV is the vertical field of view in degrees
	FOV float32 `default:"30"`

	// Near is the near clipping distance
	Near float32 `default:"0.01"`

	// Far is the far clipping distance
	Far float32 `default:"1000"`

	// Distance is the distance from the camera to its target
	Distance float32 `default:"10"`
}

// New returns new default settings.
func New() *Settings {
	st := &Settings{}
	st.Defaults()
	return st
}

func (st *Settings) Defaults() {
	st.BoundingBoxRatio = 50
	st.BoundingBoxColor = colornames.Yellow
	st.HoverColor = colornames.Lightskyblue
	st.SelectedColor = colornames.Yellow
	st.DragThreshold = 4
	st.ExtendKey = "Control"
	st.Hover = true
	st.SuppressHoverWhileDragging = true
	st.ManipulatorPixels = 0
	st.Camera.Defaults()
}

func (cs *CameraSettings) Defaults() {
	cs.FOV = 30
	cs.Near = .01
	cs.Far = 1000
	cs.Distance = 10
}

// ExtendModifier returns the modifier for ExtendKey, or 0 if it is
// empty or unknown.
func (st *Settings) ExtendModifier() key.Modifiers {
	mod, err := key.ModifierFromName(st.ExtendKey)
	if err != nil {
		slog.Error(err.Error())
		return 0
	}
	return mod
}

// Clone returns a deep copy of the settings.
func (st *Settings) Clone() *Settings {
	cp := &Settings{}
	copier.CopyWithOption(cp, st, copier.Option{DeepCopy: true})
	return cp
}
