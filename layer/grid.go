// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layer

import (
	"image/color"

	"cogentcore.org/xyzedit/mesh"
	"cogentcore.org/xyzedit/render"
	"golang.org/x/image/colornames"
)

// GridLayer draws a ground grid in the XZ plane. It has no shapes,
// and the grid is not hit-tested.
type GridLayer struct {
	Base

	// Extent is the half-size of the grid
	Extent float32 `default:"10"`

	// Step is the distance between grid lines
	Step float32 `default:"1"`

	// Diameter is the thickness of grid lines
	Diameter float32 `default:"0.01"`

	// Color is the color of grid lines
	Color color.RGBA

	visual *render.Visual
}

// NewGridLayer returns a new grid layer.
func NewGridLayer(name string, extent, step float32) *GridLayer {
	gl := &GridLayer{Extent: extent, Step: step, Diameter: 0.01, Color: colornames.Darkgray}
	gl.Init(gl, name)
	return gl
}

// Drawing builds the grid the first time and after Update.
func (gl *GridLayer) Drawing() {
	if gl.visual == nil {
		gl.visual = render.NewVisual(gl.Nm, gl)
		gl.visual.NoHit = true
		gl.visual.Mesh = mesh.NewGrid(gl.Extent, gl.Step, gl.Diameter)
		gl.visual.Material = render.NewMaterial(gl.Color)
	}
	gl.AddVisual(gl.visual)
}

// Update rebuilds the grid from the current parameters.
func (gl *GridLayer) Update() {
	gl.visual = nil
	gl.redraw()
}
