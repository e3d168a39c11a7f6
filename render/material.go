// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Material describes the material properties of a surface:
// the main color, whose alpha component determines opacity,
// an emissive glow color, and a specular shininess factor.
type Material struct {

	// Color is the main color of surface, used for both ambient and diffuse color
	Color color.RGBA

	// Emissive is the color that surface emits independent of any lighting
	Emissive color.RGBA

	// Shiny is the specular shininess factor
	Shiny float32
}

// NewMaterial returns a new material with default parameters
// and the given color.
func NewMaterial(clr color.RGBA) *Material {
	mt := &Material{}
	mt.Defaults()
	mt.Color = clr
	return mt
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = colornames.Gray
	mt.Emissive = color.RGBA{}
	mt.Shiny = 30
}

// IsTransparent returns true if the color is not fully opaque.
func (mt *Material) IsTransparent() bool {
	return mt.Color.A < 255
}
