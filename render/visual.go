// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/xyzedit/geom"
	"cogentcore.org/xyzedit/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// Visual is one renderable element of a [Scene]: a mesh in local
// coordinates, a world transform, and front and back materials.
type Visual struct {
	// Name is used for debugging
	Name string

	// Mesh is the geometry in local coordinates
	Mesh *mesh.Mesh

	// Material is the material for front faces
	Material *Material

	// BackMaterial is the material for back faces; nil means
	// back faces use Material
	BackMaterial *Material

	// Transform is the local to world transform
	Transform mgl32.Mat4

	// NoHit excludes this visual from hit-testing
	NoHit bool

	// Hidden excludes this visual from rendering and hit-testing
	Hidden bool

	// Owner is the element that contributed this visual (a shape,
	// manipulator or decoration), returned as the hit container.
	Owner any
}

// NewVisual returns a new visual with an identity transform.
func NewVisual(name string, owner any) *Visual {
	return &Visual{Name: name, Transform: mgl32.Ident4(), Owner: owner}
}

// IsHittable returns whether hit-testing should consider this visual.
func (vs *Visual) IsHittable() bool {
	return !vs.NoHit && !vs.Hidden && !vs.Mesh.IsEmpty()
}

// WorldBounds returns the axis-aligned bounds of the mesh in world coordinates.
func (vs *Visual) WorldBounds() math32.Box3 {
	if vs.Mesh == nil {
		return math32.B3Empty()
	}
	return geom.TransformBox(vs.Mesh.Bounds(), vs.Transform)
}

// IntersectRay returns the distance along the world-space ray to the
// nearest triangle of the mesh.
func (vs *Visual) IntersectRay(ry geom.Ray) (float32, bool) {
	if _, ok := ry.IntersectBox(vs.WorldBounds()); !ok {
		return 0, false
	}
	ms := vs.Mesh
	best := float32(-1)
	for i := 0; i < ms.NumTriangles(); i++ {
		a, b, c := ms.Triangle(i)
		a = geom.TransformPoint(a, vs.Transform)
		b = geom.TransformPoint(b, vs.Transform)
		c = geom.TransformPoint(c, vs.Transform)
		if d, ok := ry.IntersectTriangle(a, b, c); ok && (best < 0 || d < best) {
			best = d
		}
	}
	return best, best >= 0
}
