// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides a minimal triangle mesh and the parametric
// primitives (boxes, tubes, arrows, rings) used for shape geometry,
// manipulator handles and selection decorations.
package mesh

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/xyzedit/geom"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle mesh in local (model) coordinates.
// Every three Indices define one triangle.
type Mesh struct {
	// Name of the mesh, for debugging
	Name string

	// Vertices are the vertex positions
	Vertices []mgl32.Vec3

	// Indices are the triangle vertex indices, three per triangle
	Indices []uint32
}

// New returns a new empty mesh with the given name.
func New(name string) *Mesh {
	return &Mesh{Name: name}
}

// NumTriangles returns the number of triangles.
func (ms *Mesh) NumTriangles() int {
	if ms == nil {
		return 0
	}
	return len(ms.Indices) / 3
}

// Triangle returns the three vertices of triangle i.
func (ms *Mesh) Triangle(i int) (a, b, c mgl32.Vec3) {
	ix := ms.Indices[3*i : 3*i+3]
	return ms.Vertices[ix[0]], ms.Vertices[ix[1]], ms.Vertices[ix[2]]
}

// IsEmpty returns true if there are no triangles.
func (ms *Mesh) IsEmpty() bool {
	return ms.NumTriangles() == 0
}

// Bounds returns the bounding box of all vertices in local coordinates.
func (ms *Mesh) Bounds() math32.Box3 {
	if ms == nil {
		return math32.B3Empty()
	}
	return geom.BoxOf(ms.Vertices...)
}

// AddVertex adds a vertex and returns its index.
func (ms *Mesh) AddVertex(v mgl32.Vec3) uint32 {
	ms.Vertices = append(ms.Vertices, v)
	return uint32(len(ms.Vertices) - 1)
}

// AddTriangle adds a triangle with the given vertex indices.
func (ms *Mesh) AddTriangle(a, b, c uint32) {
	ms.Indices = append(ms.Indices, a, b, c)
}

// AddQuad adds two triangles for the quad a, b, c, d in order.
func (ms *Mesh) AddQuad(a, b, c, d uint32) {
	ms.AddTriangle(a, b, c)
	ms.AddTriangle(a, c, d)
}

// Append adds all of the other mesh's triangles to this mesh.
func (ms *Mesh) Append(other *Mesh) {
	if other == nil {
		return
	}
	off := uint32(len(ms.Vertices))
	ms.Vertices = append(ms.Vertices, other.Vertices...)
	for _, ix := range other.Indices {
		ms.Indices = append(ms.Indices, ix+off)
	}
}

// Merge returns a new mesh with all the triangles of the given meshes.
func Merge(name string, meshes ...*Mesh) *Mesh {
	ms := New(name)
	for _, m := range meshes {
		ms.Append(m)
	}
	return ms
}
