// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/xyzedit/geom"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-4

func assertBox(t *testing.T, want, got math32.Box3) {
	t.Helper()
	for d := math32.X; d <= math32.Z; d++ {
		assert.InDelta(t, want.Min.Dim(d), got.Min.Dim(d), tol)
		assert.InDelta(t, want.Max.Dim(d), got.Max.Dim(d), tol)
	}
}

func TestBox(t *testing.T) {
	ms := NewBox(mgl32.Vec3{2, 2, 2})
	assert.Equal(t, 8, len(ms.Vertices))
	assert.Equal(t, 12, ms.NumTriangles())
	assertBox(t, math32.B3(-1, -1, -1, 1, 1, 1), ms.Bounds())

	// every triangle must be hit by some axis-aligned ray through the faces
	ry, _ := geom.NewRay(mgl32.Vec3{0.3, 0.2, 10}, mgl32.Vec3{0, 0, -1})
	hits := 0
	for i := 0; i < ms.NumTriangles(); i++ {
		a, b, c := ms.Triangle(i)
		if _, ok := ry.IntersectTriangle(a, b, c); ok {
			hits++
		}
	}
	assert.Equal(t, 2, hits) // front and back face
}

func TestSphere(t *testing.T) {
	ms := NewSphere(mgl32.Vec3{1, 0, 0}, 2, 16)
	assert.False(t, ms.IsEmpty())
	assertBox(t, math32.B3(-1, -2, -2, 3, 2, 2), ms.Bounds())
}

func TestTubeAndArrow(t *testing.T) {
	tb := NewTube(mgl32.Vec3{}, mgl32.Vec3{0, 0, 4}, 1, 8)
	assert.False(t, tb.IsEmpty())
	bb := tb.Bounds()
	assert.InDelta(t, 0, bb.Min.Z, tol)
	assert.InDelta(t, 4, bb.Max.Z, tol)
	assert.InDelta(t, 0.5, bb.Max.X, tol)

	assert.True(t, NewTube(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, 1, 8).IsEmpty())

	ar := NewArrow(mgl32.Vec3{}, mgl32.Vec3{2, 0, 0}, 0.1, 0.5, 8)
	ab := ar.Bounds()
	assert.InDelta(t, 2, ab.Max.X, tol)
	assert.InDelta(t, 0.1, ab.Max.Y, tol) // head is twice the shaft diameter
	assert.True(t, NewArrow(mgl32.Vec3{}, mgl32.Vec3{}, 0.1, 0.5, 8).IsEmpty())
}

func TestTorus(t *testing.T) {
	ms := NewTorus(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, 2, 0.2, 32)
	bb := ms.Bounds()
	assert.InDelta(t, 2.1, bb.Max.X, 0.01)
	assert.InDelta(t, 0.1, bb.Max.Y, 0.01)
	assert.True(t, NewTorus(mgl32.Vec3{}, mgl32.Vec3{}, 2, 0.2, 32).IsEmpty())
}

func TestBoundingBoxAndMerge(t *testing.T) {
	bx := math32.B3(-1, -1, -1, 1, 1, 1)
	wire := NewBoundingBox(bx, 0.1)
	assert.False(t, wire.IsEmpty())
	wb := wire.Bounds()
	assert.InDelta(t, 1.05, wb.Max.X, 0.01)
	assert.True(t, NewBoundingBox(math32.B3Empty(), 0.1).IsEmpty())

	a := NewBox(mgl32.Vec3{1, 1, 1})
	b := NewBoxAt(mgl32.Vec3{5, 0, 0}, mgl32.Vec3{1, 1, 1})
	m := Merge("both", a, b)
	assert.Equal(t, 24, m.NumTriangles())
	assert.InDelta(t, 5.5, m.Bounds().Max.X, tol)
	_, _, c := m.Triangle(23)
	assert.InDelta(t, 5, c[0], 0.51)
}

func TestPolylineAndGrid(t *testing.T) {
	pl := NewPolyline([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, 0.2, 8)
	bb := pl.Bounds()
	assert.InDelta(t, 1.1, bb.Max.X, 0.01)
	assert.InDelta(t, 1.1, bb.Max.Y, 0.01)

	gr := NewGrid(2, 1, 0.01)
	assert.False(t, gr.IsEmpty())
	assert.InDelta(t, 2, gr.Bounds().Max.Z, 0.01)
	assert.True(t, NewGrid(2, 0, 0.01).IsEmpty())
}
