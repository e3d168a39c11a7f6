// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"image"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1.0e-5

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for d := 0; d < 3; d++ {
		assert.InDelta(t, want[d], got[d], tol, "component %d of %v", d, got)
	}
}

func TestSafeNormalize(t *testing.T) {
	v, ok := SafeNormalize(mgl32.Vec3{3, 0, 4})
	require.True(t, ok)
	assertVec(t, mgl32.Vec3{0.6, 0, 0.8}, v)

	_, ok = SafeNormalize(mgl32.Vec3{})
	assert.False(t, ok)

	_, ok = SafeNormalize(mgl32.Vec3{math32.Inf(1), 0, 0})
	assert.False(t, ok)
}

func TestRayPlane(t *testing.T) {
	ry, ok := NewRay(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -2})
	require.True(t, ok)
	pl, ok := NewPlane(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1})
	require.True(t, ok)

	p, ok := ry.IntersectPlane(pl)
	require.True(t, ok)
	assertVec(t, mgl32.Vec3{0, 0, 1}, p)

	// parallel
	par, _ := NewRay(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{1, 0, 0})
	_, ok = par.IntersectPlane(pl)
	assert.False(t, ok)

	// behind
	away, _ := NewRay(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 1})
	_, ok = away.IntersectPlane(pl)
	assert.False(t, ok)
	p, ok = away.IntersectLinePlane(pl)
	require.True(t, ok)
	assertVec(t, mgl32.Vec3{0, 0, 1}, p)

	_, ok = NewPlane(mgl32.Vec3{}, mgl32.Vec3{1, 2, 3})
	assert.False(t, ok)
	_, ok = NewRay(mgl32.Vec3{}, mgl32.Vec3{})
	assert.False(t, ok)
}

func TestRayTriangle(t *testing.T) {
	ry, _ := NewRay(mgl32.Vec3{0.25, 0.25, 5}, mgl32.Vec3{0, 0, -1})
	d, ok := ry.IntersectTriangle(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	require.True(t, ok)
	assert.InDelta(t, 5, d, tol)

	// opposite winding still hits
	_, ok = ry.IntersectTriangle(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0})
	assert.True(t, ok)

	miss, _ := NewRay(mgl32.Vec3{2, 2, 5}, mgl32.Vec3{0, 0, -1})
	_, ok = miss.IntersectTriangle(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	assert.False(t, ok)
}

func TestRayBox(t *testing.T) {
	bx := math32.B3(-1, -1, -1, 1, 1, 1)
	ry, _ := NewRay(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1})
	d, ok := ry.IntersectBox(bx)
	require.True(t, ok)
	assert.InDelta(t, 9, d, tol)

	inside, _ := NewRay(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})
	d, ok = inside.IntersectBox(bx)
	require.True(t, ok)
	assert.Equal(t, float32(0), d)

	miss, _ := NewRay(mgl32.Vec3{5, 0, 10}, mgl32.Vec3{0, 0, -1})
	_, ok = miss.IntersectBox(bx)
	assert.False(t, ok)

	_, ok = ry.IntersectBox(math32.B3Empty())
	assert.False(t, ok)
}

func TestBox3(t *testing.T) {
	bx := BoxOf()
	assert.True(t, bx.IsEmpty())
	assert.Equal(t, float32(0), Diagonal(bx))
	bx = BoxOf(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 0.5, 0})
	assert.False(t, bx.IsEmpty())
	assertVec(t, mgl32.Vec3{}, Vec(bx.Center()))
	assertVec(t, mgl32.Vec3{2, 2, 2}, Vec(bx.Size()))
	assert.InDelta(t, math32.Sqrt(12), Diagonal(bx), tol)

	cs := Corners(bx)
	assertVec(t, mgl32.Vec3{-1, -1, -1}, cs[0])
	assertVec(t, mgl32.Vec3{-1, -1, 1}, cs[1])
	assertVec(t, mgl32.Vec3{1, 1, 1}, cs[7])

	moved := TransformBox(bx, mgl32.Translate3D(1, 2, 3))
	assertVec(t, mgl32.Vec3{0, 1, 2}, Vec(moved.Min))
	assertVec(t, mgl32.Vec3{2, 3, 4}, Vec(moved.Max))

	rot := TransformBox(bx, mgl32.HomogRotate3D(mgl32.DegToRad(45), mgl32.Vec3{0, 1, 0}))
	assert.InDelta(t, math32.Sqrt(2), rot.Max.X, tol)

	assert.True(t, TransformBox(BoxOf(), mgl32.Translate3D(1, 2, 3)).IsEmpty())
}

func TestCombine(t *testing.T) {
	tr := Translation(mgl32.Vec3{1, 0, 0})
	rot, ok := RotationAbout(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 90)
	require.True(t, ok)

	// translate first, then rotate: (1,0,0) -> (2,0,0) -> (0,2,0)
	m := Combine(tr, rot)
	assertVec(t, mgl32.Vec3{0, 2, 0}, TransformPoint(mgl32.Vec3{1, 0, 0}, m))

	// rotate about a pivot keeps the pivot fixed
	piv, ok := RotationAbout(mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0, 0, 1}, 90)
	require.True(t, ok)
	assertVec(t, mgl32.Vec3{1, 1, 0}, TransformPoint(mgl32.Vec3{1, 1, 0}, piv))
	assertVec(t, mgl32.Vec3{0, 0, 0}, TransformDir(mgl32.Vec3{}, piv))

	_, ok = RotationAbout(mgl32.Vec3{}, mgl32.Vec3{}, 90)
	assert.False(t, ok)

	inv, ok := Invert(tr)
	require.True(t, ok)
	assertVec(t, mgl32.Vec3{}, TransformPoint(mgl32.Vec3{1, 0, 0}, inv))
	_, ok = Invert(mgl32.Mat4{})
	assert.False(t, ok)
}

func TestTriangleOverlapsRect(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)
	// vertex inside
	assert.True(t, TriangleOverlapsRect(mgl32.Vec2{5, 5}, mgl32.Vec2{20, 5}, mgl32.Vec2{20, 20}, r))
	// rect inside a large triangle
	assert.True(t, TriangleOverlapsRect(mgl32.Vec2{-100, -100}, mgl32.Vec2{100, -100}, mgl32.Vec2{0, 100}, r))
	// edges cross with no vertex or corner inside the other
	assert.True(t, TriangleOverlapsRect(mgl32.Vec2{-5, 4}, mgl32.Vec2{15, 4}, mgl32.Vec2{15, 6}, r))
	// bounds overlap but a thin diagonal misses the corner
	assert.False(t, TriangleOverlapsRect(mgl32.Vec2{-20, 30}, mgl32.Vec2{30, -20}, mgl32.Vec2{30.5, -19.5}, image.Rect(0, 0, 3, 3)))
	assert.False(t, TriangleOverlapsRect(mgl32.Vec2{11, 0}, mgl32.Vec2{20, 0}, mgl32.Vec2{20, 10}, r))
	// a segment seen edge-on
	assert.True(t, TriangleOverlapsRect(mgl32.Vec2{-5, -5}, mgl32.Vec2{15, 15}, mgl32.Vec2{5, 5}, r))
	assert.False(t, TriangleOverlapsRect(mgl32.Vec2{-5, 12}, mgl32.Vec2{12, -5}, mgl32.Vec2{12, -5}, image.Rect(0, 0, 3, 3)))
	// a point
	assert.True(t, TriangleOverlapsRect(mgl32.Vec2{3, 3}, mgl32.Vec2{3, 3}, mgl32.Vec2{3, 3}, r))
	assert.False(t, TriangleOverlapsRect(mgl32.Vec2{-3, 3}, mgl32.Vec2{-3, 3}, mgl32.Vec2{-3, 3}, r))
}
