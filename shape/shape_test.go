// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"image"
	"slices"
	"testing"

	"cogentcore.org/xyzedit/geom"
	"cogentcore.org/xyzedit/manip"
	"cogentcore.org/xyzedit/render"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewport() *render.Viewport {
	return render.NewViewport(render.NewScene(), image.Pt(200, 200))
}

func screenOf(t *testing.T, vp *render.Viewport, p mgl32.Vec3) mgl32.Vec2 {
	t.Helper()
	sp, ok := vp.Project(p)
	require.True(t, ok)
	return sp
}

func manipByParam(sh Manipulable, param string) *manip.Manipulator {
	for m := range sh.Manipulators() {
		if m.Param == param {
			return m
		}
	}
	return nil
}

func TestCubeGeometry(t *testing.T) {
	cb := NewCube("cube", 2)
	bb := cb.Visual().WorldBounds()
	assert.InDelta(t, -1, bb.Min.X, 1e-5)
	assert.InDelta(t, 1, bb.Max.Z, 1e-5)
	assert.Equal(t, any(cb), cb.Visual().Owner)
	assert.Equal(t, "cube", cb.Name())

	rev := cb.Revision()
	assert.False(t, cb.SetSideLength(-1))
	assert.False(t, cb.SetSideLength(math32.NaN()))
	assert.Equal(t, float32(2), cb.SideLength)
	assert.Equal(t, rev, cb.Revision())

	assert.True(t, cb.SetSideLength(4))
	assert.Equal(t, rev+1, cb.Revision())
	assert.InDelta(t, 2, cb.Visual().WorldBounds().Max.X, 1e-5)

	assert.Equal(t, float32(1), NewCube("unit", 0).SideLength)
}

func TestVisualStates(t *testing.T) {
	cb := NewCube("cube", 1)
	assert.Equal(t, Default, cb.State())
	assert.True(t, cb.UseSelectable())
	assert.True(t, cb.UseMouseOverable())

	cb.UpdateMouseOver()
	assert.Equal(t, Hover, cb.State())
	assert.Same(t, cb.Hover.Material, cb.Visual().Material)

	cb.UpdateSelect()
	assert.Equal(t, Selected, cb.State())
	assert.Same(t, cb.Selection.Material, cb.Visual().Material)

	// redrawing keeps the state material
	cb.SetSideLength(3)
	assert.Same(t, cb.Selection.Material, cb.Visual().Material)

	cb.UpdateDefault()
	assert.Equal(t, Default, cb.State())
	assert.Same(t, cb.Material, cb.Visual().Material)

	cb.Selection = nil
	cb.UpdateSelect()
	assert.Equal(t, Default, cb.State())
	assert.False(t, cb.UseSelectable())
}

func TestCubeSideLengthManipulator(t *testing.T) {
	vp := newViewport()
	cb := NewCube("cube", 2)
	m := manipByParam(cb, ParamSideLength)
	require.NotNil(t, m)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, m.Position)

	rev := cb.Revision()
	require.True(t, m.Press(vp, screenOf(t, vp, mgl32.Vec3{1, 0, 0})))
	_, ok := m.Drag(vp, screenOf(t, vp, mgl32.Vec3{2, 0, 0}))
	require.True(t, ok)
	m.Release()

	assert.InDelta(t, 4, cb.SideLength, 1e-3)
	assert.Equal(t, rev+1, cb.Revision(), "exactly one Drawing")
	assert.InDelta(t, 2, m.Position.X(), 1e-3, "handle stays on the face")
}

func TestCubeSideLengthStaysPositive(t *testing.T) {
	vp := newViewport()
	cb := NewCube("cube", 2)
	m := manipByParam(cb, ParamSideLength)
	require.NotNil(t, m)

	// inward past the center would make the side negative
	require.True(t, m.Press(vp, screenOf(t, vp, mgl32.Vec3{1, 0, 0})))
	for _, x := range []float32{-1.5, -0.5} {
		_, ok := m.Drag(vp, screenOf(t, vp, mgl32.Vec3{x, 0, 0}))
		assert.False(t, ok)
		assert.InDelta(t, 2, cb.SideLength, 1e-3)
		assert.InDelta(t, 1, m.Position.X(), 1e-3)
		assert.InDelta(t, 0, m.Value, 1e-3)
	}

	// back out, the handle is still on the face
	_, ok := m.Drag(vp, screenOf(t, vp, mgl32.Vec3{1.5, 0, 0}))
	require.True(t, ok)
	m.Release()
	assert.InDelta(t, 3, cb.SideLength, 1e-3)
	assert.InDelta(t, 1.5, m.Position.X(), 1e-3)
	assert.InDelta(t, cb.SideLength/2, m.Position.X(), 1e-3)
	assert.InDelta(t, 0.5, m.Value, 1e-3)
}

func TestCubeRotateManipulator(t *testing.T) {
	vp := newViewport()
	vp.Camera.Pos = mgl32.Vec3{0, 10, 0}
	vp.Camera.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1})
	cb := NewCube("cube", 2)
	m := manipByParam(cb, ParamRotation)
	require.NotNil(t, m)
	r := m.Length

	rev := cb.Revision()
	require.True(t, m.Press(vp, screenOf(t, vp, mgl32.Vec3{r, 0, 0})))
	c := math32.Sqrt(0.5)
	_, ok := m.Drag(vp, screenOf(t, vp, mgl32.Vec3{r * c, 0, -r * c}))
	require.True(t, ok)
	m.Release()

	assert.InDelta(t, 45, m.Value, 0.05)
	assert.Equal(t, rev+1, cb.Revision())
	p := geom.TransformPoint(mgl32.Vec3{1, 0, 0}, cb.Transform())
	assert.InDelta(t, c, p.X(), 1e-3)
	assert.InDelta(t, -c, p.Z(), 1e-3)
	assert.Equal(t, cb.Transform(), cb.Visual().Transform)
}

func TestManipulatorsAreFresh(t *testing.T) {
	cb := NewCube("cube", 1)
	first := slices.Collect(cb.Manipulators())
	second := slices.Collect(cb.Manipulators())
	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.NotSame(t, first[0], second[0])

	for m := range cb.Manipulators() {
		assert.Equal(t, ParamSideLength, m.Param)
		break
	}
}

func TestSphere(t *testing.T) {
	vp := newViewport()
	sp := NewSphere("sphere", 1)
	ms := slices.Collect(sp.Manipulators())
	require.Len(t, ms, 4)
	assert.Equal(t, ParamRadius, ms[0].Param)
	for i, m := range ms[1:] {
		assert.Equal(t, ParamPosition, m.Param)
		assert.Equal(t, i, m.Index)
	}

	rm := ms[0]
	require.True(t, rm.Press(vp, screenOf(t, vp, mgl32.Vec3{1, 0, 0})))
	_, ok := rm.Drag(vp, screenOf(t, vp, mgl32.Vec3{1.5, 0, 0}))
	require.True(t, ok)
	rm.Release()
	assert.InDelta(t, 1.5, sp.Radius, 1e-3)

	ym := ms[2]
	rev := sp.Revision()
	require.True(t, ym.Press(vp, screenOf(t, vp, mgl32.Vec3{0, 1, 0})))
	_, ok = ym.Drag(vp, screenOf(t, vp, mgl32.Vec3{0, 3, 0}))
	require.True(t, ok)
	ym.Release()
	assert.InDelta(t, 2, sp.WorldCenter().Y(), 1e-3)
	assert.Equal(t, rev+1, sp.Revision())

	assert.False(t, sp.SetRadius(0))
	assert.InDelta(t, 1.5, sp.Radius, 1e-3)
}

func TestPolyline(t *testing.T) {
	pl := NewPolyline("line", mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 0})
	assert.Len(t, slices.Collect(pl.Manipulators()), 9)
	assert.False(t, pl.Visual().Mesh.IsEmpty())

	rev := pl.Revision()
	assert.True(t, pl.ManipulatorChanged(manip.Message{Param: ParamPoint, Index: 1, Axis: mgl32.Vec3{0, 1, 0}, Delta: 0.5}))
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0}, pl.Points[1])
	assert.Equal(t, rev+1, pl.Revision())

	assert.False(t, pl.ManipulatorChanged(manip.Message{Param: ParamPoint, Index: 7, Axis: mgl32.Vec3{0, 1, 0}, Delta: 0.5}))
	assert.Equal(t, rev+1, pl.Revision())

	assert.False(t, pl.SetPoint(-1, mgl32.Vec3{}))
	assert.False(t, pl.SetPoint(0, mgl32.Vec3{math32.Inf(1), 0, 0}))
	assert.True(t, pl.SetPoint(0, mgl32.Vec3{0, 0, 1}))
	assert.InDelta(t, 1, pl.Visual().WorldBounds().Max.Z, 0.05)
}

func TestLabel(t *testing.T) {
	lb := NewLabel("label", "origin", mgl32.Vec3{0, 1, 0})
	lb.SetTransform(geom.Translation(mgl32.Vec3{2, 0, 0}))
	el, anchor := lb.Presenter()
	assert.Equal(t, any(lb), el)
	assert.InDelta(t, 2, anchor.X(), 1e-6)
	assert.InDelta(t, 1, anchor.Y(), 1e-6)
	assert.Equal(t, "origin", lb.String())

	vp := newViewport()
	lb.CameraUpdate(vp)
	assert.Equal(t, float32(0.05), lb.MarkerRadius)
	lb.MarkerPixels = 10
	lb.CameraUpdate(vp)
	assert.NotEqual(t, float32(0.05), lb.MarkerRadius)
	assert.Greater(t, lb.MarkerRadius, float32(0))
}

func TestBoundingBox(t *testing.T) {
	cb := NewCube("cube", 2)
	bb := NewBoundingBox("bbox", cb.Selection.Material.Color)
	assert.False(t, bb.UseSelectable())
	assert.False(t, bb.UseMouseOverable())
	assert.True(t, bb.Visual().NoHit)

	bb.SetBox(cb.Visual().WorldBounds(), 50)
	assert.InDelta(t, math32.Sqrt(12)/50, bb.Diameter, 1e-5)
	assert.False(t, bb.Visual().Mesh.IsEmpty())

	bb.UpdateSelect()
	bb.UpdateMouseOver()
	assert.Equal(t, Default, bb.State())
}

func TestOnChanged(t *testing.T) {
	cb := NewCube("cube", 1)
	n := 0
	cb.OnChanged(func() { n++ })
	cb.SetSideLength(2)
	cb.SetTransform(geom.Translation(mgl32.Vec3{1, 0, 0}))
	cb.SetSideLength(0)
	assert.Equal(t, 1, n)
	cb.Drawing()
	assert.Equal(t, 2, n)
}
