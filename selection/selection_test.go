// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"testing"

	"cogentcore.org/xyzedit/events"
	"cogentcore.org/xyzedit/shape"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	st := NewSet("a", "b", "a", "c")
	assert.Equal(t, []string{"a", "b", "c"}, st.Items())
	assert.False(t, st.Add("b"))
	assert.True(t, st.Remove("a"))
	assert.False(t, st.Remove("a"))
	assert.Equal(t, []string{"b", "c"}, st.Items())
	assert.True(t, st.Contains("c"))

	assert.True(t, st.Equal(NewSet("c", "b")))
	assert.False(t, st.Equal(NewSet("c")))
	assert.False(t, st.Equal(NewSet("c", "d")))

	cl := st.Clone()
	cl.Add("d")
	assert.Equal(t, []string{"b", "c"}, st.Items())
	assert.Equal(t, []string{"b", "c", "d"}, cl.Items())

	st.Reset()
	assert.Equal(t, 0, st.Len())
	assert.True(t, st.Add("a"))
	assert.True(t, (&Set[int]{}).Equal(NewSet[int]()))
}

type counter struct {
	calls int
	last  []shape.Shape
}

func (ct *counter) changed(sel []shape.Shape) {
	ct.calls++
	ct.last = sel
}

func TestSelectReplaces(t *testing.T) {
	a, b := shape.NewCube("a", 1), shape.NewCube("b", 1)
	en := &Engine{}
	ct := &counter{}
	en.OnChanged(ct.changed)

	assert.True(t, en.Select([]shape.Shape{a}, events.SelectOne))
	assert.True(t, en.Select([]shape.Shape{b}, events.SelectOne))
	assert.Equal(t, []shape.Shape{b}, en.Selected())
	assert.Equal(t, shape.Default, a.State())
	assert.Equal(t, shape.Selected, b.State())
	assert.Equal(t, 2, ct.calls)

	assert.False(t, en.Select([]shape.Shape{b}, events.SelectOne), "no change")
	assert.Equal(t, 2, ct.calls)

	assert.True(t, en.Select(nil, events.SelectOne))
	assert.Empty(t, en.Selected())
	assert.Equal(t, shape.Default, b.State())
	assert.Equal(t, 3, ct.calls)
}

func TestSelectOneNotificationPerGesture(t *testing.T) {
	a, b, c := shape.NewCube("a", 1), shape.NewCube("b", 1), shape.NewCube("c", 1)
	c.Selection = nil
	en := &Engine{}
	ct := &counter{}
	en.OnChanged(ct.changed)

	assert.True(t, en.Select([]shape.Shape{a, b, c, a}, events.SelectOne))
	assert.Equal(t, 1, ct.calls)
	assert.Equal(t, []shape.Shape{a, b}, ct.last)
	assert.Equal(t, shape.Default, c.State())
}

func TestSelectModes(t *testing.T) {
	a, b := shape.NewCube("a", 1), shape.NewCube("b", 1)
	en := &Engine{}
	en.SetSelected(a)

	assert.True(t, en.Select([]shape.Shape{b}, events.ExtendContinuous))
	assert.Equal(t, []shape.Shape{a, b}, en.Selected())
	assert.False(t, en.Select([]shape.Shape{b}, events.ExtendContinuous))

	assert.True(t, en.Select([]shape.Shape{a}, events.ExtendOne))
	assert.Equal(t, []shape.Shape{b}, en.Selected())
	assert.Equal(t, shape.Default, a.State())
	assert.True(t, en.Select([]shape.Shape{a}, events.ExtendOne))
	assert.True(t, en.IsSelected(a))

	assert.False(t, en.Select(nil, events.ExtendOne))
	assert.True(t, en.ClearSelection())
	assert.False(t, en.ClearSelection())
}

func TestHover(t *testing.T) {
	a, b, c := shape.NewCube("a", 1), shape.NewCube("b", 1), shape.NewCube("c", 1)
	c.Hover = nil
	en := &Engine{}

	assert.True(t, en.Hover([]shape.Shape{a, c}))
	assert.Equal(t, []shape.Shape{a}, en.Hovered())
	assert.Equal(t, shape.Hover, a.State())
	assert.Equal(t, shape.Default, c.State())
	assert.False(t, en.Hover([]shape.Shape{c, a}))

	// selected wins over hover
	en.SetSelected(b)
	assert.True(t, en.Hover([]shape.Shape{b}))
	assert.Equal(t, shape.Selected, b.State())
	assert.Equal(t, shape.Default, a.State())

	// a deselected shape under the pointer reverts to Hover
	en.ClearSelection()
	assert.Equal(t, shape.Hover, b.State())

	assert.True(t, en.ClearHover())
	assert.Equal(t, shape.Default, b.State())
	assert.False(t, en.ClearHover())
}

func TestRetain(t *testing.T) {
	a, b := shape.NewCube("a", 1), shape.NewCube("b", 1)
	en := &Engine{}
	ct := &counter{}
	en.OnChanged(ct.changed)
	en.SetSelected(a, b)
	en.Hover([]shape.Shape{a})

	alive := func(sh shape.Shape) bool { return sh != a }
	assert.True(t, en.Retain(alive))
	assert.Equal(t, []shape.Shape{b}, en.Selected())
	assert.Empty(t, en.Hovered())
	assert.Equal(t, shape.Default, a.State())
	assert.Equal(t, 2, ct.calls)

	assert.False(t, en.Retain(alive))
	assert.Equal(t, 2, ct.calls)
}
