// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "cogentcore.org/core/base/ordmap"

// Scene is the retained set of visuals shared by all layers of a view.
// It retains the order in which visuals are added, which is the render
// order, while also providing fast membership lookup.
type Scene struct {
	visuals ordmap.Map[*Visual, struct{}]
}

// NewScene returns a new empty scene.
func NewScene() *Scene {
	sc := &Scene{}
	sc.visuals.Init()
	return sc
}

// Add adds the visual at the end of the render order.
// It returns false if the visual is already in the scene.
func (sc *Scene) Add(vs *Visual) bool {
	if vs == nil || sc.Contains(vs) {
		return false
	}
	sc.visuals.Add(vs, struct{}{})
	return true
}

// Remove removes the visual, returning false if it was not in the scene.
func (sc *Scene) Remove(vs *Visual) bool {
	return sc.visuals.DeleteKey(vs)
}

// Contains returns whether the visual is in the scene.
func (sc *Scene) Contains(vs *Visual) bool {
	_, has := sc.visuals.IndexByKeyTry(vs)
	return has
}

// IndexOf returns the render order index of the visual, or -1.
func (sc *Scene) IndexOf(vs *Visual) int {
	return sc.visuals.IndexByKey(vs)
}

// Visuals returns a copy of the visuals in render order.
func (sc *Scene) Visuals() []*Visual {
	return sc.visuals.Keys()
}

// Len returns the number of visuals.
func (sc *Scene) Len() int {
	return sc.visuals.Len()
}

// Reset removes all visuals.
func (sc *Scene) Reset() {
	sc.visuals.Reset()
}
