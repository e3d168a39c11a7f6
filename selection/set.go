// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import "cogentcore.org/core/base/ordmap"

// Set is an ordered set: it keeps unique items in the order
// they were added, with fast membership lookup.
type Set[T comparable] struct {
	items ordmap.Map[T, struct{}]
}

// NewSet returns a new set with the given items, skipping duplicates.
func NewSet[T comparable](items ...T) *Set[T] {
	st := &Set[T]{}
	for _, it := range items {
		st.Add(it)
	}
	return st
}

// Add adds the item at the end, returning false if it is already present.
func (st *Set[T]) Add(it T) bool {
	if st.Contains(it) {
		return false
	}
	st.items.Add(it, struct{}{})
	return true
}

// Remove removes the item, returning false if it was not present.
func (st *Set[T]) Remove(it T) bool {
	return st.items.DeleteKey(it)
}

func (st *Set[T]) Contains(it T) bool {
	_, has := st.items.IndexByKeyTry(it)
	return has
}

// Items returns a copy of the items in order.
func (st *Set[T]) Items() []T {
	return st.items.Keys()
}

func (st *Set[T]) Len() int {
	return st.items.Len()
}

func (st *Set[T]) Reset() {
	st.items.Reset()
}

// Clone returns a new set with the same items in the same order.
func (st *Set[T]) Clone() *Set[T] {
	return NewSet(st.Items()...)
}

// Equal returns whether both sets have the same members, in any order.
func (st *Set[T]) Equal(other *Set[T]) bool {
	if st.Len() != other.Len() {
		return false
	}
	for _, kv := range st.items.Order {
		if !other.Contains(kv.Key) {
			return false
		}
	}
	return true
}
