// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer events delivered to a 3D view,
// along with the per-cycle queue and deferred scheduling used to
// process them on a single thread.
package events

//go:generate core generate

// Types determines the type of pointer event.
// MouseMove events are not unique: they are subject to compression
// in the [Queue], where the last queued move is replaced by a newer one.
type Types int32 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down. See Button for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button for which.
	MouseUp

	// MouseMove is sent whenever the mouse moves, with or without a
	// button held down. Not unique, and Prev position is retained
	// during compression.
	MouseMove

	// MouseLeave is sent when the pointer leaves the view.
	MouseLeave
)

// IsUnique returns true if events of this type are always delivered,
// and false if they can be compressed.
func (tp Types) IsUnique() bool {
	return tp != MouseMove
}

// Buttons is a mouse button.
type Buttons int32 //enums:enum

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

