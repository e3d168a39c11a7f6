// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manip

//go:generate core generate

// Kinds are the kinds of manipulation a [Manipulator] performs.
type Kinds int32 //enums:enum

const (
	// Translate moves along the manipulator axis
	Translate Kinds = iota

	// Rotate turns about the manipulator axis through the pivot
	Rotate
)

// DragStates are the states of the manipulator drag state machine.
type DragStates int32 //enums:enum

const (
	Idle DragStates = iota
	Dragging
)

