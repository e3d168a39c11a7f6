// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"cogentcore.org/xyzedit/events/key"
)

// SelectModes interprets the modifier keys to determine what type of selection mode to use.
type SelectModes int32 //enums:enum

const (
	// SelectOne replaces the selection with the items under the pointer,
	// and is the default when no modifier key is pressed
	SelectOne SelectModes = iota

	// ExtendContinuous, activated by Shift when an extend key is configured,
	// adds the items under the pointer to the selection
	ExtendContinuous

	// ExtendOne, activated by the configured extend key, toggles the
	// items under the pointer in and out of the selection
	ExtendOne
)

// SelectModeBits returns the selection mode based on given modifiers bitflags
// and the configured extend modifier. If extend is 0, multi-select is
// disabled and the mode is always SelectOne.
func SelectModeBits(mods, extend key.Modifiers) SelectModes {
	if extend == 0 {
		return SelectOne
	}
	if mods.HasFlag(extend) {
		return ExtendOne
	}
	if mods.HasFlag(key.Shift) {
		return ExtendContinuous
	}
	return SelectOne
}
