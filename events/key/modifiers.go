// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the keyboard modifier state carried by pointer events.
package key

import (
	"fmt"
	"strings"
)

// Modifiers is a bitflag set of the modifier keys held during an event.
type Modifiers int32

const (
	// Shift is the shift key
	Shift Modifiers = 1 << iota

	// Control is the control key
	Control

	// Alt is the alt / option key
	Alt

	// Meta is the command / windows key
	Meta
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{
	{Shift, "Shift"},
	{Control, "Control"},
	{Alt, "Alt"},
	{Meta, "Meta"},
}

// HasFlag returns true if the given modifier is set.
func (mods Modifiers) HasFlag(mod Modifiers) bool {
	return mods&mod != 0
}

// HasAnyModifier tests whether any of the given modifiers are set.
func HasAnyModifier(mods Modifiers, check ...Modifiers) bool {
	for _, c := range check {
		if mods.HasFlag(c) {
			return true
		}
	}
	return false
}

// HasAllModifiers tests whether all of the given modifiers are set.
func HasAllModifiers(mods Modifiers, check ...Modifiers) bool {
	for _, c := range check {
		if !mods.HasFlag(c) {
			return false
		}
	}
	return true
}

// ModifiersString returns a "|" separated list of the set modifiers.
func (mods Modifiers) ModifiersString() string {
	var names []string
	for _, mn := range modifierNames {
		if mods.HasFlag(mn.mod) {
			names = append(names, mn.name)
		}
	}
	return strings.Join(names, "|")
}

func (mods Modifiers) String() string {
	return mods.ModifiersString()
}

// ModifierFromName returns the modifier with the given (case insensitive) name.
// An empty name returns 0 and no error, which means no modifier.
func ModifierFromName(name string) (Modifiers, error) {
	if name == "" {
		return 0, nil
	}
	for _, mn := range modifierNames {
		if strings.EqualFold(mn.name, name) {
			return mn.mod, nil
		}
	}
	switch strings.ToLower(name) {
	case "ctrl":
		return Control, nil
	case "cmd", "command", "super":
		return Meta, nil
	case "option":
		return Alt, nil
	}
	return 0, fmt.Errorf("key.ModifierFromName: unknown modifier %q", name)
}
