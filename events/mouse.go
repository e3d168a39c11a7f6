// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"cogentcore.org/xyzedit/events/key"
	"github.com/go-gl/mathgl/mgl32"
)

// Mouse is a pointer event in view-local pixel coordinates,
// with the origin at the top-left corner.
type Mouse struct {
	// Typ is the type of event
	Typ Types

	// Button is the button that changed state (MouseDown, MouseUp),
	// or the button held down during a MouseMove
	Button Buttons

	// Where is the current position of the pointer
	Where image.Point

	// Prev is the previous position, for MouseMove events
	Prev image.Point

	// Mods are the modifier keys held during the event
	Mods key.Modifiers

	// handled is set when a layer consumes the event
	handled bool
}

// NewMouse returns a new mouse event of given type.
func NewMouse(typ Types, but Buttons, where image.Point, mods key.Modifiers) *Mouse {
	return &Mouse{Typ: typ, Button: but, Where: where, Mods: mods}
}

// NewMouseMove returns a new move event, with the previous position.
// The button is the one held down, or NoButton.
func NewMouseMove(but Buttons, where, prev image.Point, mods key.Modifiers) *Mouse {
	return &Mouse{Typ: MouseMove, Button: but, Where: where, Prev: prev, Mods: mods}
}

// NewMouseLeave returns a new event for the pointer leaving the view.
func NewMouseLeave(where image.Point) *Mouse {
	return &Mouse{Typ: MouseLeave, Where: where}
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v}", ev.Typ, ev.Button, ev.Where, ev.Mods.ModifiersString())
}

// Type returns the event type.
func (ev *Mouse) Type() Types {
	return ev.Typ
}

// Pos returns the pointer position as a sub-pixel screen point
// at the center of the pixel.
func (ev *Mouse) Pos() mgl32.Vec2 {
	return mgl32.Vec2{float32(ev.Where.X), float32(ev.Where.Y)}
}

// PrevDelta returns the movement since the previous position.
func (ev *Mouse) PrevDelta() image.Point {
	return ev.Where.Sub(ev.Prev)
}

// HasAnyModifier tests whether any of the given modifiers are held.
func (ev *Mouse) HasAnyModifier(mods ...key.Modifiers) bool {
	return key.HasAnyModifier(ev.Mods, mods...)
}

// SetHandled marks the event as consumed: later handlers should not
// perform their default processing.
func (ev *Mouse) SetHandled() {
	ev.handled = true
}

// IsHandled returns whether the event has been consumed.
func (ev *Mouse) IsHandled() bool {
	return ev.handled
}

// ClearHandled resets the handled state, for re-dispatch.
func (ev *Mouse) ClearHandled() {
	ev.handled = false
}
