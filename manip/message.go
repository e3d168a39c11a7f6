// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manip

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Message reports one value change of a manipulator during a drag.
type Message struct {
	// ID is the ID of the manipulator that changed
	ID uuid.UUID

	// Param names the edited parameter, as set by the manipulator factory
	Param string

	// Index distinguishes manipulators editing elements of the same
	// parameter, such as the control points of a polyline
	Index int

	// Kind is the kind of manipulation
	Kind Kinds

	// Axis is the manipulator axis in its local space
	Axis mgl32.Vec3

	// Delta is the change in value for this drag step: a distance for
	// translation, degrees for rotation
	Delta float32

	// Value is the accumulated value after this step
	Value float32
}

func (msg Message) String() string {
	return fmt.Sprintf("%s %s[%d] delta: %g value: %g", msg.Kind, msg.Param, msg.Index, msg.Delta, msg.Value)
}

// Receiver receives manipulation messages, normally the shape that
// created the manipulator. ManipulatorChanged returns false to reject
// the change, such as a size that would not be positive.
type Receiver interface {
	ManipulatorChanged(msg Message) bool
}

// Transformer is a transform a manipulator edits directly.
type Transformer interface {
	Transform() mgl32.Mat4
	SetTransform(tr mgl32.Mat4)
}

// Dispatcher is the single dispatch point for manipulation messages:
// it routes each message to the receiver registered for the
// manipulator ID, and then to all OnDispatch listeners.
type Dispatcher struct {
	receivers map[uuid.UUID]Receiver
	listeners []func(msg Message)
}

// Register routes the messages of the manipulator through this dispatcher.
func (dp *Dispatcher) Register(m *Manipulator) {
	if dp.receivers == nil {
		dp.receivers = make(map[uuid.UUID]Receiver)
	}
	m.dispatcher = dp
	if m.Receiver != nil {
		dp.receivers[m.ID] = m.Receiver
	}
}

// Reset forgets all registered receivers; listeners are kept.
func (dp *Dispatcher) Reset() {
	clear(dp.receivers)
}

// OnDispatch adds a function called after every dispatched message.
func (dp *Dispatcher) OnDispatch(fun func(msg Message)) {
	dp.listeners = append(dp.listeners, fun)
}

// Dispatch delivers the message to the receiver registered for its ID,
// returning false if the receiver rejected it. A message with no
// registered receiver is accepted. Listeners are only called for
// accepted messages.
func (dp *Dispatcher) Dispatch(msg Message) bool {
	if rc, ok := dp.receivers[msg.ID]; ok && !rc.ManipulatorChanged(msg) {
		return false
	}
	for _, fun := range dp.listeners {
		fun(msg)
	}
	return true
}
