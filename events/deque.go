// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "log/slog"

// TraceEventCompression can be set to true to see when events
// are being compressed to eliminate laggy behavior.
var TraceEventCompression = false

// Queue is a FIFO event queue owned by the thread that delivers events.
// Non-unique events (MouseMove) are compressed: if the last queued event
// is a move with the same button, it is replaced by the new one, keeping
// the older Prev position so the total motion is preserved.
type Queue struct {
	events []*Mouse
}

// Send adds an event to the end of the queue, compressing if possible.
func (q *Queue) Send(ev *Mouse) {
	if n := len(q.events); n > 0 && !ev.Typ.IsUnique() {
		last := q.events[n-1]
		if last.Typ == ev.Typ && last.Button == ev.Button && last.Mods == ev.Mods {
			if TraceEventCompression {
				slog.Debug("events.Queue: compressing", "event", ev.String())
			}
			ev.Prev = last.Prev
			q.events[n-1] = ev
			return
		}
	}
	q.events = append(q.events, ev)
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() *Mouse {
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev
}

// Len returns the length of the queue.
func (q *Queue) Len() int {
	return len(q.events)
}
