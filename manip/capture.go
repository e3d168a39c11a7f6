// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manip

import "log/slog"

// Holder is something that can hold pointer capture.
type Holder interface {
	// LostCapture is called when capture is taken away from the holder.
	LostCapture()
}

// Capture routes subsequent pointer events exclusively to one holder.
// Only one holder may have capture at a time.
type Capture struct {
	holder Holder
}

// Acquire gives capture to the holder, and returns false if
// another holder already has it.
func (cp *Capture) Acquire(h Holder) bool {
	if cp.holder != nil && cp.holder != h {
		slog.Debug("manip.Capture: already captured", "holder", cp.holder)
		return false
	}
	cp.holder = h
	return true
}

// Release releases capture if the holder has it.
func (cp *Capture) Release(h Holder) {
	if cp.holder == h {
		cp.holder = nil
	}
}

// Cancel takes capture away from the current holder, if any,
// calling its LostCapture.
func (cp *Capture) Cancel() {
	h := cp.holder
	cp.holder = nil
	if h != nil {
		h.LostCapture()
	}
}

// Holder returns the current holder, or nil.
func (cp *Capture) Holder() Holder {
	return cp.holder
}

// IsCaptured returns whether any holder has capture.
func (cp *Capture) IsCaptured() bool {
	return cp.holder != nil
}
