// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Deferred holds functions to run at the end of the current dispatch
// cycle. Listeners use it together with their own "already scheduled"
// flag to coalesce high-frequency events into a single update.
type Deferred struct {
	funcs []func()
}

// Schedule adds the given function to run at the end of the cycle.
func (df *Deferred) Schedule(fun func()) {
	df.funcs = append(df.funcs, fun)
}

// Pending returns the number of functions waiting to run.
func (df *Deferred) Pending() int {
	return len(df.funcs)
}

// Run runs all scheduled functions in order. Functions scheduled
// while running are run in the same call.
func (df *Deferred) Run() {
	for len(df.funcs) > 0 {
		fun := df.funcs[0]
		df.funcs[0] = nil
		df.funcs = df.funcs[1:]
		fun()
	}
	df.funcs = nil
}
