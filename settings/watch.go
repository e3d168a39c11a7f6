// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watcher reloads a settings file every time it is written.
type Watcher struct {
	// Filename is the absolute name of the watched file
	Filename string

	watcher *fsnotify.Watcher
	done    chan bool
	wg      sync.WaitGroup
}

// Watch starts watching the settings file, calling fun with the
// settings read by [Open] after every write. The directory is watched,
// so a file replaced by an editor is also seen. fun is called on the
// goroutine of the watcher. Files that fail to load are logged and skipped.
func Watch(filename string, fun func(st *Settings)) (*Watcher, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, fmt.Errorf("settings.Watch: %w", err)
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return nil, fmt.Errorf("settings.Watch: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settings.Watch: %w", err)
	}
	if err := w.Add(filepath.Dir(fn)); err != nil {
		w.Close()
		return nil, fmt.Errorf("settings.Watch %q: %w", filename, err)
	}
	sw := &Watcher{Filename: fn, watcher: w, done: make(chan bool)}
	sw.wg.Add(1)
	go sw.watch(fun)
	return sw, nil
}

func (sw *Watcher) watch(fun func(st *Settings)) {
	defer sw.wg.Done()
	for {
		select {
		case <-sw.done:
			return
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != sw.Filename {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			st, err := Open(sw.Filename)
			if err != nil {
				slog.Error(err.Error())
				continue
			}
			slog.Debug("settings.Watcher: reloaded", "file", sw.Filename)
			fun(st)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("settings.Watcher", "err", err)
		}
	}
}

// Close stops watching and waits for the watcher to finish.
func (sw *Watcher) Close() error {
	close(sw.done)
	err := sw.watcher.Close()
	sw.wg.Wait()
	return err
}
