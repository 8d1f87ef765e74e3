// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay is how long a changed file must be quiet before its
// change is reported. Editors and exporters often write a file several
// times in quick succession.
var DebounceDelay = 250 * time.Millisecond

// Watcher reports asset file changes, so edited assets can be reloaded
// in a running game during development.
type Watcher struct {

	// C receives the paths of changed files once they settle.
	C <-chan string

	watcher *fsnotify.Watcher
	c       chan string
	stop    chan struct{}
	done    chan struct{}
}

// NewWatcher returns a watcher reporting changes to files in the given
// directories. Close it when done.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}
	w := &Watcher{
		watcher: fw,
		c:       make(chan string, 16),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	w.C = w.c
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	pending := map[string]time.Time{}
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-w.stop:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending[ev.Name] = time.Now()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("asset: watch error", "err", err)
		case <-tick.C:
			now := time.Now()
			for path, at := range pending {
				if now.Sub(at) < DebounceDelay {
					continue
				}
				delete(pending, path)
				select {
				case w.c <- path:
				default:
					slog.Warn("asset: dropping change notification", "path", path)
				}
			}
		}
	}
}

// Close stops watching and closes C.
func (w *Watcher) Close() error {
	close(w.stop)
	err := w.watcher.Close()
	<-w.done
	close(w.c)
	return err
}
