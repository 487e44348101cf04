/*
DESCRIPTION
  watch.go provides a directory watcher that runs the wave counter over
  video files as they appear in a drop directory.

AUTHORS
  Russell Stanley <russell@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package watch provides a drop-directory watcher for the wave counter.
// Video files created in the watched directory are handed to a handler once
// they have finished being written.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ausocean/utils/logging"
)

// Used to indicate package in logging.
const pkg = "watch: "

// Settle defaults. A newly created file is considered complete once its
// size has been stable for settlePolls polls.
const (
	defaultSettleInterval = 500 * time.Millisecond
	defaultSettlePolls    = 2
	defaultSettleTimeout  = 5 * time.Minute
)

// Option is a functional option for the Watcher.
type Option func(*Watcher)

// SettleInterval sets the poll interval used to decide that a new file has
// finished being written.
func SettleInterval(d time.Duration) Option {
	return func(w *Watcher) { w.settleInterval = d }
}

// SettlePolls sets the number of consecutive stable-size polls required
// before a new file is considered complete.
func SettlePolls(n int) Option {
	return func(w *Watcher) { w.settlePolls = n }
}

// SettleTimeout sets how long a still-growing file is polled before it is
// skipped.
func SettleTimeout(d time.Duration) Option {
	return func(w *Watcher) { w.settleTimeout = d }
}

// Extensions sets the video file extensions that are handled, e.g. ".mp4".
func Extensions(exts ...string) Option {
	return func(w *Watcher) {
		w.exts = make(map[string]bool)
		for _, e := range exts {
			w.exts[strings.ToLower(e)] = true
		}
	}
}

// Watcher watches a directory and calls a handler for each video file
// created in it. Files are handled one at a time, in arrival order.
type Watcher struct {
	w              *fsnotify.Watcher
	dir            string
	handle         func(path string)
	log            logging.Logger
	exts           map[string]bool
	settleInterval time.Duration
	settlePolls    int
	settleTimeout  time.Duration
}

// New returns a new Watcher on dir calling handle for each completed video
// file. Run must be called to start watching.
func New(dir string, handle func(path string), l logging.Logger, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create fsnotify watcher: %w", err)
	}

	err = fsw.Add(dir)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("could not watch %s: %w", dir, err)
	}

	w := &Watcher{
		w:              fsw,
		dir:            dir,
		handle:         handle,
		log:            l,
		exts:           map[string]bool{".mp4": true},
		settleInterval: defaultSettleInterval,
		settlePolls:    defaultSettlePolls,
		settleTimeout:  defaultSettleTimeout,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run watches until Close is called, handling each created video file once
// its size has settled. Handler calls block the watch loop; a drop directory
// is expected to receive files far slower than they are analysed.
func (w *Watcher) Run() {
	w.log.Info(pkg+"watching for video files", "dir", w.dir)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Create == 0 {
				continue
			}
			if !w.exts[strings.ToLower(filepath.Ext(ev.Name))] {
				continue
			}
			w.log.Debug(pkg+"new video file", "path", ev.Name)
			err := w.settle(ev.Name)
			if err != nil {
				w.log.Warning(pkg+"skipping file that did not settle", "path", ev.Name, "error", err.Error())
				continue
			}
			w.handle(ev.Name)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Error(pkg+"watch error", "error", err.Error())
		}
	}
}

// Close stops the watcher; Run returns once pending events are drained.
func (w *Watcher) Close() error {
	return w.w.Close()
}

// settle waits until the file's size has been stable for a few polls,
// indicating the writer has finished, or times out.
func (w *Watcher) settle(path string) error {
	var last int64 = -1
	stable := 0
	deadline := time.Now().Add(w.settleTimeout)
	for time.Now().Before(deadline) {
		fi, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("could not stat %s: %w", path, err)
		}
		if fi.Size() == last {
			stable++
			if stable >= w.settlePolls {
				return nil
			}
		} else {
			stable = 0
			last = fi.Size()
		}
		time.Sleep(w.settleInterval)
	}
	return fmt.Errorf("%s still growing after %v", path, w.settleTimeout)
}
