/*
DESCRIPTION
  counter.go provides the Counter type for counting ocean wave events in
  video files.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package counter provides an API for counting ocean wave events in a video
// file. Each frame of a region of interest is segmented against an adaptive
// background model, cleaned up morphologically, and surviving foreground
// blobs are tested against a narrow counting zone; a debounced state machine
// converts the per-frame signal into discrete wave counts.
package counter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ausocean/waves/counter/config"
)

// ErrStopped is returned by Analyze if Stop is called before the end of the
// video. The decoder resource is released before Analyze returns.
var ErrStopped = errors.New("counter: analysis stopped")

// Counter provides methods to analyse a video for wave events. A Counter is
// good for one analysis; its Stop method may be called from another
// goroutine to terminate the analysis early.
type Counter struct {
	cfg      config.Config
	stop     chan struct{}
	stopOnce sync.Once
}

// New returns a pointer to a new Counter with the given configuration, or an
// error if the configuration is not valid. Validation happens here, eagerly,
// so that zone geometry errors surface before any processing begins.
func New(c config.Config) (*Counter, error) {
	err := c.Validate()
	if err != nil {
		return nil, fmt.Errorf("could not validate config: %w", err)
	}
	return &Counter{cfg: c, stop: make(chan struct{})}, nil
}

// Config returns a copy of the counter's current config.
func (c *Counter) Config() config.Config { return c.cfg }

// Stop requests early termination of an in-progress Analyze. The analysis
// loop notices between frames and returns ErrStopped with the video handle
// closed. Stop may be called more than once.
func (c *Counter) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Analyze runs a fresh Counter over the video file at path using the given
// configuration. Each video gets its own background model; models are never
// shared between files.
func Analyze(path string, c config.Config) (*Report, error) {
	cnt, err := New(c)
	if err != nil {
		return nil, err
	}
	return cnt.Analyze(path)
}
