//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  Replaces the frame source when building without the gocv package, so that
  continuous integration can build the module without a copy of OpenCV
  installed.

AUTHORS
  Scott Barnard <scott@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package video provides a frame source producing a finite, forward-only
// sequence of decoded frames from a video file.
package video

import "errors"

// Source is a stub for builds without OpenCV support.
type Source struct{}

// Open is a stub for builds without OpenCV support; it always errors.
func Open(path string) (*Source, error) {
	return nil, errors.New("video: built without OpenCV support, rebuild with the withcv tag")
}

// Name returns the empty string.
func (s *Source) Name() string { return "" }

// Width returns zero.
func (s *Source) Width() int { return 0 }

// Height returns zero.
func (s *Source) Height() int { return 0 }

// FPS returns zero.
func (s *Source) FPS() float64 { return 0 }

// Close is a no-op.
func (s *Source) Close() error { return nil }
