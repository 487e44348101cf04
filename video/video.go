//go:build withcv
// +build withcv

/*
DESCRIPTION
  video.go provides a frame source for video files, wrapping OpenCV's
  decoder via the gocv package.

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

// Package video provides a frame source producing a finite, forward-only
// sequence of decoded frames from a video file.
package video

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Source is a frame source for a video file. A Source holds an open decoder
// resource until Close is called; the caller must guarantee closure on every
// exit path. The frame sequence is not restartable without reopening.
type Source struct {
	cap    *gocv.VideoCapture
	path   string
	width  int
	height int
	fps    float64
}

// Open opens the video file at path. It fails if the file cannot be opened
// or is not a decodable video container.
func Open(path string) (*Source, error) {
	cap, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open video file %s: %w", path, err)
	}
	if !cap.IsOpened() {
		cap.Close()
		return nil, fmt.Errorf("could not open video file %s", path)
	}

	s := &Source{
		cap:    cap,
		path:   path,
		width:  int(cap.Get(gocv.VideoCaptureFrameWidth)),
		height: int(cap.Get(gocv.VideoCaptureFrameHeight)),
		fps:    cap.Get(gocv.VideoCaptureFPS),
	}
	if s.width <= 0 || s.height <= 0 {
		cap.Close()
		return nil, fmt.Errorf("%s is not a decodable video container", path)
	}
	return s, nil
}

// Read decodes the next frame in presentation order into dst, returning
// false at end of stream or on a decode failure; the two stop the sequence
// identically.
func (s *Source) Read(dst *gocv.Mat) bool {
	return s.cap.Read(dst)
}

// Name returns the path of the open file.
func (s *Source) Name() string { return s.path }

// Width returns the frame width in pixels.
func (s *Source) Width() int { return s.width }

// Height returns the frame height in pixels.
func (s *Source) Height() int { return s.height }

// FPS returns the frame rate reported by the container. Some containers
// report zero; callers should fall back to a sane default.
func (s *Source) FPS() float64 { return s.fps }

// Close releases the decoder. Reads after Close will fail.
func (s *Source) Close() error {
	return s.cap.Close()
}
