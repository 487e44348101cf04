//go:build withcv
// +build withcv

/*
DESCRIPTION
  video_test.go tests opening and reading video file frame sources.

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package video

import (
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"
)

const (
	testWidth  = 320
	testHeight = 240
	testFPS    = 25
	testFrames = 5
)

// writeTestVideo writes a short clip, skipping the test if no codec is
// available on the host.
func writeTestVideo(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.avi")

	w, err := gocv.VideoWriterFile(path, "MJPG", testFPS, testWidth, testHeight, true)
	if err != nil {
		t.Skipf("could not create video writer: %v", err)
	}
	defer w.Close()
	if !w.IsOpened() {
		t.Skip("MJPG codec unavailable")
	}

	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(30, 60, 90, 0), testHeight, testWidth, gocv.MatTypeCV8UC3)
	defer frame.Close()
	for i := 0; i < testFrames; i++ {
		err := w.Write(frame)
		if err != nil {
			t.Fatalf("could not write frame %d: %v", i, err)
		}
	}
	return path
}

func TestOpenAndRead(t *testing.T) {
	src, err := Open(writeTestVideo(t))
	if err != nil {
		t.Fatalf("could not open video: %v", err)
	}
	defer src.Close()

	if src.Width() != testWidth || src.Height() != testHeight {
		t.Errorf("unexpected dimensions: %dx%d", src.Width(), src.Height())
	}
	if src.FPS() != testFPS {
		t.Errorf("expected %d FPS, got %v", testFPS, src.FPS())
	}

	frame := gocv.NewMat()
	defer frame.Close()
	var n int
	for src.Read(&frame) {
		if frame.Empty() {
			t.Fatal("read an empty frame")
		}
		n++
	}
	if n != testFrames {
		t.Errorf("expected %d frames, got %d", testFrames, n)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "no-such.mp4"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
