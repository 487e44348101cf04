//go:build withcv
// +build withcv

/*
DESCRIPTION
  pipeline.go provides the per-frame analysis loop: frame source -> ROI crop
  -> background segmentation -> shape filtering -> wave event detection.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Scott Barnard <scott@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package counter

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/ausocean/waves/video"
)

// Fallback frame rate for containers that do not report one. Video time,
// and with it the cooldown, is derived from the frame rate.
const defaultFPS = 25.0

// Analyze processes the video file at path and returns a Report with the
// number of wave events that crossed the counting zone. Frames are processed
// strictly in order by a single goroutine; the background model and the
// detector state depend on this ordering. The decoder is released on every
// return path. A video with no readable frames yields a zero count and no
// error.
func (c *Counter) Analyze(path string) (*Report, error) {
	src, err := video.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open source: %w", err)
	}
	defer src.Close()

	fps := src.FPS()
	if fps <= 0 {
		c.cfg.Logger.Warning("source reports no frame rate, defaulting", "fps", defaultFPS)
		fps = defaultFPS
	}
	c.cfg.Logger.Info("analysing video", "path", path, "width", src.Width(), "height", src.Height(), "fps", fps)

	z := newZones(src.Height(), c.cfg)
	seg := newSegmenter(c.cfg)
	defer seg.Close()
	shp := newShapeFilter(c.cfg)
	defer shp.Close()
	det := newDetector(c.cfg.CooldownSeconds, c.cfg.DebounceFrames)

	frame := gocv.NewMat()
	defer frame.Close()
	mask := gocv.NewMat()
	defer mask.Close()

	frames := 0
	for {
		select {
		case <-c.stop:
			c.cfg.Logger.Info("analysis stopped early", "path", path, "frames", frames)
			return nil, ErrStopped
		default:
		}

		if !src.Read(&frame) {
			break
		}
		if frame.Empty() {
			continue
		}

		roi := frame.Region(image.Rect(0, z.roiTop, src.Width(), z.roiBottom))
		seg.apply(roi, &mask)
		roi.Close()

		signal := false
		for _, b := range shp.filter(&mask) {
			if z.inCountZone(b.centerY()) {
				signal = true
				break
			}
		}

		if det.observe(signal, float64(frames)/fps) {
			c.cfg.Logger.Debug("wave counted", "frame", frames, "count", det.waves())
		}
		frames++
	}

	r := &Report{
		Count:  det.waves(),
		Events: det.events,
		Frames: frames,
		FPS:    fps,
		Width:  src.Width(),
		Height: src.Height(),
	}
	c.cfg.Logger.Info("analysis complete", "path", path, "frames", frames, "waves", r.Count)
	return r, nil
}
