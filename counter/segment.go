//go:build withcv
// +build withcv

/*
DESCRIPTION
  segment.go provides the background segmenter. The segmenter maintains an
  adaptive Mixture of Gaussians (MoG) background model over the ROI and
  classifies each pixel as foreground or background, producing a binary mask
  per frame.

AUTHORS
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
	"gocv.io/x/gocv"

	"github.com/ausocean/waves/counter/config"
)

// MOG2 tags shadow pixels with an intermediate value (127). Thresholding
// above this keeps hard foreground (255) only, so shadows are treated as
// background in the binary mask.
const hardForeground = 200

// segmenter wraps a MOG2 background subtractor. The model state is owned
// exclusively by the segmenter, evolves with every apply call, and is never
// reset mid-video.
type segmenter struct {
	bs *gocv.BackgroundSubtractorMOG2
}

func newSegmenter(c config.Config) *segmenter {
	bs := gocv.NewBackgroundSubtractorMOG2WithParams(c.History, c.VarThreshold, !c.DisableShadowDetection)
	return &segmenter{bs: &bs}
}

// apply updates the background model with the ROI and writes the binary
// 0/255 foreground mask to mask.
func (s *segmenter) apply(roi gocv.Mat, mask *gocv.Mat) {
	s.bs.Apply(roi, mask)
	gocv.Threshold(*mask, mask, hardForeground, 255, gocv.ThresholdBinary)
}

// Close frees resources used by gocv. It has to be done manually, due to
// gocv using c-go.
func (s *segmenter) Close() error {
	return s.bs.Close()
}
