//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  Replaces the analysis pipeline when the counter is built without the gocv
  package. This is needed so that continuous integration can build and test
  the pure logic without a copy of OpenCV installed.

AUTHORS
  Scott Barnard <scott@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package counter

import "errors"

// Analyze is a stub for builds without OpenCV support. The full
// implementation requires building with the withcv tag.
func (c *Counter) Analyze(path string) (*Report, error) {
	return nil, errors.New("counter: built without OpenCV support, rebuild with the withcv tag")
}
