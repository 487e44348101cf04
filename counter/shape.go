//go:build withcv
// +build withcv

/*
DESCRIPTION
  shape.go provides the shape filter. The filter applies morphological
  opening then closing to the binary foreground mask to remove speckle noise
  and fill small gaps, then extracts external contours and discards blobs
  below the configured area and width thresholds.

AUTHORS
  Scott Barnard <scott@ausocean.org>
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package counter

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/ausocean/waves/counter/config"
)

// shapeFilter removes noise-scale structure from foreground masks and
// extracts the surviving blobs.
type shapeFilter struct {
	knl        gocv.Mat // Elliptical structuring element used for open and close.
	iterations int
	minArea    float64
	minWidth   int
}

func newShapeFilter(c config.Config) *shapeFilter {
	return &shapeFilter{
		knl:        gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(c.KernelSize, c.KernelSize)),
		iterations: c.MorphIterations,
		minArea:    c.MinBlobArea,
		minWidth:   c.MinBlobWidth,
	}
}

// filter cleans mask in place and returns the blobs that survive the noise
// thresholds. Blob order carries no meaning.
func (f *shapeFilter) filter(mask *gocv.Mat) []blob {
	// Remove isolated specks, then fill small gaps inside larger blobs.
	gocv.MorphologyExWithParams(*mask, mask, gocv.MorphOpen, f.knl, f.iterations, gocv.BorderConstant)
	gocv.MorphologyExWithParams(*mask, mask, gocv.MorphClose, f.knl, f.iterations, gocv.BorderConstant)

	contours := gocv.FindContours(*mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	var blobs []blob
	for i := 0; i < contours.Size(); i++ {
		cnt := contours.At(i)
		b := blob{area: gocv.ContourArea(cnt), rect: gocv.BoundingRect(cnt)}
		if b.keep(f.minArea, f.minWidth) {
			blobs = append(blobs, b)
		}
	}
	return blobs
}

// Close frees resources used by gocv. It has to be done manually, due to
// gocv using c-go.
func (f *shapeFilter) Close() error {
	return f.knl.Close()
}
