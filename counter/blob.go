/*
DESCRIPTION
  blob.go describes connected foreground regions surviving the shape filter.

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package counter

import "image"

// blob is a connected foreground region described by its contour area and
// axis-aligned bounding box in ROI coordinates. Blobs live for a single
// frame's processing only.
type blob struct {
	area float64
	rect image.Rectangle
}

// centerY returns the blob's vertical center in ROI coordinates.
func (b blob) centerY() int { return b.rect.Min.Y + b.rect.Dy()/2 }

// keep reports whether the blob passes the noise thresholds. Both bounds
// are inclusive, i.e. a blob exactly at the minimum is kept.
func (b blob) keep(minArea float64, minWidth int) bool {
	return b.area >= minArea && b.rect.Dx() >= minWidth
}
