/*
DESCRIPTION
  zone.go provides the pixel geometry of the region of interest and the
  counting zone, derived once per video from the frame height.

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

import "github.com/ausocean/waves/counter/config"

// zones holds the row offsets of the ROI strip and the counting band in
// full-frame coordinates. The values are fixed for the whole video.
type zones struct {
	roiTop, roiBottom   int // ROI rows [roiTop, roiBottom).
	zoneTop, zoneBottom int // Counting band rows, both inclusive.
}

func newZones(height int, c config.Config) zones {
	return zones{
		roiTop:     int(float64(height) * c.RoiTopPct),
		roiBottom:  int(float64(height) * c.RoiBottomPct),
		zoneTop:    int(float64(height) * c.ZoneTopPct),
		zoneBottom: int(float64(height) * c.ZoneBottomPct),
	}
}

// inCountZone reports whether a blob's vertical center, given in ROI
// coordinates, lies within the counting band.
func (z zones) inCountZone(roiCenterY int) bool {
	y := z.roiTop + roiCenterY
	return y >= z.zoneTop && y <= z.zoneBottom
}
