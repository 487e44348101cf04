/*
DESCRIPTION
  zone_test.go tests ROI and counting zone geometry.

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

import (
	"testing"

	"github.com/ausocean/waves/counter/config"
)

func TestZoneGeometry(t *testing.T) {
	// Percentages chosen to be exactly representable so the expected row
	// offsets are unambiguous.
	c := config.Config{
		RoiTopPct:     0.5,
		RoiBottomPct:  0.75,
		ZoneTopPct:    0.625,
		ZoneBottomPct: 0.6875,
	}
	z := newZones(640, c)

	if z.roiTop != 320 || z.roiBottom != 480 {
		t.Errorf("expected ROI [320,480), got [%d,%d)", z.roiTop, z.roiBottom)
	}
	if z.zoneTop != 400 || z.zoneBottom != 440 {
		t.Errorf("expected zone [400,440], got [%d,%d]", z.zoneTop, z.zoneBottom)
	}
}

func TestInCountZoneBounds(t *testing.T) {
	c := config.Config{
		RoiTopPct:     0.5,
		RoiBottomPct:  0.75,
		ZoneTopPct:    0.625,
		ZoneBottomPct: 0.6875,
	}
	z := newZones(640, c) // ROI top 320, zone [400,440].

	tests := []struct {
		name string
		y    int
		want bool
	}{
		{"above zone", 79, false}, // Frame row 399.
		{"zone top", 80, true},    // Frame row 400, inclusive.
		{"mid zone", 100, true},
		{"zone bottom", 120, true}, // Frame row 440, inclusive.
		{"below zone", 121, false}, // Frame row 441.
		{"top of roi", 0, false},   // Frame row 320.
	}
	for _, tt := range tests {
		if got := z.inCountZone(tt.y); got != tt.want {
			t.Errorf("%s: inCountZone(%d) = %v, want %v", tt.name, tt.y, got, tt.want)
		}
	}
}
