/*
DESCRIPTION
  Config.go provides the configuration settings for the wave counter.

AUTHORS
  Trek Hopton <trek@ausocean.org>
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config contains the configuration settings for the wave counter.
package config

import (
	"errors"
	"fmt"

	"github.com/ausocean/utils/logging"
)

// Default variable values.
const (
	defaultRoiTopPct       = 0.55
	defaultRoiBottomPct    = 0.75
	defaultZoneTopPct      = 0.65
	defaultZoneBottomPct   = 0.70
	defaultMinBlobArea     = 1000.0 // Pixels squared, at the ROI's native resolution.
	defaultMinBlobWidth    = 50     // Pixels.
	defaultCooldownSeconds = 1.0    // Video seconds between counted events.
	defaultDebounceFrames  = 10
	defaultHistory         = 500
	defaultVarThreshold    = 32.0
	defaultKernelSize      = 7 // Elliptical structuring element diameter.
	defaultMorphIterations = 2
)

// Validation errors returned by Validate. These are fatal; invalid zone
// geometry is never silently clamped.
var (
	ErrBadPercent     = errors.New("zone percentage outside (0,1)")
	ErrRoiOrder       = errors.New("RoiTopPct must be less than RoiBottomPct")
	ErrZoneOrder      = errors.New("ZoneTopPct must not exceed ZoneBottomPct")
	ErrZoneOutsideRoi = errors.New("counting zone lies outside the ROI")
)

// Config provides parameters relevant to a wave counter instance. A new
// config must be passed to the counter constructor. Default values for
// these fields are defined as consts above.
type Config struct {
	// RoiTopPct and RoiBottomPct define the horizontal strip of each frame
	// that is analysed for motion, as fractions of the frame height measured
	// from the top.
	RoiTopPct    float64
	RoiBottomPct float64

	// ZoneTopPct and ZoneBottomPct define the counting sub-zone within the
	// ROI. A blob whose vertical center lies in this band signals a wave.
	// The zone must sit inside the ROI.
	ZoneTopPct    float64
	ZoneBottomPct float64

	// MinBlobArea is the minimum contour area in pixels squared for a
	// foreground blob to be considered a wave front. The bound is inclusive.
	MinBlobArea float64

	// MinBlobWidth is the minimum bounding box width in pixels for a blob to
	// be considered a wave front. The bound is inclusive.
	MinBlobWidth int

	// CooldownSeconds is the minimum video time between two counted events.
	// Cooldown is measured against the video's own clock (frame index over
	// frame rate), so a count does not depend on processing speed.
	CooldownSeconds float64

	// DebounceFrames is the number of consecutive signal-free frames before
	// an in-progress wave event is considered finished.
	DebounceFrames int

	History      int     // Length of the background model's history.
	VarThreshold float64 // Mahalanobis distance threshold for foreground classification.

	// DisableShadowDetection turns off shadow tagging in the background
	// model. Shadow detection is on by default so that shadow pixels are
	// tagged with an intermediate value and discarded from the binary mask
	// rather than classified as hard foreground.
	DisableShadowDetection bool

	KernelSize      int // Diameter of the elliptical structuring element.
	MorphIterations int // Iterations for each of the open and close passes.

	// Logger holds an implementation of the logging.Logger interface.
	// This must be set for the counter to work correctly.
	Logger logging.Logger
}

// Validate checks for any errors in the config fields and defaults settings
// if particular parameters have not been defined. Zone geometry errors are
// fatal and returned rather than defaulted.
func (c *Config) Validate() error {
	for _, v := range Variables {
		if v.Validate != nil {
			v.Validate(c)
		}
	}

	for _, pct := range []float64{c.RoiTopPct, c.RoiBottomPct, c.ZoneTopPct, c.ZoneBottomPct} {
		if pct <= 0 || pct >= 1 {
			return fmt.Errorf("%w: %v", ErrBadPercent, pct)
		}
	}
	if c.RoiTopPct >= c.RoiBottomPct {
		return fmt.Errorf("%w: top %v, bottom %v", ErrRoiOrder, c.RoiTopPct, c.RoiBottomPct)
	}
	if c.ZoneTopPct > c.ZoneBottomPct {
		return fmt.Errorf("%w: top %v, bottom %v", ErrZoneOrder, c.ZoneTopPct, c.ZoneBottomPct)
	}
	if c.ZoneTopPct < c.RoiTopPct || c.ZoneBottomPct > c.RoiBottomPct {
		return fmt.Errorf("%w: zone [%v,%v], roi [%v,%v]", ErrZoneOutsideRoi,
			c.ZoneTopPct, c.ZoneBottomPct, c.RoiTopPct, c.RoiBottomPct)
	}
	return nil
}

// Update takes a map of configuration variable names and their corresponding
// values, parses the string values converting into the correct type, and then
// sets the config struct fields as appropriate.
func (c *Config) Update(vars map[string]string) {
	for _, value := range Variables {
		if v, ok := vars[value.Name]; ok && value.Update != nil {
			value.Update(c, v)
		}
	}
}

func (c *Config) LogInvalidField(name string, def interface{}) {
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}
