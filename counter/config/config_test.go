/*
DESCRIPTION
  config_test.go tests validation, defaulting and string updating of the
  wave counter configuration.

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ausocean/utils/logging"
)

func testConfig() Config {
	return Config{Logger: logging.New(logging.Debug, &bytes.Buffer{}, true)}
}

func TestValidateDefaults(t *testing.T) {
	c := testConfig()
	err := c.Validate()
	if err != nil {
		t.Fatalf("config struct is bad: %v", err)
	}

	if c.RoiTopPct != defaultRoiTopPct || c.RoiBottomPct != defaultRoiBottomPct {
		t.Errorf("unexpected default ROI: [%v,%v]", c.RoiTopPct, c.RoiBottomPct)
	}
	if c.ZoneTopPct != defaultZoneTopPct || c.ZoneBottomPct != defaultZoneBottomPct {
		t.Errorf("unexpected default zone: [%v,%v]", c.ZoneTopPct, c.ZoneBottomPct)
	}
	if c.MinBlobArea != defaultMinBlobArea {
		t.Errorf("expected default min blob area %v, got %v", defaultMinBlobArea, c.MinBlobArea)
	}
	if c.MinBlobWidth != defaultMinBlobWidth {
		t.Errorf("expected default min blob width %v, got %v", defaultMinBlobWidth, c.MinBlobWidth)
	}
	if c.CooldownSeconds != defaultCooldownSeconds {
		t.Errorf("expected default cooldown %v, got %v", defaultCooldownSeconds, c.CooldownSeconds)
	}
	if c.DebounceFrames != defaultDebounceFrames {
		t.Errorf("expected default debounce %v, got %v", defaultDebounceFrames, c.DebounceFrames)
	}
	if c.History != defaultHistory || c.VarThreshold != defaultVarThreshold {
		t.Errorf("unexpected default background model settings: history %v, threshold %v",
			c.History, c.VarThreshold)
	}
	if c.KernelSize != defaultKernelSize || c.MorphIterations != defaultMorphIterations {
		t.Errorf("unexpected default morphology settings: kernel %v, iterations %v",
			c.KernelSize, c.MorphIterations)
	}
	if c.DisableShadowDetection {
		t.Error("expected shadow detection on by default")
	}
}

// Shadow detection must be on unless explicitly disabled, so that shadow
// pixels are tagged with an intermediate value and excluded from the binary
// mask rather than classified as hard foreground.
func TestShadowDetectionOnByDefault(t *testing.T) {
	c := testConfig()
	err := c.Validate()
	if err != nil {
		t.Fatalf("config struct is bad: %v", err)
	}
	if c.DisableShadowDetection {
		t.Error("zero-value config must not disable shadow detection")
	}

	c = testConfig()
	c.Update(map[string]string{KeyDisableShadowDetection: "true"})
	if !c.DisableShadowDetection {
		t.Error("expected shadow detection off after explicit disable")
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		want error
	}{
		{
			name: "percent out of range",
			mod:  func(c *Config) { c.RoiTopPct = 1.2 },
			want: ErrBadPercent,
		},
		{
			name: "negative percent",
			mod:  func(c *Config) { c.ZoneTopPct = -0.5 },
			want: ErrBadPercent,
		},
		{
			name: "roi inverted",
			mod:  func(c *Config) { c.RoiTopPct, c.RoiBottomPct = 0.75, 0.55 },
			want: ErrRoiOrder,
		},
		{
			name: "zone inverted",
			mod:  func(c *Config) { c.ZoneTopPct, c.ZoneBottomPct = 0.72, 0.70 },
			want: ErrZoneOrder,
		},
		{
			name: "zone outside roi",
			mod:  func(c *Config) { c.ZoneTopPct, c.ZoneBottomPct = 0.76, 0.78 },
			want: ErrZoneOutsideRoi,
		},
	}
	for _, tt := range tests {
		c := testConfig()
		tt.mod(&c)
		err := c.Validate()
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestUpdate(t *testing.T) {
	c := testConfig()
	c.Update(map[string]string{
		KeyRoiTopPct:              "0.4",
		KeyRoiBottomPct:           "0.8",
		KeyZoneTopPct:             "0.5",
		KeyZoneBottomPct:          "0.6",
		KeyMinBlobArea:            "2500",
		KeyMinBlobWidth:           "80",
		KeyCooldownSeconds:        "2.5",
		KeyDebounceFrames:         "15",
		KeyHistory:                "250",
		KeyVarThreshold:           "16",
		KeyDisableShadowDetection: "true",
		KeyKernelSize:             "5",
		KeyMorphIterations:        "3",
	})

	err := c.Validate()
	if err != nil {
		t.Fatalf("updated config is bad: %v", err)
	}

	if c.RoiTopPct != 0.4 || c.RoiBottomPct != 0.8 {
		t.Errorf("unexpected ROI after update: [%v,%v]", c.RoiTopPct, c.RoiBottomPct)
	}
	if c.ZoneTopPct != 0.5 || c.ZoneBottomPct != 0.6 {
		t.Errorf("unexpected zone after update: [%v,%v]", c.ZoneTopPct, c.ZoneBottomPct)
	}
	if c.MinBlobArea != 2500 || c.MinBlobWidth != 80 {
		t.Errorf("unexpected blob thresholds after update: area %v, width %v", c.MinBlobArea, c.MinBlobWidth)
	}
	if c.CooldownSeconds != 2.5 || c.DebounceFrames != 15 {
		t.Errorf("unexpected detector settings after update: cooldown %v, debounce %v",
			c.CooldownSeconds, c.DebounceFrames)
	}
	if c.History != 250 || c.VarThreshold != 16 || !c.DisableShadowDetection {
		t.Errorf("unexpected model settings after update: history %v, threshold %v, shadows disabled %v",
			c.History, c.VarThreshold, c.DisableShadowDetection)
	}
	if c.KernelSize != 5 || c.MorphIterations != 3 {
		t.Errorf("unexpected morphology settings after update: kernel %v, iterations %v",
			c.KernelSize, c.MorphIterations)
	}
}

func TestUpdateIgnoresUnknownKeys(t *testing.T) {
	c := testConfig()
	c.Update(map[string]string{"NotAKey": "42"})
	err := c.Validate()
	if err != nil {
		t.Fatalf("config struct is bad: %v", err)
	}
}
