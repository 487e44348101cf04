/*
DESCRIPTION
  variables.go contains a list of structs that provide a variable Name, type
  in a string format, a function for updating the variable in the Config
  struct from a string, and finally, a validation function to default the
  corresponding field value in the Config if it is unset.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
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
	"strconv"
)

// Config map keys.
const (
	KeyRoiTopPct              = "RoiTopPct"
	KeyRoiBottomPct           = "RoiBottomPct"
	KeyZoneTopPct             = "ZoneTopPct"
	KeyZoneBottomPct          = "ZoneBottomPct"
	KeyMinBlobArea            = "MinBlobArea"
	KeyMinBlobWidth           = "MinBlobWidth"
	KeyCooldownSeconds        = "CooldownSeconds"
	KeyDebounceFrames         = "DebounceFrames"
	KeyHistory                = "History"
	KeyVarThreshold           = "VarThreshold"
	KeyDisableShadowDetection = "DisableShadowDetection"
	KeyKernelSize             = "KernelSize"
	KeyMorphIterations        = "MorphIterations"
)

// Config map parameter types.
const (
	typeInt   = "int"
	typeBool  = "bool"
	typeFloat = "float"
)

// Variables lists the configurable variables of the wave counter, each with
// an Update function for setting the field from a string value, and, where a
// sensible default exists, a Validate function that defaults unset or
// nonsensical values. Hard geometry errors are handled by Config.Validate.
var Variables = []struct {
	Name     string
	Type     string
	Update   func(*Config, string)
	Validate func(*Config)
}{
	{
		Name:   KeyRoiTopPct,
		Type:   typeFloat,
		Update: func(c *Config, v string) { c.RoiTopPct = parseFloat(KeyRoiTopPct, v, c) },
		Validate: func(c *Config) {
			if c.RoiTopPct == 0 {
				c.LogInvalidField(KeyRoiTopPct, defaultRoiTopPct)
				c.RoiTopPct = defaultRoiTopPct
			}
		},
	},
	{
		Name:   KeyRoiBottomPct,
		Type:   typeFloat,
		Update: func(c *Config, v string) { c.RoiBottomPct = parseFloat(KeyRoiBottomPct, v, c) },
		Validate: func(c *Config) {
			if c.RoiBottomPct == 0 {
				c.LogInvalidField(KeyRoiBottomPct, defaultRoiBottomPct)
				c.RoiBottomPct = defaultRoiBottomPct
			}
		},
	},
	{
		Name:   KeyZoneTopPct,
		Type:   typeFloat,
		Update: func(c *Config, v string) { c.ZoneTopPct = parseFloat(KeyZoneTopPct, v, c) },
		Validate: func(c *Config) {
			if c.ZoneTopPct == 0 {
				c.LogInvalidField(KeyZoneTopPct, defaultZoneTopPct)
				c.ZoneTopPct = defaultZoneTopPct
			}
		},
	},
	{
		Name:   KeyZoneBottomPct,
		Type:   typeFloat,
		Update: func(c *Config, v string) { c.ZoneBottomPct = parseFloat(KeyZoneBottomPct, v, c) },
		Validate: func(c *Config) {
			if c.ZoneBottomPct == 0 {
				c.LogInvalidField(KeyZoneBottomPct, defaultZoneBottomPct)
				c.ZoneBottomPct = defaultZoneBottomPct
			}
		},
	},
	{
		Name:   KeyMinBlobArea,
		Type:   typeFloat,
		Update: func(c *Config, v string) { c.MinBlobArea = parseFloat(KeyMinBlobArea, v, c) },
		Validate: func(c *Config) {
			if c.MinBlobArea <= 0 {
				c.LogInvalidField(KeyMinBlobArea, defaultMinBlobArea)
				c.MinBlobArea = defaultMinBlobArea
			}
		},
	},
	{
		Name:   KeyMinBlobWidth,
		Type:   typeInt,
		Update: func(c *Config, v string) { c.MinBlobWidth = parseInt(KeyMinBlobWidth, v, c) },
		Validate: func(c *Config) {
			if c.MinBlobWidth <= 0 {
				c.LogInvalidField(KeyMinBlobWidth, defaultMinBlobWidth)
				c.MinBlobWidth = defaultMinBlobWidth
			}
		},
	},
	{
		Name:   KeyCooldownSeconds,
		Type:   typeFloat,
		Update: func(c *Config, v string) { c.CooldownSeconds = parseFloat(KeyCooldownSeconds, v, c) },
		Validate: func(c *Config) {
			if c.CooldownSeconds <= 0 {
				c.LogInvalidField(KeyCooldownSeconds, defaultCooldownSeconds)
				c.CooldownSeconds = defaultCooldownSeconds
			}
		},
	},
	{
		Name:   KeyDebounceFrames,
		Type:   typeInt,
		Update: func(c *Config, v string) { c.DebounceFrames = parseInt(KeyDebounceFrames, v, c) },
		Validate: func(c *Config) {
			if c.DebounceFrames <= 0 {
				c.LogInvalidField(KeyDebounceFrames, defaultDebounceFrames)
				c.DebounceFrames = defaultDebounceFrames
			}
		},
	},
	{
		Name:   KeyHistory,
		Type:   typeInt,
		Update: func(c *Config, v string) { c.History = parseInt(KeyHistory, v, c) },
		Validate: func(c *Config) {
			if c.History <= 0 {
				c.LogInvalidField(KeyHistory, defaultHistory)
				c.History = defaultHistory
			}
		},
	},
	{
		Name:   KeyVarThreshold,
		Type:   typeFloat,
		Update: func(c *Config, v string) { c.VarThreshold = parseFloat(KeyVarThreshold, v, c) },
		Validate: func(c *Config) {
			if c.VarThreshold <= 0 {
				c.LogInvalidField(KeyVarThreshold, defaultVarThreshold)
				c.VarThreshold = defaultVarThreshold
			}
		},
	},
	{
		Name: KeyDisableShadowDetection,
		Type: typeBool,
		Update: func(c *Config, v string) {
			c.DisableShadowDetection = parseBool(KeyDisableShadowDetection, v, c)
		},
	},
	{
		Name:   KeyKernelSize,
		Type:   typeInt,
		Update: func(c *Config, v string) { c.KernelSize = parseInt(KeyKernelSize, v, c) },
		Validate: func(c *Config) {
			if c.KernelSize <= 0 {
				c.LogInvalidField(KeyKernelSize, defaultKernelSize)
				c.KernelSize = defaultKernelSize
			}
		},
	},
	{
		Name:   KeyMorphIterations,
		Type:   typeInt,
		Update: func(c *Config, v string) { c.MorphIterations = parseInt(KeyMorphIterations, v, c) },
		Validate: func(c *Config) {
			if c.MorphIterations <= 0 {
				c.LogInvalidField(KeyMorphIterations, defaultMorphIterations)
				c.MorphIterations = defaultMorphIterations
			}
		},
	},
}

func parseFloat(n, v string, c *Config) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		c.Logger.Warning("invalid "+n+" param", "value", v)
	}
	return f
}

func parseInt(n, v string, c *Config) int {
	i, err := strconv.Atoi(v)
	if err != nil {
		c.Logger.Warning("invalid "+n+" param", "value", v)
	}
	return i
}

func parseBool(n, v string, c *Config) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		c.Logger.Warning("invalid "+n+" param", "value", v)
	}
	return b
}
