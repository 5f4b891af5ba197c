package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"oddstream.games/digest/splash"
)

// parseColor reads "rrggbb" or "rrggbbaa", with or without a leading '#'
func parseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// parseColors reads a comma separated list of colours; "" gives an empty list
func parseColors(s string) ([]color.Color, error) {
	var colors []color.Color
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := parseColor(part)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// configFromFlags builds the splash configuration from the command line
func configFromFlags() (splash.Config, error) {
	cfg := splash.DefaultConfig()
	cfg.RotationRadius = RotationRadius
	cfg.CircleRadius = CircleRadius
	cfg.RotationDuration = time.Duration(RotationMillis) * time.Millisecond
	cfg.SplashDuration = time.Duration(SplashMillis) * time.Millisecond
	cfg.RemoveFromParentOnEnd = !KeepOnEnd

	if CircleColors != "" {
		colors, err := parseColors(CircleColors)
		if err != nil {
			return cfg, err
		}
		cfg.CircleColors = colors
	}
	if BackgroundColor != "" {
		c, err := parseColor(BackgroundColor)
		if err != nil {
			return cfg, err
		}
		cfg.BackgroundColor = c
	}
	if SingleCircleColor != "" {
		c, err := parseColor(SingleCircleColor)
		if err != nil {
			return cfg, err
		}
		cfg.SingleCircleColor = c
	}
	return cfg, cfg.Validate()
}
