package main

import (
	"errors"
	"image/color"
	"math"
	"testing"
	"time"

	"oddstream.games/digest/splash"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ff2424", color.RGBA{R: 0xff, G: 0x24, B: 0x24, A: 0xff}, true},
		{"37ea00", color.RGBA{R: 0x37, G: 0xea, A: 0xff}, true},
		{" #00000080 ", color.RGBA{A: 0x80}, true},
		{"#fff", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("parseColor(%q) error = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColors(t *testing.T) {
	colors, err := parseColors("#ff0000, #00ff00,,#0000ff")
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 3 || colors[2] != (color.RGBA{B: 0xff, A: 0xff}) {
		t.Errorf("colors = %v", colors)
	}
	if _, err := parseColors("#ff0000,nope"); err == nil {
		t.Error("expected error for bad entry")
	}
}

func setFlags(t *testing.T) {
	t.Helper()
	saved := []any{RotationRadius, CircleRadius, RotationMillis, SplashMillis, KeepOnEnd, CircleColors, BackgroundColor, SingleCircleColor}
	t.Cleanup(func() {
		RotationRadius = saved[0].(float64)
		CircleRadius = saved[1].(float64)
		RotationMillis = saved[2].(int)
		SplashMillis = saved[3].(int)
		KeepOnEnd = saved[4].(bool)
		CircleColors = saved[5].(string)
		BackgroundColor = saved[6].(string)
		SingleCircleColor = saved[7].(string)
	})
	RotationRadius = 90
	CircleRadius = 18
	RotationMillis = 1200
	SplashMillis = 900
	KeepOnEnd = false
	CircleColors = ""
	BackgroundColor = ""
	SingleCircleColor = ""
}

func TestConfigFromFlags(t *testing.T) {
	setFlags(t)
	CircleColors = "#ff0000,#00ff00,#0000ff"
	KeepOnEnd = true
	BackgroundColor = "#101010"

	cfg, err := configFromFlags()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.CircleColors) != 3 || cfg.SplashDuration != 900*time.Millisecond || cfg.RemoveFromParentOnEnd {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.BackgroundColor != (color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}) {
		t.Errorf("background = %v", cfg.BackgroundColor)
	}
	if cfg.SingleCircleColor != color.Black {
		t.Errorf("single circle colour = %v, want default black", cfg.SingleCircleColor)
	}
}

func TestConfigFromFlagsRejectsBadRadius(t *testing.T) {
	for _, r := range []float64{-1, math.NaN(), math.Inf(1)} {
		setFlags(t)
		RotationRadius = r
		if _, err := configFromFlags(); !errors.Is(err, splash.ErrConfiguration) {
			t.Errorf("radius %v: error = %v, want ErrConfiguration", r, err)
		}
	}
}
