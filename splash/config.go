package splash

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"
)

var (
	// ErrConfiguration is returned when a radius is not positive and finite or a duration is not positive.
	ErrConfiguration = errors.New("splash: invalid configuration")
	// ErrAlreadyStarted is returned by Configure once a phase has run.
	ErrAlreadyStarted = errors.New("splash: animation already started")
	// ErrTransitionCompleted is returned by BeginTransition after OnEnd has fired.
	ErrTransitionCompleted = errors.New("splash: transition already completed")
	// ErrNoParent is reported, not returned, when removal on end was requested
	// but the animator has no parent to remove itself from.
	ErrNoParent = errors.New("splash: not removed after animation ended because no parent was found")
)

const (
	DefaultRotationRadius   = 90.0
	DefaultCircleRadius     = 18.0
	DefaultRotationDuration = 1200 * time.Millisecond
	DefaultSplashDuration   = 1200 * time.Millisecond
)

// DefaultCircleColors is the palette used when no colours are configured.
var DefaultCircleColors = []color.Color{
	color.RGBA{R: 0xff, G: 0x24, B: 0x24, A: 0xff},
	color.RGBA{R: 0xff, G: 0xb5, B: 0x00, A: 0xff},
	color.RGBA{R: 0x37, G: 0xea, B: 0x00, A: 0xff},
	color.RGBA{R: 0x00, G: 0xd6, B: 0xef, A: 0xff},
	color.RGBA{R: 0x2c, G: 0x8b, B: 0xff, A: 0xff},
	color.RGBA{R: 0x9f, G: 0x00, B: 0xf2, A: 0xff},
}

// Config holds everything the animator needs before the first frame.
// It is copied by Configure and never changed during a run.
type Config struct {
	CircleColors      []color.Color
	CircleRadius      float64 // radius of each small circle
	RotationRadius    float64 // radius of the circle the small circles travel on
	RotationDuration  time.Duration
	SplashDuration    time.Duration // merging + singularity + expanding
	BackgroundColor   color.Color
	SingleCircleColor color.Color

	RemoveFromParentOnEnd bool
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	colors := make([]color.Color, len(DefaultCircleColors))
	copy(colors, DefaultCircleColors)
	return Config{
		CircleColors:          colors,
		CircleRadius:          DefaultCircleRadius,
		RotationRadius:        DefaultRotationRadius,
		RotationDuration:      DefaultRotationDuration,
		SplashDuration:        DefaultSplashDuration,
		BackgroundColor:       color.White,
		SingleCircleColor:     color.Black,
		RemoveFromParentOnEnd: true,
	}
}

// Validate checks radii are positive and finite and durations are positive.
func (c Config) Validate() error {
	switch {
	case !positiveFinite(c.CircleRadius):
		return fmt.Errorf("%w: circle radius %v must be positive and finite", ErrConfiguration, c.CircleRadius)
	case !positiveFinite(c.RotationRadius):
		return fmt.Errorf("%w: rotation radius %v must be positive and finite", ErrConfiguration, c.RotationRadius)
	case c.RotationDuration <= 0:
		return fmt.Errorf("%w: rotation duration %v must be positive", ErrConfiguration, c.RotationDuration)
	case c.SplashDuration <= 0:
		return fmt.Errorf("%w: splash duration %v must be positive", ErrConfiguration, c.SplashDuration)
	}
	return nil
}

// positiveFinite is false for NaN, which fails every comparison.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// phaseDuration is the share of SplashDuration given to each terminal phase.
func (c Config) phaseDuration() time.Duration {
	return c.SplashDuration / 3
}

func (c Config) clone() Config {
	out := c
	out.CircleColors = make([]color.Color, len(c.CircleColors))
	copy(out.CircleColors, c.CircleColors)
	if out.BackgroundColor == nil {
		out.BackgroundColor = color.White
	}
	if out.SingleCircleColor == nil {
		out.SingleCircleColor = color.Black
	}
	return out
}
