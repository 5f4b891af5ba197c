package splash

import (
	"image/color"
	"math"

	"oddstream.games/digest/util"
)

// Kind says how a Primitive is painted.
type Kind int

const (
	// FillRect fills X, Y, W, H.
	FillRect Kind = iota
	// FillCircle fills a disc of Radius around X, Y.
	FillCircle
	// StrokeCircle strokes a ring whose centre line has Radius and whose
	// thickness is StrokeWidth.
	StrokeCircle
)

// Primitive is one drawing instruction produced by Render.
type Primitive struct {
	Kind        Kind
	X, Y        float64
	W, H        float64
	Radius      float64
	StrokeWidth float64
	Color       color.Color
}

// Render turns the animation state into primitives, painted in order.
// It does not modify anything.
func Render(s State, vp Viewport, cfg Config) []Primitive {
	prims := make([]Primitive, 0, len(cfg.CircleColors)+1)
	prims = appendBackground(prims, s, vp, cfg)
	switch s.Phase {
	case PhaseNone, PhaseIdle, PhaseMerging:
		prims = appendCircles(prims, s, vp, cfg)
	case PhaseSingularity:
		prims = append(prims, Primitive{
			Kind:   FillCircle,
			X:      vp.CenterX,
			Y:      vp.CenterY,
			Radius: s.SingleCircleRadius,
			Color:  cfg.SingleCircleColor,
		})
	}
	return prims
}

// appendBackground paints the background, or, once the hole has opened, a ring
// that covers everything outside the hole up to the view's corners.
func appendBackground(prims []Primitive, s State, vp Viewport, cfg Config) []Primitive {
	if s.HoleRadius <= 0 {
		return append(prims, Primitive{
			Kind:  FillRect,
			W:     vp.Width,
			H:     vp.Height,
			Color: cfg.BackgroundColor,
		})
	}
	strokeWidth := vp.DiagonalHalf - s.HoleRadius
	if strokeWidth <= 0 {
		return prims
	}
	return append(prims, Primitive{
		Kind:        StrokeCircle,
		X:           vp.CenterX,
		Y:           vp.CenterY,
		Radius:      s.HoleRadius + strokeWidth/2,
		StrokeWidth: strokeWidth,
		Color:       cfg.BackgroundColor,
	})
}

// appendCircles places circle i at angle RotationAngle + i·2π/n, measured
// clockwise from twelve o'clock.
func appendCircles(prims []Primitive, s State, vp Viewport, cfg Config) []Primitive {
	n := len(cfg.CircleColors)
	if n == 0 {
		return prims
	}
	spacing := 2 * math.Pi / float64(n)
	for i, c := range cfg.CircleColors {
		x, y := CirclePosition(vp.CenterX, vp.CenterY, s.RotationRadius, s.RotationAngle+float64(i)*spacing)
		prims = append(prims, Primitive{
			Kind:   FillCircle,
			X:      x,
			Y:      y,
			Radius: cfg.CircleRadius,
			Color:  c,
		})
	}
	return prims
}

// CirclePosition returns the point at distance r from cx, cy at angle.
func CirclePosition(cx, cy, r, angle float64) (float64, float64) {
	return cx + r*math.Sin(angle), cy - r*math.Cos(angle)
}

// ColorAt returns the colour painted at x, y by prims, and false if nothing
// covers the point.
func ColorAt(prims []Primitive, x, y float64) (color.Color, bool) {
	for i := len(prims) - 1; i >= 0; i-- {
		p := prims[i]
		if p.covers(x, y) {
			return p.Color, true
		}
	}
	return nil, false
}

func (p Primitive) covers(x, y float64) bool {
	switch p.Kind {
	case FillRect:
		return x >= p.X && y >= p.Y && x < p.X+p.W && y < p.Y+p.H
	case FillCircle:
		return util.DistanceFloat64(p.X, p.Y, x, y) <= p.Radius
	case StrokeCircle:
		return math.Abs(util.DistanceFloat64(p.X, p.Y, x, y)-p.Radius) <= p.StrokeWidth/2
	}
	return false
}
