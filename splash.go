package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"oddstream.games/digest/splash"
)

var _ GameScene = (*SplashScene)(nil)

// SplashScene shows the rotating circles and the closing transition.
// The frame is painted into canvas only after the animator asks for a redraw.
type SplashScene struct {
	animator      *splash.Animator
	canvas        *ebiten.Image
	width, height int
	dirty         bool
}

// NewSplashScene creates and initializes a SplashScene
func NewSplashScene(cfg splash.Config, opts ...splash.Option) (*SplashScene, error) {
	s := &SplashScene{dirty: true}
	opts = append([]splash.Option{splash.WithInvalidator(s)}, opts...)
	a, err := splash.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	s.animator = a
	return s, nil
}

// Animator returns the animator driving the scene
func (s *SplashScene) Animator() *splash.Animator {
	return s.animator
}

// Invalidate implements splash.Invalidator; requests before the next Draw coalesce
func (s *SplashScene) Invalidate() {
	s.dirty = true
}

// Layout implements ebiten.Game's Layout
func (s *SplashScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.width || outsideHeight != s.height {
		s.width, s.height = outsideWidth, outsideHeight
		if s.canvas != nil {
			s.canvas.Deallocate()
			s.canvas = nil
		}
		s.animator.SetSize(float64(outsideWidth), float64(outsideHeight))
		s.dirty = true
	}
	return outsideWidth, outsideHeight
}

// Update advances the animation
func (s *SplashScene) Update() error {
	s.animator.Update()
	return nil
}

// Draw draws the splash over whatever is below it
func (s *SplashScene) Draw(screen *ebiten.Image) {
	if s.width == 0 || s.height == 0 {
		return
	}
	if s.canvas == nil {
		s.canvas = ebiten.NewImage(s.width, s.height)
		s.dirty = true
	}
	if s.dirty {
		s.dirty = false
		s.canvas.Clear()
		drawPrimitives(s.canvas, s.animator.Frame())
	}
	screen.DrawImage(s.canvas, nil)
}

func drawPrimitives(dst *ebiten.Image, prims []splash.Primitive) {
	for _, p := range prims {
		switch p.Kind {
		case splash.FillRect:
			vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), p.Color, false)
		case splash.FillCircle:
			if p.Radius > 0 {
				vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Radius), p.Color, true)
			}
		case splash.StrokeCircle:
			vector.StrokeCircle(dst, float32(p.X), float32(p.Y), float32(p.Radius), float32(p.StrokeWidth), p.Color, true)
		}
	}
}
