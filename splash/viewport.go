package splash

import "oddstream.games/digest/util"

// Viewport caches the geometry derived from the view size.
type Viewport struct {
	Width, Height    float64
	CenterX, CenterY float64
	DiagonalHalf     float64 // half the diagonal, the hole radius that clears the view
}

// NewViewport derives centre and half diagonal from a width and height.
func NewViewport(width, height float64) Viewport {
	return Viewport{
		Width:        width,
		Height:       height,
		CenterX:      width / 2,
		CenterY:      height / 2,
		DiagonalHalf: util.Hypot(width, height) / 2,
	}
}
