package splash

import (
	"image"

	"github.com/fogleman/gg"
)

func paint(dc *gg.Context, prims []Primitive) {
	for _, p := range prims {
		dc.SetColor(p.Color)
		switch p.Kind {
		case FillRect:
			dc.DrawRectangle(p.X, p.Y, p.W, p.H)
			dc.Fill()
		case FillCircle:
			dc.DrawCircle(p.X, p.Y, p.Radius)
			dc.Fill()
		case StrokeCircle:
			dc.SetLineWidth(p.StrokeWidth)
			dc.DrawCircle(p.X, p.Y, p.Radius)
			dc.Stroke()
		}
	}
}

// Rasterize paints prims onto a transparent width x height image.
func Rasterize(width, height int, prims []Primitive) image.Image {
	dc := gg.NewContext(width, height)
	paint(dc, prims)
	return dc.Image()
}

// SavePNG rasterizes prims and writes the result to path.
func SavePNG(path string, width, height int, prims []Primitive) error {
	return gg.SavePNG(path, Rasterize(width, height, prims))
}
