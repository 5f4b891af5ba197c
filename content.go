package main

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

var _ GameScene = (*ContentScene)(nil)

var (
	ContentBackground = color.RGBA{R: 0xf4, G: 0xf1, B: 0xea, A: 0xff}
	ContentHeadline   = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	ContentCard       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ContentCardText   = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
)

var contentStories = []string{
	"Markets close higher after a quiet week",
	"City council approves new cycle lanes",
	"Local team clinches the championship",
	"Weekend forecast: sunshine and light winds",
}

// ContentScene is the placeholder page revealed once the splash has gone
type ContentScene struct {
	fonts         *DigestFonts
	img           *ebiten.Image
	width, height int
}

// NewContentScene creates a ContentScene; its image is made in Layout
func NewContentScene(fonts *DigestFonts) *ContentScene {
	return &ContentScene{fonts: fonts}
}

func (s *ContentScene) makeContentImg() *ebiten.Image {
	if s.width == 0 || s.height == 0 {
		return nil
	}
	w, h := float64(s.width), float64(s.height)
	dc := gg.NewContext(s.width, s.height)

	dc.SetColor(ContentBackground)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	dc.SetColor(ContentHeadline)
	dc.SetFontFace(s.fonts.large)
	dc.DrawStringAnchored("News Digest", w/2, h/8, 0.5, 0.5)

	cardH := h / 8
	margin := w / 12
	dc.SetFontFace(s.fonts.normal)
	for i, story := range contentStories {
		y := h/4 + float64(i)*(cardH+cardH/4)
		dc.SetColor(ContentCard)
		dc.DrawRoundedRectangle(margin, y, w-margin*2, cardH, cardH/6)
		dc.Fill()
		dc.SetColor(ContentCardText)
		dc.DrawStringAnchored(story, margin*1.5, y+cardH/2, 0, 0.3)
	}
	return ebiten.NewImageFromImage(dc.Image())
}

// Layout implements ebiten.Game's Layout
func (s *ContentScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.width || outsideHeight != s.height {
		s.width, s.height = outsideWidth, outsideHeight
		if s.img != nil {
			s.img.Deallocate()
		}
		s.img = nil
	}
	return outsideWidth, outsideHeight
}

// Update updates the content scene
func (s *ContentScene) Update() error {
	return nil
}

// Draw draws the content scene to the given screen
func (s *ContentScene) Draw(screen *ebiten.Image) {
	if s.img == nil {
		s.img = s.makeContentImg()
		if s.img == nil {
			return
		}
	}
	screen.DrawImage(s.img, nil)
}
