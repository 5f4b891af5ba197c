package main

import (
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// DigestFonts holds the faces used to draw the content scene
type DigestFonts struct {
	large, normal font.Face
}

func loadFace(ttf []byte, size float64) font.Face {
	tt, err := truetype.Parse(ttf)
	if err != nil {
		log.Fatal(err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// NewDigestFonts parses the embedded Go fonts
func NewDigestFonts() *DigestFonts {
	return &DigestFonts{
		large:  loadFace(gobold.TTF, 48),
		normal: loadFace(goregular.TTF, 20),
	}
}
