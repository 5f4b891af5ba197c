package splash

import (
	"path/filepath"
	"testing"
)

func TestRasterizeHoleIsTransparent(t *testing.T) {
	vp := NewViewport(400, 300)
	prims := Render(State{Phase: PhaseExpanding, HoleRadius: 100}, vp, DefaultConfig())
	img := Rasterize(400, 300, prims)

	if _, _, _, a := img.At(200, 150).RGBA(); a != 0 {
		t.Errorf("centre alpha = %#x, want 0", a)
	}
	for _, pt := range [][2]int{{10, 10}, {390, 10}, {10, 290}, {390, 290}} {
		r, g, b, a := img.At(pt[0], pt[1]).RGBA()
		if a != 0xffff || r != 0xffff || g != 0xffff || b != 0xffff {
			t.Errorf("pixel %v = %x %x %x %x, want opaque white", pt, r, g, b, a)
		}
	}
}

func TestRasterizeIdleFrame(t *testing.T) {
	cfg := DefaultConfig()
	vp := NewViewport(300, 300)
	img := Rasterize(300, 300, Render(State{Phase: PhaseIdle, RotationRadius: 90}, vp, cfg))

	// circle 0 sits straight above the centre
	want := cfg.CircleColors[0]
	wr, wg, wb, _ := want.RGBA()
	r, g, b, _ := img.At(150, 60).RGBA()
	if r != wr || g != wg || b != wb {
		t.Errorf("pixel above centre = %x %x %x, want %x %x %x", r, g, b, wr, wg, wb)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	vp := NewViewport(64, 48)
	if err := SavePNG(path, 64, 48, Render(State{Phase: PhaseIdle, RotationRadius: 10}, vp, DefaultConfig())); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}
