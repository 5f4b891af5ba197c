// Package term runs the splash in a terminal, one cell per 8x16 block of
// virtual pixels.
package term

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"oddstream.games/digest/splash"
)

const (
	cellWidth  = 8
	cellHeight = 16
	frameTime  = 16 * time.Millisecond // ~60 FPS
)

var contentLines = []string{
	"News Digest",
	"",
	"Top stories loaded.",
	"Press q or Esc to quit.",
}

// Host drives an Animator from a tcell event loop.
type Host struct {
	screen   tcell.Screen
	animator *splash.Animator
	cues     *Cues
	loaded   chan struct{}

	width, height int
	dirty         bool
	contentShown  bool
	removed       bool
	debug         bool
}

var _ splash.Parent = (*Host)(nil)

// NewHost wraps an initialised screen. cues may be nil.
func NewHost(screen tcell.Screen, cfg splash.Config, clock splash.Clock, cues *Cues, debug bool) (*Host, error) {
	h := &Host{
		screen: screen,
		cues:   cues,
		loaded: make(chan struct{}, 1),
		dirty:  true,
		debug:  debug,
	}
	a, err := splash.New(cfg, splash.WithClock(clock), splash.WithInvalidator(h))
	if err != nil {
		return nil, err
	}
	a.SetParent(h)
	h.animator = a
	h.resize()
	return h, nil
}

// Invalidate marks the screen for redraw on the next tick.
func (h *Host) Invalidate() {
	h.dirty = true
}

// RemoveSplash stops drawing the splash; the content stays.
func (h *Host) RemoveSplash(a *splash.Animator) {
	if a == h.animator {
		h.removed = true
		h.dirty = true
	}
}

// Loaded signals that the content is ready. Safe to call from any goroutine.
func (h *Host) Loaded() {
	select {
	case h.loaded <- struct{}{}:
	default:
	}
}

func (h *Host) resize() {
	h.width, h.height = h.screen.Size()
	h.animator.SetSize(float64(h.width*cellWidth), float64(h.height*cellHeight))
	h.dirty = true
}

// tick runs one frame: animation step, pending load signal, redraw. The
// load signal is handled after the step so the merging phase starts a tick later.
func (h *Host) tick() {
	h.animator.Update()
	select {
	case <-h.loaded:
		h.onLoadingDataEnded()
	default:
	}
	if h.dirty {
		h.draw()
	}
}

func (h *Host) onLoadingDataEnded() {
	if h.contentShown {
		return
	}
	h.contentShown = true
	h.dirty = true
	err := h.animator.BeginTransition(splash.ListenerFuncs{
		Start: func() {
			h.cues.Play(CueMerge)
			if h.debug {
				log.Println("splash started")
			}
		},
		Update: func(fraction float64) {
			if h.debug {
				log.Printf("splash at %.2f%%", fraction*100)
			}
		},
		End: func() {
			h.cues.Play(CuePop)
			if h.debug {
				log.Println("splash ended")
			}
		},
	})
	if err != nil {
		log.Println(err)
	}
}

// handleEvent returns false when the host should quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				h.onLoadingDataEnded()
			}
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	}
	return true
}

func (h *Host) draw() {
	h.dirty = false
	h.screen.Clear()
	if h.contentShown {
		h.drawContent()
	}
	if !h.removed {
		h.drawSplash()
	}
	h.screen.Show()
}

func (h *Host) drawContent() {
	top := h.height/2 - len(contentLines)/2
	for i, line := range contentLines {
		left := h.width/2 - len(line)/2
		for j, r := range line {
			h.screen.SetContent(left+j, top+i, r, nil, tcell.StyleDefault)
		}
	}
}

func (h *Host) drawSplash() {
	prims := h.animator.Frame()
	for y := 0; y < h.height; y++ {
		for x := 0; x < h.width; x++ {
			px := float64(x*cellWidth) + cellWidth/2
			py := float64(y*cellHeight) + cellHeight/2
			c, ok := splash.ColorAt(prims, px, py)
			if !ok {
				continue
			}
			h.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(toTcell(c)))
		}
	}
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Run shows the splash in the terminal until the user quits. The content
// "loads" after a random 1 to 3 seconds.
func Run(cfg splash.Config, mute, debug bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	defer screen.Fini()

	var cues *Cues
	if !mute {
		cues, err = NewCues()
		if err != nil {
			// Non-fatal, the splash can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		defer cues.Close()
	}

	h, err := NewHost(screen, cfg, splash.SystemClock{}, cues, debug)
	if err != nil {
		return err
	}

	delay := time.Duration(1000+rand.Intn(2000)) * time.Millisecond
	time.AfterFunc(delay, h.Loaded)

	h.run()
	return nil
}

func (h *Host) run() {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.tick()
		}
	}
}
