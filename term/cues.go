package term

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue names a short tone played at a transition milestone.
type Cue int

const (
	CueMerge Cue = iota
	CuePop
)

var cueTones = map[Cue]struct {
	freq     float64
	duration time.Duration
}{
	CueMerge: {freq: 440, duration: 80 * time.Millisecond},
	CuePop:   {freq: 880, duration: 50 * time.Millisecond},
}

// Cues plays tones on the speaker. A nil *Cues is silent.
type Cues struct{}

// NewCues initialises the speaker.
func NewCues() (*Cues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Cues{}, nil
}

// Play starts the tone for cue without waiting for it to finish.
func (c *Cues) Play(cue Cue) {
	if c == nil {
		return
	}
	tone, ok := cueTones[cue]
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, tone.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tone.duration), sine))
}

// Close releases the speaker.
func (c *Cues) Close() {
	if c == nil {
		return
	}
	speaker.Close()
}
