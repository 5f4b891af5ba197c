package sound

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

var audioContext *audio.Context

var soundMap map[string]*audio.Player

var Volume float64 = 1.0

// tone returns 16-bit little-endian stereo PCM for a sine sweeping from
// freq0 to freq1 Hz over d, fading out exponentially.
func tone(freq0, freq1 float64, d time.Duration) []byte {
	n := int(d.Seconds() * sampleRate)
	pcm := make([]byte, n*4)
	var phase float64
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := freq0 + (freq1-freq0)*t
		phase += 2 * math.Pi * freq / sampleRate
		v := int16(math.Sin(phase) * math.Exp(-4*t) * 0.5 * math.MaxInt16)
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(v))
	}
	return pcm
}

func decode(name string, pcm []byte) {
	if len(pcm) == 0 {
		log.Panic("empty pcm buffer ", name)
	}
	soundMap[name] = audioContext.NewPlayerFromBytes(pcm)
}

// Init creates the audio context and the cues. Later calls do nothing.
func Init() {
	if audioContext != nil {
		return
	}
	audioContext = audio.NewContext(sampleRate)
	soundMap = make(map[string]*audio.Player)

	decode("Merge", tone(660, 220, 400*time.Millisecond))
	decode("Pop", tone(880, 1320, 120*time.Millisecond))
}

func SetVolume(vol float64) {
	Volume = vol
}

func Play(name string) {
	if Volume == 0.0 || name == "" || audioContext == nil {
		return
	}
	audioPlayer, ok := soundMap[name]
	if !ok {
		log.Panic(name, " not found in sound map")
	}
	if !audioPlayer.IsPlaying() {
		audioPlayer.Rewind()
		audioPlayer.SetVolume(Volume)
		audioPlayer.Play()
	}
}
