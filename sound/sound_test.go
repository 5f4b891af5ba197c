package sound

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestToneLength(t *testing.T) {
	pcm := tone(440, 440, 100*time.Millisecond)
	if want := 4410 * 4; len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}
	// left and right channels carry the same sample
	for i := 0; i < len(pcm); i += 4 {
		if binary.LittleEndian.Uint16(pcm[i:]) != binary.LittleEndian.Uint16(pcm[i+2:]) {
			t.Fatalf("channels differ at frame %d", i/4)
		}
	}
}

func TestToneFadesOut(t *testing.T) {
	pcm := tone(440, 440, 200*time.Millisecond)
	peak := func(from, to int) int {
		var m int
		for i := from; i < to; i += 4 {
			v := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
			if v < 0 {
				v = -v
			}
			if v > m {
				m = v
			}
		}
		return m
	}
	head := peak(0, len(pcm)/4)
	tail := peak(len(pcm)*3/4, len(pcm))
	if tail >= head {
		t.Errorf("tail peak %d not below head peak %d", tail, head)
	}
}

func TestPlayWithoutInitIsSilent(t *testing.T) {
	Play("Merge")
	Play("")
}
