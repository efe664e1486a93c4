// Package sound plays a short tone when spinning rectangles are purged.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	popLength  = 60 * time.Millisecond
	baseFreq   = 440.0
	maxFreq    = 1760.0
)

// Player plays purge tones. The zero value is silent.
type Player struct {
	enabled bool
}

// New opens the audio device. The returned Player is usable, and silent,
// even when err is non-nil.
func New() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{enabled: true}, nil
}

// Pop plays one tone for a purge of n rectangles; bigger purges sound higher.
func (p *Player) Pop(n int) {
	if p == nil || !p.enabled || n <= 0 {
		return
	}
	sine, err := generators.SineTone(sampleRate, pitch(n))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(popLength), sine))
}

// pitch rises a semitone per purged rectangle, capped two octaves up.
func pitch(n int) float64 {
	f := baseFreq
	for i := 1; i < n && f < maxFreq; i++ {
		f *= 1.0594630943592953
	}
	return min(f, maxFreq)
}
