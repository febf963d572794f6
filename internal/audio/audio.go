// Package audio plays the CHIP-8 sound timer's tone through the host
// speaker using faiface/beep.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

// sampleRate is fixed for the lifetime of the process; faiface/beep's
// speaker can only be initialized once.
const sampleRate = beep.SampleRate(44100)

// bufferBudget controls playback latency: a tenth-of-a-second buffer.
const bufferBudget = time.Second / 10

// Beeper generates and plays the 440 Hz sine tone used by the CHIP-8
// sound timer. It satisfies internal/timer.Player.
type Beeper struct {
	mu          sync.Mutex
	initialized bool
}

// New returns a Beeper. The underlying speaker device is opened lazily
// on the first Play call so constructing a Beeper never fails.
func New() *Beeper {
	return &Beeper{}
}

// Play synthesizes a sine tone at freqHz and plays it asynchronously
// for dur. It returns once playback has been queued, not once it has
// finished.
func (b *Beeper) Play(freqHz float64, dur time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		if err := speaker.Init(sampleRate, sampleRate.N(bufferBudget)); err != nil {
			return fmt.Errorf("audio: init speaker: %w", err)
		}
		b.initialized = true
	}

	tone, err := generators.SinTone(sampleRate, freqHz)
	if err != nil {
		return fmt.Errorf("audio: generate tone: %w", err)
	}

	bounded := beep.Take(sampleRate.N(dur), tone)
	speaker.Play(bounded)
	return nil
}
