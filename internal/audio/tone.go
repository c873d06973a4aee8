// Package audio turns the animation rate into a quiet reference tone so
// the angular speed can be heard as pitch.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	// baseFrequency is the pitch at angular speed 1 rad/s; the tone
	// scales linearly with speed from there.
	baseFrequency = 220.0

	volume = 0.08
)

// sineTone is an endless beep.Streamer generating a sine wave. The phase
// accumulates across Stream calls so frequency changes never click.
type sineTone struct {
	sr    beep.SampleRate
	freq  float64
	phase float64
	mu    sync.Mutex
}

func newSineTone(sr beep.SampleRate, freq float64) *sineTone {
	return &sineTone{sr: sr, freq: freq}
}

func (s *sineTone) Stream(samples [][2]float64) (int, bool) {
	s.mu.Lock()
	step := s.freq / float64(s.sr)
	for i := range samples {
		v := volume * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += step
		if s.phase >= 1 {
			s.phase -= 1
		}
	}
	s.mu.Unlock()
	return len(samples), true
}

func (s *sineTone) Err() error { return nil }

// setFrequency retunes the oscillator without resetting its phase.
func (s *sineTone) setFrequency(f float64) {
	s.mu.Lock()
	s.freq = f
	s.mu.Unlock()
}

// Player owns the speaker and the tone streamer.
type Player struct {
	tone *sineTone
	ctrl *beep.Ctrl

	muted bool
}

// NewPlayer initializes the speaker and starts the (possibly muted)
// tone. The speaker runs on its own goroutine; all later adjustments go
// through speaker.Lock or the streamer's own mutex.
func NewPlayer(sr beep.SampleRate, speed float64, muted bool) (*Player, error) {
	tone := newSineTone(sr, baseFrequency*speed)
	ctrl := &beep.Ctrl{Streamer: tone, Paused: muted}

	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, err
	}
	speaker.Play(ctrl)

	return &Player{tone: tone, ctrl: ctrl, muted: muted}, nil
}

// SetSpeed retunes the tone to the given angular speed.
func (p *Player) SetSpeed(omega float64) {
	p.tone.setFrequency(baseFrequency * omega)
}

// SetMuted pauses or resumes the tone.
func (p *Player) SetMuted(muted bool) {
	if p.muted == muted {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = muted
	speaker.Unlock()
	p.muted = muted
}

// Muted reports the current mute state.
func (p *Player) Muted() bool { return p.muted }
