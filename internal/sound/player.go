package sound

import (
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays landing clicks on the system speaker. A nil *Player is valid
// and does nothing, so callers can run without audio.
type Player struct {
	clicker *Clicker
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	muted   bool
}

// Open initialises the speaker and starts the click stream. volume is a
// base-2 exponent, 0 leaves samples unchanged.
func Open(voices int, volume float64) (*Player, error) {
	bufferSize := sampleRate.N(time.Second / 20)
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return nil, err
	}

	c := NewClicker(sampleRate, voices)
	ctrl := &beep.Ctrl{Streamer: c, Paused: false}
	vol := &effects.Volume{Streamer: ctrl, Base: 2, Volume: volume}
	speaker.Play(vol)

	log.Printf("[SOUND] speaker ready: rate=%d buffer=%d voices=%d", sampleRate, bufferSize, voices)
	return &Player{clicker: c, ctrl: ctrl, volume: vol}, nil
}

// Landed queues a click for a ball landing in lane.
func (p *Player) Landed(lane, lanes int) {
	if p == nil || p.muted {
		return
	}
	p.clicker.Trigger(lane, lanes)
}

// ToggleMute pauses or resumes the click stream and reports the new state.
func (p *Player) ToggleMute() bool {
	if p == nil {
		return true
	}
	speaker.Lock()
	p.muted = !p.muted
	p.ctrl.Paused = p.muted
	speaker.Unlock()
	return p.muted
}

func (p *Player) Muted() bool {
	return p == nil || p.muted
}

func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
