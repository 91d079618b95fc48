package sound

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
)

const (
	clickDuration = 40 * time.Millisecond
	baseFreq      = 440.0
	octaveSpan    = 1.0 // octaves across the full lane range
)

type voice struct {
	freq   float64
	pos    int
	length int
}

// Clicker is an endless beep.Streamer that mixes a short decaying tone for
// every triggered landing and emits silence otherwise. Trigger is called from
// the frame loop while the speaker goroutine streams.
type Clicker struct {
	sr        beep.SampleRate
	maxVoices int
	voices    []voice
	mu        sync.Mutex
}

func NewClicker(sr beep.SampleRate, maxVoices int) *Clicker {
	if maxVoices < 1 {
		maxVoices = 1
	}
	return &Clicker{
		sr:        sr,
		maxVoices: maxVoices,
	}
}

// Trigger starts a click pitched by the lane's position across the board.
// When all voices are busy the oldest one is dropped.
func (c *Clicker) Trigger(lane, lanes int) {
	ratio := 0.5
	if lanes > 1 {
		ratio = float64(lane) / float64(lanes-1)
	}
	v := voice{
		freq:   baseFreq * math.Pow(2, ratio*octaveSpan),
		length: c.sr.N(clickDuration),
	}

	c.mu.Lock()
	if len(c.voices) >= c.maxVoices {
		c.voices = c.voices[1:]
	}
	c.voices = append(c.voices, v)
	c.mu.Unlock()
}

// Active returns the number of clicks still sounding.
func (c *Clicker) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.voices)
}

func (c *Clicker) Stream(samples [][2]float64) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range samples {
		var s float64
		for j := range c.voices {
			v := &c.voices[j]
			if v.pos >= v.length {
				continue
			}
			t := float64(v.pos) / float64(c.sr)
			env := 1 - float64(v.pos)/float64(v.length)
			s += math.Sin(2*math.Pi*v.freq*t) * env * env
			v.pos++
		}
		s /= float64(c.maxVoices)
		samples[i][0] = s
		samples[i][1] = s
	}

	// Drop finished voices
	live := c.voices[:0]
	for _, v := range c.voices {
		if v.pos < v.length {
			live = append(live, v)
		}
	}
	c.voices = live
	return len(samples), true
}

func (c *Clicker) Err() error { return nil }
