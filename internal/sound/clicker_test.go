package sound

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
)

func peak(samples [][2]float64) float64 {
	m := 0.0
	for _, s := range samples {
		if s[0] > m {
			m = s[0]
		}
		if -s[0] > m {
			m = -s[0]
		}
	}
	return m
}

func TestClickerSilentWhenIdle(t *testing.T) {
	c := NewClicker(beep.SampleRate(44100), 4)
	buf := make([][2]float64, 512)

	n, ok := c.Stream(buf)

	assert.Equal(t, 512, n)
	assert.True(t, ok)
	assert.Zero(t, peak(buf))
	assert.NoError(t, c.Err())
}

func TestClickerSoundsAfterTrigger(t *testing.T) {
	c := NewClicker(beep.SampleRate(44100), 4)
	c.Trigger(3, 19)
	buf := make([][2]float64, 512)

	c.Stream(buf)

	assert.Greater(t, peak(buf), 0.0)
	assert.LessOrEqual(t, peak(buf), 1.0)
	assert.Equal(t, buf[100][0], buf[100][1])
	assert.Equal(t, 1, c.Active())
}

func TestClickerVoiceFinishes(t *testing.T) {
	sr := beep.SampleRate(1000)
	c := NewClicker(sr, 2)
	c.Trigger(0, 19)

	// 40ms at 1kHz is 40 samples.
	c.Stream(make([][2]float64, 40))
	assert.Zero(t, c.Active())

	buf := make([][2]float64, 16)
	c.Stream(buf)
	assert.Zero(t, peak(buf))
}

func TestClickerCapsVoices(t *testing.T) {
	c := NewClicker(beep.SampleRate(44100), 3)
	for i := 0; i < 10; i++ {
		c.Trigger(i, 19)
	}
	assert.Equal(t, 3, c.Active())
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Landed(1, 19)
	p.Close()
	assert.True(t, p.Muted())
	assert.True(t, p.ToggleMute())
}
