// Package sound plays the short click that accompanies a theme toggle.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/particle-portfolio/internal/theme"
)

const (
	// SampleRate is the rate the output device is opened at.
	SampleRate = beep.SampleRate(44100)

	clickLen  = 70 * time.Millisecond
	lightFreq = 880.0
	darkFreq  = 587.33
)

// Output is an opened audio device.
type Output interface {
	Play(s ...beep.Streamer)
	Clear()
}

// Player is a best-effort click source. With a nil Output it stays silent.
type Player struct {
	out    Output
	volume float64
}

func NewPlayer(out Output, volume float64) *Player {
	return &Player{out: out, volume: volume}
}

// Click plays the toggle sound for the mode being switched to.
func (p *Player) Click(mode theme.Mode) {
	if p.out == nil {
		return
	}
	freq := lightFreq
	if mode.IsDark() {
		freq = darkFreq
	}
	p.out.Play(Tone(SampleRate, freq, clickLen, p.volume))
}

// Close silences anything still playing and detaches the output.
func (p *Player) Close() {
	if p.out == nil {
		return
	}
	p.out.Clear()
	p.out = nil
}

// Tone is a sine wave at freq Hz that fades out linearly over d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			t := float64(pos) / float64(sr)
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(2*math.Pi*freq*t) * volume * env
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}
