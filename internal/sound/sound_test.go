package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/particle-portfolio/internal/theme"
)

func TestToneLengthAndAmplitude(t *testing.T) {
	sr := beep.SampleRate(8000)
	s := Tone(sr, 440, 100*time.Millisecond, 0.5)

	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 0.5+1e-12 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d out of range or not mono: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if want := sr.N(100 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestToneFadesOut(t *testing.T) {
	sr := beep.SampleRate(8000)
	s := Tone(sr, 440, 50*time.Millisecond, 1)
	buf := make([][2]float64, sr.N(50*time.Millisecond))
	n, _ := s.Stream(buf)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, v := range buf[from:to] {
			m = math.Max(m, math.Abs(v[0]))
		}
		return m
	}
	if head, tail := peak(0, n/4), peak(3*n/4, n); tail >= head {
		t.Errorf("tail peak %v should be below head peak %v", tail, head)
	}
}

type fakeOutput struct {
	played  []beep.Streamer
	cleared int
}

func (f *fakeOutput) Play(s ...beep.Streamer) { f.played = append(f.played, s...) }
func (f *fakeOutput) Clear()                  { f.cleared++ }

func TestPlayerClick(t *testing.T) {
	out := &fakeOutput{}
	p := NewPlayer(out, 0.3)

	p.Click(theme.Dark)
	p.Click(theme.Light)
	if len(out.played) != 2 {
		t.Fatalf("played %d streamers, want 2", len(out.played))
	}

	p.Close()
	p.Click(theme.Dark)
	if out.cleared != 1 {
		t.Errorf("Close cleared %d times, want 1", out.cleared)
	}
	if len(out.played) != 2 {
		t.Error("closed player should be silent")
	}
}

func TestSilentPlayer(t *testing.T) {
	p := NewPlayer(nil, 0.3)
	p.Click(theme.Dark)
	p.Close()
}
