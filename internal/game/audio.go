package game

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/particle-portfolio/internal/sound"
)

type speakerOutput struct{}

// OpenSpeaker initializes the audio device for the toggle click.
func OpenSpeaker() (sound.Output, error) {
	if err := speaker.Init(sound.SampleRate, sound.SampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	return speakerOutput{}, nil
}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

// Clear takes the speaker lock itself.
func (speakerOutput) Clear() { speaker.Clear() }
