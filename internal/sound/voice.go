package sound

import (
	"sync"

	"github.com/faiface/beep"
)

// voice wraps a streamer playing on the speaker and calls done once the
// source is drained, so the player can count live zaps.
type voice struct {
	Source beep.Streamer
	done   func()
	once   sync.Once
}

func newVoice(src beep.Streamer, done func()) *voice {
	return &voice{Source: src, done: done}
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	n, ok := v.Source.Stream(samples)
	if !ok || n < len(samples) {
		v.finish()
	}
	return n, ok
}

func (v *voice) Err() error { return v.Source.Err() }

func (v *voice) finish() {
	v.once.Do(func() {
		if v.done != nil {
			v.done()
		}
	})
}
