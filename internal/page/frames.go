package page

import (
	"time"

	"github.com/iburimskiy/electric-background/internal/effect"
)

type frameRequest struct {
	id effect.FrameID
	fn func(time.Time)
}

// Frames gives animation-frame semantics on top of the game's Update tick:
// a callback requested during one tick runs once, on the next.
type Frames struct {
	next    effect.FrameID
	pending []frameRequest
}

var _ effect.Scheduler = (*Frames)(nil)

func (f *Frames) RequestFrame(fn func(time.Time)) effect.FrameID {
	f.next++
	f.pending = append(f.pending, frameRequest{id: f.next, fn: fn})
	return f.next
}

func (f *Frames) CancelFrame(id effect.FrameID) {
	for i, r := range f.pending {
		if r.id == id {
			f.pending = append(f.pending[:i:i], f.pending[i+1:]...)
			return
		}
	}
}

// Run invokes the callbacks pending at the start of the tick.
func (f *Frames) Run(now time.Time) {
	batch := f.pending
	f.pending = nil
	for _, r := range batch {
		r.fn(now)
	}
}

func (f *Frames) Pending() int { return len(f.pending) }
