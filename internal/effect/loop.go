package effect

import (
	"time"

	"github.com/iburimskiy/electric-background/internal/config"
)

// loop is the repeating frame task. It keeps one frame request pending while
// running; stop clears the flag and cancels that request.
type loop struct {
	sched   Scheduler
	surface Surface
	field   *Field
	arcs    *ArcPool
	tracker *Tracker
	rng     Rand

	pending FrameID
	running bool
	frames  uint64
}

func (l *loop) start() {
	if l.running {
		return
	}
	l.running = true
	l.pending = l.sched.RequestFrame(l.tick)
}

func (l *loop) stop() {
	if !l.running {
		return
	}
	l.running = false
	l.sched.CancelFrame(l.pending)
}

func (l *loop) tick(now time.Time) {
	if !l.running {
		return
	}
	l.step(now)
	l.pending = l.sched.RequestFrame(l.tick)
}

// step renders one frame. A missing or zero-sized surface means the page is
// not ready yet; the frame is skipped.
func (l *loop) step(now time.Time) {
	if l.surface == nil {
		return
	}
	width, height := l.surface.Size()
	if width <= 0 || height <= 0 {
		return
	}

	in := l.tracker.Snapshot()
	maxY := float64(height) * config.FallbackSpawnRatio
	if in.HasSpawnLimit {
		maxY = in.SpawnLimit
	}
	fr := frame{
		width: float64(width),
		maxY:  maxY,
		in:    in,
		time:  float64(now.UnixMilli()) * 0.001,
		rng:   l.rng,
		arcs:  l.arcs,
	}

	l.surface.Clear()
	for i := range l.field.Len() {
		glow, opacity := l.field.update(i, &fr)
		l.field.draw(i, l.surface, glow, opacity)
	}
	l.arcs.stepAndDraw(l.surface, l.rng)
	l.arcs.ambient(l.rng, in, maxY, l.field.Particles())
	l.frames++
}
