package effect

import (
	"image"
	"math"
	"sync/atomic"

	"github.com/iburimskiy/electric-background/internal/config"
)

// Interaction is the pointer, mute and spawn-limit state read by the frame step.
type Interaction struct {
	PointerX, PointerY float64
	SpawnLimit         float64
	HasSpawnLimit      bool
	Muted              bool
}

// PointerPresent reports whether the pointer sits at real coordinates rather
// than the off-canvas sentinel.
func (in Interaction) PointerPresent() bool {
	return in.PointerX != config.PointerSentinel || in.PointerY != config.PointerSentinel
}

// Tracker hands interaction state from input handlers to the frame step.
// Handlers are the single writer; each write publishes a fresh snapshot so the
// step never sees a half-updated state.
type Tracker struct {
	state atomic.Pointer[Interaction]
}

func NewTracker() *Tracker {
	t := &Tracker{}
	t.state.Store(&Interaction{
		PointerX: config.PointerSentinel,
		PointerY: config.PointerSentinel,
	})
	return t
}

func (t *Tracker) Snapshot() Interaction {
	return *t.state.Load()
}

func (t *Tracker) update(fn func(in *Interaction)) {
	next := *t.state.Load()
	fn(&next)
	t.state.Store(&next)
}

// PointerMove records the pointer position unless interaction is muted.
func (t *Tracker) PointerMove(x, y float64) {
	if t.Snapshot().Muted {
		return
	}
	t.update(func(in *Interaction) {
		in.PointerX, in.PointerY = x, y
	})
}

// PointerLeave parks the pointer far outside every interaction radius.
func (t *Tracker) PointerLeave() {
	t.update(resetPointer)
}

// Mute suppresses pointer-driven behavior and forgets the pointer.
func (t *Tracker) Mute() {
	t.update(func(in *Interaction) {
		in.Muted = true
		resetPointer(in)
	})
}

// Unmute only clears the flag; the pointer reappears on its next move.
func (t *Tracker) Unmute() {
	t.update(func(in *Interaction) {
		in.Muted = false
	})
}

// Resize recomputes the spawn limit for a viewport of the given height.
func (t *Tracker) Resize(safeZone image.Rectangle, ok bool, height float64) float64 {
	limit := SpawnLimit(safeZone, ok, height)
	t.update(func(in *Interaction) {
		in.SpawnLimit = limit
		in.HasSpawnLimit = true
	})
	return limit
}

// SpawnLimit keeps particles a small buffer above the safe zone, never lower
// than 70% of the viewport. Without a safe zone the limit is 60% of the height.
func SpawnLimit(safeZone image.Rectangle, ok bool, height float64) float64 {
	if !ok {
		return height * config.DefaultSpawnRatio
	}
	limit := math.Max(0, float64(safeZone.Min.Y)-config.SafeZoneBuffer)
	return math.Min(limit, height*config.MaxSpawnRatio)
}

func resetPointer(in *Interaction) {
	in.PointerX, in.PointerY = config.PointerSentinel, config.PointerSentinel
}
