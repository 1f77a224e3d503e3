package effect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoop(host *fakeHost, s Surface) *loop {
	return &loop{
		sched:   host,
		surface: s,
		field:   &Field{},
		arcs:    &ArcPool{},
		tracker: NewTracker(),
		rng:     NewRand(1),
	}
}

func TestLoopReschedules(t *testing.T) {
	host := newFakeHost(800, 600)
	s := &fakeSurface{width: 800, height: 600}
	l := newTestLoop(host, s)

	l.start()
	require.Len(t, host.frames, 1)
	l.start()
	require.Len(t, host.frames, 1, "start is idempotent")

	now := time.Unix(1700000000, 0)
	for i := range 3 {
		host.runFrame(now.Add(time.Duration(i) * 16 * time.Millisecond))
		require.Len(t, host.frames, 1, "exactly one pending frame")
	}
	assert.Equal(t, uint64(3), l.frames)
	assert.Equal(t, 3, s.clears)
}

func TestLoopStopCancelsPendingFrame(t *testing.T) {
	host := newFakeHost(800, 600)
	l := newTestLoop(host, &fakeSurface{width: 800, height: 600})
	l.start()
	pending := l.pending

	l.stop()
	assert.Empty(t, host.frames)
	assert.Equal(t, []FrameID{pending}, host.cancelled)

	l.stop()
	assert.Len(t, host.cancelled, 1)
}

func TestLoopTickAfterStop(t *testing.T) {
	host := newFakeHost(800, 600)
	s := &fakeSurface{width: 800, height: 600}
	l := newTestLoop(host, s)
	l.start()
	fn := host.frames[l.pending]
	l.stop()

	fn(time.Now())
	assert.Zero(t, s.clears)
	assert.Empty(t, host.frames)
}

func TestLoopSkipsWithoutSurface(t *testing.T) {
	host := newFakeHost(800, 600)
	l := newTestLoop(host, nil)
	l.start()
	host.runFrame(time.Now())
	assert.Zero(t, l.frames)
	assert.Len(t, host.frames, 1, "still rescheduled")

	s := &fakeSurface{}
	l.surface = s
	host.runFrame(time.Now())
	assert.Zero(t, l.frames, "zero-sized surface is not ready")

	s.width, s.height = 800, 600
	host.runFrame(time.Now())
	assert.Equal(t, uint64(1), l.frames)
}

func TestLoopStepOrder(t *testing.T) {
	host := newFakeHost(800, 600)
	s := &fakeSurface{width: 800, height: 600}
	l := newTestLoop(host, s)
	l.field.particles = []Particle{still(100, 100), still(300, 100)}
	l.arcs.create(Point{0, 0}, Point{50, 50}, 0.8)

	l.step(time.Unix(0, 0))
	assert.Equal(t, []string{"clear", "glow", "disc", "glow", "disc", "stroke", "stroke"}, s.log)
}

func TestLoopFallbackSpawnLimit(t *testing.T) {
	host := newFakeHost(800, 600)
	s := &fakeSurface{width: 800, height: 600}
	l := newTestLoop(host, s)
	p := still(10, 395)
	p.VY = 0.1
	l.field.particles = []Particle{p}

	l.step(time.Unix(0, 0))
	assert.Equal(t, -0.1, l.field.particles[0].VY, "reflects at 65% of the height before the first resize")
}
