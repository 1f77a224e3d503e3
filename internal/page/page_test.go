package page

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/electric-background/internal/effect"
)

func newTestPage(opts Options) *Page {
	p := New(context.Background(), opts)
	p.Layout(800, 600)
	return p
}

// mountHeadless mounts the effect without a drawing surface.
func mountHeadless(t *testing.T, p *Page) *effect.Effect {
	t.Helper()
	opts := p.opts.Effect
	if opts.Rand == nil {
		opts.Rand = effect.NewRand(1)
	}
	p.effect = effect.Mount(p, nil, opts)
	p.resized = false
	t.Cleanup(p.Close)
	return p.effect
}

func TestPageHost(t *testing.T) {
	p := newTestPage(Options{SafeZone: true, MuteZone: true})

	w, h := p.Viewport()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	zone, ok := p.SafeZone()
	require.True(t, ok)
	assert.Equal(t, p.layout.Subtitle, zone)
	assert.NotNil(t, p.MuteZone())
	assert.Equal(t, p.layout.Input, p.muteRect())
}

func TestPageWithoutZones(t *testing.T) {
	p := newTestPage(Options{})

	_, ok := p.SafeZone()
	assert.False(t, ok)
	assert.Nil(t, p.MuteZone())
	assert.True(t, p.muteRect().Empty())
	assert.Nil(t, p.muteRegistry())
}

func TestPageLayoutMarksResize(t *testing.T) {
	p := New(context.Background(), Options{})
	w, h := p.Layout(1024, 768)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
	assert.True(t, p.resized)

	p.resized = false
	p.Layout(1024, 768)
	assert.False(t, p.resized, "same size is not a resize")
}

func TestPageEffectIntegration(t *testing.T) {
	p := newTestPage(Options{SafeZone: true, MuteZone: true})
	e := mountHeadless(t, p)

	limit := e.Interaction().SpawnLimit
	assert.InDelta(t, float64(p.layout.Subtitle.Min.Y)-32, limit, 1e-9)
	assert.Equal(t, 1, p.frames.Pending())
	assert.Equal(t, 4, p.window.Len())
	assert.Equal(t, 4, p.mute.Len())

	p.Layout(1600, 900)
	p.syncSize()
	assert.InDelta(t, float64(p.layout.Subtitle.Min.Y)-32, e.Interaction().SpawnLimit, 1e-9)
	assert.NotEqual(t, limit, e.Interaction().SpawnLimit)

	p.window.Dispatch(effect.Event{Kind: effect.EventPointerMove, X: 200, Y: 100})
	assert.True(t, e.Interaction().PointerPresent())

	p.mute.Dispatch(effect.Event{Kind: effect.EventFocus})
	assert.True(t, e.Interaction().Muted)
	assert.False(t, e.Interaction().PointerPresent())

	p.frames.Run(time.Now())
	assert.Equal(t, 1, p.frames.Pending(), "the loop keeps one frame pending")

	p.Close()
	assert.Zero(t, p.window.Len())
	assert.Zero(t, p.mute.Len())
	assert.Zero(t, p.frames.Pending())
}

func TestPageInputDrivesEffect(t *testing.T) {
	p := newTestPage(Options{MuteZone: true})
	e := mountHeadless(t, p)

	input := p.layout.Input
	click := at(input.Min.X+4, input.Min.Y+4)
	click.clicked = true
	p.input.process(click, viewport, p.muteRect(), p.window, p.muteRegistry())
	assert.True(t, e.Interaction().Muted)
	assert.False(t, e.Interaction().PointerPresent())

	// The move is seen before the leave, so it is still muted.
	p.input.process(at(10, 10), viewport, p.muteRect(), p.window, p.muteRegistry())
	assert.False(t, e.Interaction().Muted, "leaving the input unmutes")
	assert.False(t, e.Interaction().PointerPresent())

	p.input.process(at(12, 10), viewport, p.muteRect(), p.window, p.muteRegistry())
	assert.True(t, e.Interaction().PointerPresent())
}
