package page

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/electric-background/internal/effect"
)

type recorder struct {
	window, mute *Registry
	events       []string
}

func newRecorder() *recorder {
	r := &recorder{window: NewRegistry(), mute: NewRegistry()}
	for k := effect.EventPointerMove; k <= effect.EventBlur; k++ {
		r.window.Listen(k, func(ev effect.Event) { r.events = append(r.events, "window:"+ev.Kind.String()) })
		r.mute.Listen(k, func(ev effect.Event) { r.events = append(r.events, "mute:"+ev.Kind.String()) })
	}
	return r
}

func (r *recorder) take() []string {
	ev := r.events
	r.events = nil
	return ev
}

var (
	viewport = image.Rect(0, 0, 800, 600)
	zone     = image.Rect(300, 400, 500, 444)
)

func at(x, y int) rawInput {
	return rawInput{cursor: image.Pt(x, y), focused: true}
}

func TestInputPointerMoveAndLeave(t *testing.T) {
	r := newRecorder()
	tr := newInputTracker()

	tr.process(at(10, 10), viewport, zone, r.window, r.mute)
	assert.Equal(t, []string{"window:pointermove"}, r.take())

	tr.process(at(10, 10), viewport, zone, r.window, r.mute)
	assert.Empty(t, r.take(), "no event while the cursor rests")

	tr.process(at(20, 15), viewport, zone, r.window, r.mute)
	assert.Equal(t, []string{"window:pointermove"}, r.take())

	tr.process(at(-5, 15), viewport, zone, r.window, r.mute)
	assert.Equal(t, []string{"window:pointerleave"}, r.take())

	tr.process(at(-8, 15), viewport, zone, r.window, r.mute)
	assert.Empty(t, r.take())
}

func TestInputWindowBlur(t *testing.T) {
	r := newRecorder()
	tr := newInputTracker()
	tr.process(at(10, 10), viewport, zone, r.window, r.mute)
	r.take()

	in := at(10, 10)
	in.focused = false
	tr.process(in, viewport, zone, r.window, r.mute)
	assert.Equal(t, []string{"window:windowblur", "window:pointerleave"}, r.take())

	tr.process(in, viewport, zone, r.window, r.mute)
	assert.Empty(t, r.take())
}

func TestInputMuteZoneHover(t *testing.T) {
	r := newRecorder()
	tr := newInputTracker()

	tr.process(at(350, 420), viewport, zone, r.window, r.mute)
	assert.Equal(t, []string{"window:pointermove", "mute:mouseenter"}, r.take())

	tr.process(at(360, 420), viewport, zone, r.window, r.mute)
	assert.Equal(t, []string{"window:pointermove"}, r.take())

	tr.process(at(100, 100), viewport, zone, r.window, r.mute)
	assert.Equal(t, []string{"window:pointermove", "mute:mouseleave"}, r.take())
}

func TestInputFocusAndBlur(t *testing.T) {
	r := newRecorder()
	tr := newInputTracker()

	click := at(350, 420)
	click.clicked = true
	tr.process(click, viewport, zone, r.window, r.mute)
	assert.Equal(t, []string{"window:pointermove", "mute:mouseenter", "mute:focus"}, r.take())
	assert.True(t, tr.inputFocused)

	tr.process(at(100, 100), viewport, zone, r.window, r.mute)
	assert.Equal(t, []string{"window:pointermove", "mute:mouseleave"}, r.take(), "leaving keeps focus")

	outside := at(100, 100)
	outside.clicked = true
	tr.process(outside, viewport, zone, r.window, r.mute)
	assert.Equal(t, []string{"mute:blur"}, r.take())
	assert.False(t, tr.inputFocused)
}

func TestInputEscapeBlurs(t *testing.T) {
	r := newRecorder()
	tr := newInputTracker()
	click := at(350, 420)
	click.clicked = true
	tr.process(click, viewport, zone, r.window, r.mute)
	r.take()

	esc := at(350, 420)
	esc.escape = true
	tr.process(esc, viewport, zone, r.window, r.mute)
	assert.Equal(t, []string{"mute:blur"}, r.take())
}

func TestInputWithoutMuteZone(t *testing.T) {
	r := newRecorder()
	tr := newInputTracker()
	click := at(350, 420)
	click.clicked = true
	tr.process(click, viewport, image.Rectangle{}, r.window, nil)
	assert.Equal(t, []string{"window:pointermove"}, r.take())
	assert.False(t, tr.inputFocused)
}
