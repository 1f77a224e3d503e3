package page

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/electric-background/internal/effect"
)

// rawInput is what the page polls from Ebitengine once per tick.
type rawInput struct {
	cursor  image.Point
	focused bool // window has focus
	clicked bool // left button went down this tick
	escape  bool
}

func pollInput() rawInput {
	x, y := ebiten.CursorPosition()
	return rawInput{
		cursor:  image.Pt(x, y),
		focused: ebiten.IsFocused(),
		clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		escape:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// inputTracker turns polled input into the edge events a browser would fire.
type inputTracker struct {
	inside        bool
	cursor        image.Point
	windowFocused bool
	hovering      bool
	inputFocused  bool
}

func newInputTracker() inputTracker {
	return inputTracker{windowFocused: true}
}

// process compares in with the previous tick. muteZone is empty when the page
// has no mute zone; mute may then be nil.
func (t *inputTracker) process(in rawInput, viewport, muteZone image.Rectangle, window, mute *Registry) {
	if !in.focused && t.windowFocused {
		window.Dispatch(effect.Event{Kind: effect.EventWindowBlur})
	}
	t.windowFocused = in.focused

	inside := in.focused && in.cursor.In(viewport)
	switch {
	case inside && (!t.inside || in.cursor != t.cursor):
		window.Dispatch(effect.Event{
			Kind: effect.EventPointerMove,
			X:    float64(in.cursor.X),
			Y:    float64(in.cursor.Y),
		})
	case !inside && t.inside:
		window.Dispatch(effect.Event{Kind: effect.EventPointerLeave})
	}
	t.inside = inside
	t.cursor = in.cursor

	hovering := inside && in.cursor.In(muteZone)
	if hovering != t.hovering {
		t.hovering = hovering
		if hovering {
			dispatch(mute, effect.EventMouseEnter)
		} else {
			dispatch(mute, effect.EventMouseLeave)
		}
	}

	blur := (in.clicked && !hovering) || in.escape || !in.focused
	switch {
	case in.clicked && hovering && !t.inputFocused:
		t.inputFocused = true
		dispatch(mute, effect.EventFocus)
	case blur && t.inputFocused:
		t.inputFocused = false
		dispatch(mute, effect.EventBlur)
	}
}

func dispatch(r *Registry, kind effect.EventKind) {
	if r != nil {
		r.Dispatch(effect.Event{Kind: kind})
	}
}
