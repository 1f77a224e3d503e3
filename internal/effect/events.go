package effect

import (
	"image"
	"time"
)

// EventKind identifies an input signal delivered by the host page.
type EventKind uint8

const (
	EventPointerMove EventKind = iota
	EventPointerLeave
	EventWindowBlur
	EventResize
	EventMouseEnter
	EventMouseLeave
	EventFocus
	EventBlur
)

func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "pointermove"
	case EventPointerLeave:
		return "pointerleave"
	case EventWindowBlur:
		return "windowblur"
	case EventResize:
		return "resize"
	case EventMouseEnter:
		return "mouseenter"
	case EventMouseLeave:
		return "mouseleave"
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	default:
		return "unknown"
	}
}

// Event carries pointer coordinates for EventPointerMove; other kinds ignore X and Y.
type Event struct {
	Kind EventKind
	X, Y float64
}

// EventSource registers listeners. The returned func removes the listener.
type EventSource interface {
	Listen(kind EventKind, fn func(Event)) (remove func())
}

// FrameID identifies a pending frame request.
type FrameID uint64

// Scheduler runs a callback once, the next time the host is ready to paint.
type Scheduler interface {
	RequestFrame(fn func(now time.Time)) FrameID
	CancelFrame(id FrameID)
}

// Host is the page the effect is mounted into. Window-level events come from
// the embedded EventSource. Listeners and frame callbacks must all run on the
// goroutine that drives frames.
type Host interface {
	EventSource
	Scheduler
	Viewport() (width, height int)
	// SafeZone reports the on-screen bounds of the region particles must stay
	// above, or false when the page has none.
	SafeZone() (image.Rectangle, bool)
	// MuteZone returns the element whose engagement mutes pointer
	// interaction, or nil.
	MuteZone() EventSource
}
