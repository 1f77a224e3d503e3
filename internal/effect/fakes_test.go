package effect

import (
	"image"
	"time"
)

// seqRand replays vals, then returns def forever.
type seqRand struct {
	vals []float64
	def  float64
	ints []int
	n    int
}

func (r *seqRand) Float64() float64 {
	r.n++
	if len(r.vals) == 0 {
		return r.def
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v
}

func (r *seqRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

type registry struct {
	next      int
	listeners map[EventKind]map[int]func(Event)
}

func newRegistry() *registry {
	return &registry{listeners: map[EventKind]map[int]func(Event){}}
}

func (r *registry) Listen(kind EventKind, fn func(Event)) func() {
	if r.listeners[kind] == nil {
		r.listeners[kind] = map[int]func(Event){}
	}
	id := r.next
	r.next++
	r.listeners[kind][id] = fn
	return func() { delete(r.listeners[kind], id) }
}

func (r *registry) emit(ev Event) {
	for _, fn := range r.listeners[ev.Kind] {
		fn(ev)
	}
}

func (r *registry) count() int {
	n := 0
	for _, m := range r.listeners {
		n += len(m)
	}
	return n
}

type fakeHost struct {
	*registry
	mute *registry

	width, height int
	safeZone      image.Rectangle
	hasSafeZone   bool

	nextFrame FrameID
	frames    map[FrameID]func(time.Time)
	cancelled []FrameID
}

func newFakeHost(width, height int) *fakeHost {
	return &fakeHost{
		registry: newRegistry(),
		mute:     newRegistry(),
		width:    width,
		height:   height,
		frames:   map[FrameID]func(time.Time){},
	}
}

func (h *fakeHost) Viewport() (int, int) { return h.width, h.height }

func (h *fakeHost) SafeZone() (image.Rectangle, bool) { return h.safeZone, h.hasSafeZone }

func (h *fakeHost) MuteZone() EventSource {
	if h.mute == nil {
		return nil
	}
	return h.mute
}

func (h *fakeHost) RequestFrame(fn func(time.Time)) FrameID {
	h.nextFrame++
	h.frames[h.nextFrame] = fn
	return h.nextFrame
}

func (h *fakeHost) CancelFrame(id FrameID) {
	h.cancelled = append(h.cancelled, id)
	delete(h.frames, id)
}

// runFrame runs the callbacks pending before the call.
func (h *fakeHost) runFrame(now time.Time) {
	pending := h.frames
	h.frames = map[FrameID]func(time.Time){}
	for _, fn := range pending {
		fn(now)
	}
}

type strokeCall struct {
	path    []Point
	width   float64
	blur    float64
	tint    Tint
	opacity float64
}

type discCall struct {
	x, y, radius, opacity float64
}

type fakeSurface struct {
	width, height int
	resizes       int
	clears        int
	glows         []discCall
	discs         []discCall
	strokes       []strokeCall
	log           []string
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }

func (s *fakeSurface) Resize(width, height int) {
	s.width, s.height = width, height
	s.resizes++
}

func (s *fakeSurface) Clear() {
	s.clears++
	s.glows, s.discs, s.strokes = nil, nil, nil
	s.log = append(s.log, "clear")
}

func (s *fakeSurface) Glow(x, y, radius, opacity float64) {
	s.glows = append(s.glows, discCall{x, y, radius, opacity})
	s.log = append(s.log, "glow")
}

func (s *fakeSurface) Disc(x, y, radius, opacity float64) {
	s.discs = append(s.discs, discCall{x, y, radius, opacity})
	s.log = append(s.log, "disc")
}

func (s *fakeSurface) Stroke(path []Point, width, blur float64, tint Tint, opacity float64) {
	s.strokes = append(s.strokes, strokeCall{append([]Point(nil), path...), width, blur, tint, opacity})
	s.log = append(s.log, "stroke")
}
