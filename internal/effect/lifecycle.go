package effect

import "log"

type Options struct {
	// Rand drives every random roll. Nil uses a clock-seeded source.
	Rand Rand
	// OnArc is called for every arc the simulation creates.
	OnArc func(Arc)
}

// Effect is a mounted electric background.
type Effect struct {
	host    Host
	surface Surface
	tracker *Tracker
	field   *Field
	arcs    *ArcPool
	loop    *loop
	rng     Rand

	remove  []func()
	mounted bool
}

// Mount attaches the effect to host, sizes surface to the viewport, spawns the
// particle population and starts the frame loop. surface may be nil until the
// page has one; frames are skipped meanwhile.
func Mount(host Host, surface Surface, opts Options) *Effect {
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(0)
	}
	e := &Effect{
		host:    host,
		surface: surface,
		tracker: NewTracker(),
		field:   &Field{},
		arcs:    &ArcPool{onCreate: opts.OnArc},
		rng:     rng,
	}
	e.loop = &loop{
		sched:   host,
		surface: surface,
		field:   e.field,
		arcs:    e.arcs,
		tracker: e.tracker,
		rng:     rng,
	}

	e.resize()
	e.listen(host, EventResize, func(Event) { e.resize() })
	e.listen(host, EventPointerMove, func(ev Event) { e.tracker.PointerMove(ev.X, ev.Y) })
	e.listen(host, EventPointerLeave, func(Event) { e.tracker.PointerLeave() })
	e.listen(host, EventWindowBlur, func(Event) { e.tracker.PointerLeave() })

	if zone := host.MuteZone(); zone != nil {
		e.listen(zone, EventMouseEnter, func(Event) { e.mute() })
		e.listen(zone, EventFocus, func(Event) { e.mute() })
		e.listen(zone, EventMouseLeave, func(Event) { e.tracker.Unmute() })
		e.listen(zone, EventBlur, func(Event) { e.tracker.Unmute() })
	}

	e.mounted = true
	e.loop.start()
	log.Printf("effect: mounted (%d particles)", e.field.Len())
	return e
}

// Unmount removes every listener and cancels the pending frame. Calling it
// more than once is a no-op.
func (e *Effect) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	e.loop.stop()
	for _, remove := range e.remove {
		remove()
	}
	e.remove = nil
	log.Printf("effect: unmounted after %d frames", e.loop.frames)
}

func (e *Effect) Mounted() bool { return e.mounted }

func (e *Effect) Interaction() Interaction { return e.tracker.Snapshot() }

func (e *Effect) Particles() []Particle { return e.field.Particles() }

func (e *Effect) Arcs() []Arc { return e.arcs.Arcs() }

// Frames is the number of frames rendered so far.
func (e *Effect) Frames() uint64 { return e.loop.frames }

func (e *Effect) listen(src EventSource, kind EventKind, fn func(Event)) {
	e.remove = append(e.remove, src.Listen(kind, fn))
}

// resize matches the surface to the viewport and regenerates the particles.
// Live arcs are kept.
func (e *Effect) resize() {
	width, height := e.host.Viewport()
	if e.surface != nil {
		e.surface.Resize(width, height)
	}
	zone, ok := e.host.SafeZone()
	limit := e.tracker.Resize(zone, ok, float64(height))
	e.field.reset(e.rng, float64(width), float64(height), limit, true)
	log.Printf("effect: resized to %dx%d, spawn limit %.0f, %d particles", width, height, limit, e.field.Len())
}

func (e *Effect) mute() {
	e.tracker.Mute()
	e.arcs.clear()
}
