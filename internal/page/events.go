package page

import "github.com/iburimskiy/electric-background/internal/effect"

type listener struct {
	id int
	fn func(effect.Event)
}

// Registry dispatches page events synchronously, in registration order.
type Registry struct {
	next      int
	listeners map[effect.EventKind][]listener
}

var _ effect.EventSource = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{listeners: make(map[effect.EventKind][]listener)}
}

func (r *Registry) Listen(kind effect.EventKind, fn func(effect.Event)) func() {
	r.next++
	id := r.next
	r.listeners[kind] = append(r.listeners[kind], listener{id: id, fn: fn})
	return func() { r.remove(kind, id) }
}

func (r *Registry) remove(kind effect.EventKind, id int) {
	ls := r.listeners[kind]
	for i, l := range ls {
		if l.id == id {
			r.listeners[kind] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Dispatch delivers ev to the listeners registered when the call starts.
func (r *Registry) Dispatch(ev effect.Event) {
	ls := r.listeners[ev.Kind]
	if len(ls) == 0 {
		return
	}
	for _, l := range append([]listener(nil), ls...) {
		l.fn(ev)
	}
}

// Len is the number of registered listeners across all kinds.
func (r *Registry) Len() int {
	n := 0
	for _, ls := range r.listeners {
		n += len(ls)
	}
	return n
}
