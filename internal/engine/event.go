package engine

import "slices"

// Event fans a value out to its listeners in subscription order. The zero
// value is ready to use.
type Event[T any] struct {
	nextID    int
	listeners []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

// Subscribe adds fn and returns a func that removes it again. A nil fn is
// ignored.
func (e *Event[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, listener[T]{id: id, fn: fn})
	return func() {
		e.listeners = slices.DeleteFunc(e.listeners, func(l listener[T]) bool { return l.id == id })
	}
}

// Emit calls every listener with v. Subscriptions changed by a listener
// take effect from the next Emit.
func (e *Event[T]) Emit(v T) {
	for _, l := range slices.Clone(e.listeners) {
		l.fn(v)
	}
}

func (e *Event[T]) Len() int {
	return len(e.listeners)
}
