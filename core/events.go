package core

// Handler receives an event raised by sender.
type Handler[T any] func(sender any, args T)

// Event is a multicast notification. Handlers run synchronously in the order
// they subscribed.
type Event[T any] struct {
	handlers []Handler[T]
}

// Subscribe adds h and returns a function that removes it again.
func (e *Event[T]) Subscribe(h Handler[T]) (unsubscribe func()) {
	if h == nil {
		return func() {}
	}
	e.handlers = append(e.handlers, h)
	slot := len(e.handlers) - 1
	return func() {
		if slot < len(e.handlers) {
			e.handlers[slot] = nil
		}
	}
}

// Emit invokes every live handler.
func (e *Event[T]) Emit(sender any, args T) {
	for _, h := range e.handlers {
		if h != nil {
			h(sender, args)
		}
	}
}

// Len returns the number of live handlers.
func (e *Event[T]) Len() int {
	n := 0
	for _, h := range e.handlers {
		if h != nil {
			n++
		}
	}
	return n
}

// Empty is the payload of events that carry no data.
type Empty struct{}

// CancelArgs lets a handler veto the operation being announced.
type CancelArgs struct {
	Cancel bool
}

// SelectedArgs describes a selection change.
type SelectedArgs struct {
	// Index in the full list of items.
	Index int
	// OnScreen is the row inside the visible window.
	OnScreen int
}

// ItemChangedArgs describes the new value of a multi-value item.
type ItemChangedArgs[T any] struct {
	Object T
	Index  int
}

// ResolutionChangedArgs carries the resolution before and after a change.
type ResolutionChangedArgs struct {
	Before Size
	After  Size
}

// SafeZoneChangedArgs carries the safe-zone scalar before and after a change.
type SafeZoneChangedArgs struct {
	Before float64
	After  float64
}
