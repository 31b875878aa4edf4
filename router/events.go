package router

import "sync"

// EventKind identifies a transition lifecycle signal.
type EventKind int

const (
	// TransitionStart marks the beginning of a navigation.
	TransitionStart EventKind = iota
	// TransitionComplete marks a navigation that finished successfully.
	TransitionComplete
	// TransitionError marks a navigation that failed.
	TransitionError
)

// String returns the lifecycle signal name.
func (k EventKind) String() string {
	switch k {
	case TransitionStart:
		return "start"
	case TransitionComplete:
		return "complete"
	case TransitionError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers for each lifecycle signal. Err is set
// only for TransitionError.
type Event struct {
	Kind  EventKind
	Route string
	Err   error
}

// Bus delivers transition lifecycle events to subscribers. Subscriptions are
// scoped: Subscribe returns a disposer that detaches the callback, and a
// disposed callback is guaranteed never to fire again.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[EventKind]map[int]func(Event)
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[EventKind]map[int]func(Event)),
	}
}

// Subscribe registers fn for the given lifecycle signal and returns a
// disposer. The disposer is idempotent and safe to call from within a
// callback.
func (b *Bus) Subscribe(kind EventKind, fn func(Event)) (dispose func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[kind] == nil {
		b.subs[kind] = make(map[int]func(Event))
	}
	id := b.nextID
	b.nextID++
	b.subs[kind][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[kind], id)
	}
}

// Emit delivers an event to all current subscribers of its kind. Callbacks
// run outside the bus lock, so a callback may subscribe or dispose freely.
func (b *Bus) Emit(e Event) {
	b.mu.Lock()
	callbacks := make([]func(Event), 0, len(b.subs[e.Kind]))
	for _, fn := range b.subs[e.Kind] {
		callbacks = append(callbacks, fn)
	}
	b.mu.Unlock()

	for _, fn := range callbacks {
		fn(e)
	}
}
