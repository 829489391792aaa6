package events

import "sync"

// Bus is an in-process publish/subscribe mechanism with synchronous
// delivery. Subscribers for a type are invoked in registration order
// before Publish returns, so any subscriber that queries shared state
// from its handler sees the fully committed post-event state.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Type][]subscription
	all    []subscription
}

type subscription struct {
	id      int
	handler Handler
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{
		subs: make(map[Type][]subscription),
	}
}

// Subscribe registers a handler for one event type and returns an
// unsubscribe function. Unsubscribing twice is a no-op.
func (b *Bus) Subscribe(t Type, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[t] = append(b.subs[t], subscription{id: id, handler: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.subs[t] = removeSub(b.subs[t], id)
	}
}

// SubscribeAll registers a handler for every event type. Used by the
// WebSocket hub to relay the whole vocabulary to connected clients.
func (b *Bus) SubscribeAll(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.all = append(b.all, subscription{id: id, handler: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.all = removeSub(b.all, id)
	}
}

// Publish delivers an event to all matching subscribers synchronously.
// The subscriber list is snapshotted under the lock and handlers are
// invoked outside it, so handlers may publish or (un)subscribe.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[e.Type])+len(b.all))
	for _, s := range b.subs[e.Type] {
		handlers = append(handlers, s.handler)
	}
	for _, s := range b.all {
		handlers = append(handlers, s.handler)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}

func removeSub(subs []subscription, id int) []subscription {
	for i, s := range subs {
		if s.id == id {
			return append(subs[:i], subs[i+1:]...)
		}
	}
	return subs
}
