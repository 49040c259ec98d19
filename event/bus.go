package event

// Handler receives a dispatched event
type Handler func(ev Event)

// Subscription identifies a registered handler for Unsubscribe
type Subscription struct {
	Type EventType
	id   uint64
}

type entry struct {
	id uint64
	fn Handler
}

// Bus is a synchronous observer list keyed by event type
// Handlers run inline on Publish in registration order; there is no queue and no deferral
// Not safe for concurrent use, the turret is driven from a single goroutine
type Bus struct {
	handlers map[EventType][]entry
	nextID   uint64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]entry),
	}
}

// Subscribe registers fn for events of type t
func (b *Bus) Subscribe(t EventType, fn Handler) Subscription {
	b.nextID++
	b.handlers[t] = append(b.handlers[t], entry{id: b.nextID, fn: fn})
	return Subscription{Type: t, id: b.nextID}
}

// Unsubscribe removes a handler, unknown subscriptions are ignored
func (b *Bus) Unsubscribe(s Subscription) {
	list := b.handlers[s.Type]
	for i, e := range list {
		if e.id == s.id {
			// Copy so an in-flight Publish iterating the old slice is unaffected
			next := make([]entry, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			b.handlers[s.Type] = next
			return
		}
	}
}

// Publish delivers ev to every handler of its type before returning
func (b *Bus) Publish(ev Event) {
	list := b.handlers[ev.Type]
	if len(list) == 0 {
		return
	}
	for _, e := range list {
		e.fn(ev)
	}
}

// Count returns the number of handlers registered for t
func (b *Bus) Count(t EventType) int {
	return len(b.handlers[t])
}
