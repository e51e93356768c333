package session

import "sync"

// Origin tags where a credential change was observed.
type Origin int

const (
	// OriginLocal marks a mutation made through this process's Service.
	OriginLocal Origin = iota
	// OriginExternal marks a change detected in the underlying store that
	// this process did not make (another repkit instance logged in or out).
	OriginExternal
)

// Bus is a synchronous publish/subscribe channel for credential changes.
// Notifications carry no token value; listeners re-read the store, because
// external change detection likewise only says "something changed". Delivery
// is at-least-once per publish to all current subscribers, with no ordering
// guarantee across listeners and no deduplication of rapid publishes.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Origin)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Origin))}
}

// Subscribe registers a listener and returns its unsubscribe function.
// Unsubscribing twice is harmless.
func (b *Bus) Subscribe(fn func(Origin)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish synchronously notifies every currently subscribed listener before
// returning. The subscriber snapshot is taken under the lock but listeners
// run outside it, so a listener may subscribe or unsubscribe reentrantly.
func (b *Bus) Publish(origin Origin) {
	b.mu.Lock()
	listeners := make([]func(Origin), 0, len(b.subs))
	for _, fn := range b.subs {
		listeners = append(listeners, fn)
	}
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(origin)
	}
}
