package session

import "testing"

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()

	var a, b int
	bus.Subscribe(func(Origin) { a++ })
	bus.Subscribe(func(Origin) { b++ })

	bus.Publish(OriginLocal)

	if a != 1 || b != 1 {
		t.Errorf("expected exactly one delivery per subscriber, got a=%d b=%d", a, b)
	}
}

func TestBusPublishIsSynchronous(t *testing.T) {
	bus := NewBus()

	delivered := false
	bus.Subscribe(func(Origin) { delivered = true })

	bus.Publish(OriginLocal)
	if !delivered {
		t.Error("Publish returned before the listener ran")
	}
}

func TestBusCarriesOrigin(t *testing.T) {
	bus := NewBus()

	var got Origin
	bus.Subscribe(func(o Origin) { got = o })

	bus.Publish(OriginExternal)
	if got != OriginExternal {
		t.Errorf("expected OriginExternal, got %v", got)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()

	count := 0
	unsubscribe := bus.Subscribe(func(Origin) { count++ })

	bus.Publish(OriginLocal)
	unsubscribe()
	bus.Publish(OriginLocal)

	if count != 1 {
		t.Errorf("expected no deliveries after unsubscribe, got %d total", count)
	}

	// Unsubscribing twice is harmless.
	unsubscribe()
}

func TestBusPublishWithNoSubscribers(t *testing.T) {
	bus := NewBus()
	bus.Publish(OriginLocal) // must not panic
}

func TestBusReentrantUnsubscribe(t *testing.T) {
	bus := NewBus()

	var unsubscribe func()
	unsubscribe = bus.Subscribe(func(Origin) { unsubscribe() })

	bus.Publish(OriginLocal)
	bus.Publish(OriginLocal) // listener removed itself on the first publish
}
