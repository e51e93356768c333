package session

import (
	"errors"
	"sync"

	"github.com/repkit/repkit/internal/logger"
)

// Service owns the stored credential and the change bus. It is constructed
// once per process and passed by reference to everything that needs session
// state; there are no package-level globals.
//
// LoggedIn is a pure projection of the store, never cached state, so it
// cannot go stale relative to a concurrent Set or Clear.
type Service struct {
	store Store
	bus   *Bus

	mu       sync.Mutex
	lastSeen string // last value observed by Check; "" means absent
}

// New creates a Service over the given store. The current store value is
// read once so the first Check does not report a pre-existing credential as
// an external change.
func New(store Store) *Service {
	s := &Service{store: store, bus: NewBus()}
	if token, err := store.Get(); err == nil {
		s.lastSeen = token
	}
	return s
}

// Get returns the stored credential, or ErrNoToken when absent.
func (s *Service) Get() (string, error) {
	return s.store.Get()
}

// LoggedIn reports whether a non-empty credential is currently stored.
func (s *Service) LoggedIn() bool {
	_, err := s.store.Get()
	return err == nil
}

// Set stores the credential and synchronously notifies all subscribers
// before returning. Last write wins; there is no compare-and-swap.
func (s *Service) Set(token string) error {
	if err := s.store.Set(token); err != nil {
		return err
	}
	s.remember(token)
	s.bus.Publish(OriginLocal)
	return nil
}

// Clear removes the credential and synchronously notifies all subscribers
// before returning. Clearing an already-empty store still notifies.
func (s *Service) Clear() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.remember("")
	s.bus.Publish(OriginLocal)
	return nil
}

// Subscribe registers a change listener; the returned function removes it.
// Listeners receive no value and must re-read the service themselves.
func (s *Service) Subscribe(fn func(Origin)) func() {
	return s.bus.Subscribe(fn)
}

// Check re-reads the store and publishes an external-change notification if
// the credential differs from what this process last observed. Safe to call
// on a timer; redundant calls are cheap no-ops. Changes made through Set and
// Clear are already accounted for and do not double-fire.
func (s *Service) Check() {
	token, err := s.store.Get()
	if err != nil && !errors.Is(err, ErrNoToken) {
		logger.Warn("Credential store read failed during poll", "error", err)
		return
	}

	s.mu.Lock()
	changed := token != s.lastSeen
	s.lastSeen = token
	s.mu.Unlock()

	if changed {
		s.bus.Publish(OriginExternal)
	}
}

// PurgeOnUnauthorized clears the credential after the backend rejected it.
// Best-effort: a failure to clear is logged and never masks the caller's
// original error.
func (s *Service) PurgeOnUnauthorized() {
	if err := s.Clear(); err != nil {
		logger.Warn("Failed to purge credential after 401", "error", err)
	}
}

func (s *Service) remember(token string) {
	s.mu.Lock()
	s.lastSeen = token
	s.mu.Unlock()
}
