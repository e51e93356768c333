package session

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(NewFileStore(filepath.Join(t.TempDir(), "token.json")))
}

func TestServiceSetNotifiesBeforeReturn(t *testing.T) {
	svc := newTestService(t)

	var seenDuringNotify bool
	svc.Subscribe(func(o Origin) {
		if o != OriginLocal {
			t.Errorf("expected OriginLocal, got %v", o)
		}
		// The new value must already be readable from inside the listener.
		token, err := svc.Get()
		seenDuringNotify = err == nil && token == "tok1"
	})

	if err := svc.Set("tok1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !seenDuringNotify {
		t.Error("listener could not observe the stored value during notification")
	}
}

func TestServiceClearNotifiesEvenWhenEmpty(t *testing.T) {
	svc := newTestService(t)

	notified := 0
	svc.Subscribe(func(Origin) { notified++ })

	if err := svc.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if notified != 1 {
		t.Errorf("expected a notification from clearing an empty store, got %d", notified)
	}
}

func TestServiceLoggedIn(t *testing.T) {
	svc := newTestService(t)

	if svc.LoggedIn() {
		t.Error("fresh service should not be logged in")
	}
	if err := svc.Set("tok"); err != nil {
		t.Fatal(err)
	}
	if !svc.LoggedIn() {
		t.Error("expected logged in after Set")
	}
	if err := svc.Clear(); err != nil {
		t.Fatal(err)
	}
	if svc.LoggedIn() {
		t.Error("expected logged out after Clear")
	}
}

func TestServiceCheckDetectsExternalChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	svc := New(NewFileStore(path))

	var origins []Origin
	svc.Subscribe(func(o Origin) { origins = append(origins, o) })

	// No change yet.
	svc.Check()
	if len(origins) != 0 {
		t.Fatalf("expected no notification without a change, got %v", origins)
	}

	// Another process writes to the same store.
	other := NewFileStore(path)
	if err := other.Set("external-token"); err != nil {
		t.Fatal(err)
	}

	svc.Check()
	if len(origins) != 1 || origins[0] != OriginExternal {
		t.Fatalf("expected one OriginExternal notification, got %v", origins)
	}

	// Redundant polls stay quiet.
	svc.Check()
	if len(origins) != 1 {
		t.Errorf("expected no notification on an unchanged store, got %v", origins)
	}
}

func TestServiceCheckIgnoresOwnMutations(t *testing.T) {
	svc := newTestService(t)

	var origins []Origin
	svc.Subscribe(func(o Origin) { origins = append(origins, o) })

	if err := svc.Set("tok"); err != nil {
		t.Fatal(err)
	}
	svc.Check()

	if len(origins) != 1 || origins[0] != OriginLocal {
		t.Errorf("Check must not re-report a local Set, got %v", origins)
	}
}

func TestServiceSeedsLastSeenAtConstruction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if err := NewFileStore(path).Set("pre-existing"); err != nil {
		t.Fatal(err)
	}

	svc := New(NewFileStore(path))

	notified := false
	svc.Subscribe(func(Origin) { notified = true })
	svc.Check()

	if notified {
		t.Error("a credential present at startup must not fire as an external change")
	}
}

func TestServicePurgeOnUnauthorized(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Set("tok"); err != nil {
		t.Fatal(err)
	}

	svc.PurgeOnUnauthorized()

	if _, err := svc.Get(); !errors.Is(err, ErrNoToken) {
		t.Errorf("expected credential purged, got %v", err)
	}
}
