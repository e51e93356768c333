package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "token.json"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestFileStore(t)

	if _, err := store.Get(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken from empty store, got %v", err)
	}

	if err := store.Set("abc123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	token, err := store.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if token != "abc123" {
		t.Errorf("expected token abc123, got %q", token)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := store.Get(); !errors.Is(err, ErrNoToken) {
		t.Errorf("expected ErrNoToken after Clear, got %v", err)
	}
}

func TestFileStoreRejectsEmptyToken(t *testing.T) {
	store := newTestFileStore(t)
	if err := store.Set(""); err == nil {
		t.Error("expected error storing an empty token")
	}
}

func TestFileStoreClearOnEmptyIsNotAnError(t *testing.T) {
	store := newTestFileStore(t)
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on empty store should succeed, got %v", err)
	}
	// And again, to make sure it stays idempotent.
	if err := store.Clear(); err != nil {
		t.Errorf("repeated Clear should succeed, got %v", err)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	store := newTestFileStore(t)
	if err := store.Set("first"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("second"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	token, err := store.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if token != "second" {
		t.Errorf("expected last write to win, got %q", token)
	}
}

func TestFileStorePermissions(t *testing.T) {
	store := newTestFileStore(t)
	if err := store.Set("secret"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	info, err := os.Stat(store.path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	store := newTestFileStore(t)
	if err := os.MkdirAll(filepath.Dir(store.path), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.path, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(); err == nil || errors.Is(err, ErrNoToken) {
		t.Errorf("expected a parse error for a corrupt file, got %v", err)
	}
}
