package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"

	"github.com/repkit/repkit/internal/constants"
)

var (
	// ErrNoToken is returned when no credential is stored
	ErrNoToken = errors.New("no stored credential")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Store persists the bearer credential under a single fixed key. Get returns
// ErrNoToken when nothing is stored; Clear on an empty store is not an error.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

// KeyringStore keeps the credential in the OS keyring.
type KeyringStore struct {
	service string
	user    string
}

// NewKeyringStore returns a store backed by the OS keyring under the
// application's fixed service/user pair.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{
		service: constants.KeyringService,
		user:    constants.KeyringUser,
	}
}

func (s *KeyringStore) Get() (string, error) {
	token, err := keyring.Get(s.service, s.user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *KeyringStore) Set(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if err := keyring.Set(s.service, s.user, token); err != nil {
		return fmt.Errorf("failed to store credential in keyring: %w", err)
	}
	return nil
}

func (s *KeyringStore) Clear() error {
	err := keyring.Delete(s.service, s.user)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete credential from keyring: %w", err)
	}
	return nil
}

// KeyringAvailable checks if the OS keyring is usable on this system.
// Best-effort: a read that fails with anything but not-found means no keyring.
func KeyringAvailable() bool {
	_, err := keyring.Get(constants.KeyringService, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

type tokenFile struct {
	AccessToken string `json:"access_token"`
}

// FileStore keeps the credential in a mode-0600 JSON file for systems
// without a usable keyring.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}

	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return "", fmt.Errorf("failed to parse token file: %w", err)
	}
	if tf.AccessToken == "" {
		return "", ErrNoToken
	}
	return tf.AccessToken, nil
}

func (s *FileStore) Set(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.Marshal(tokenFile{AccessToken: token})
	if err != nil {
		return fmt.Errorf("failed to serialize token: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
