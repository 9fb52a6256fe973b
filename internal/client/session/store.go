package session

import (
	"os"
	"path/filepath"
	"sync"

	"cryptoinsight/internal/errors"
)

// fileStore persists the token to a single file under the user's config
// directory, mirroring how the browser client leans on localStorage.
type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store at the given path. The parent directory is
// created on first save.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

// DefaultStorePath places the token under the OS user config directory.
func DefaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve user config dir")
	}

	return filepath.Join(dir, "cryptoinsight", "session"), nil
}

func (s *fileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", errors.Wrap(err, "failed to read session file")
	}

	return string(data), nil
}

func (s *fileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create session dir")
	}

	return errors.Wrap(os.WriteFile(s.path, []byte(token), 0o600), "failed to write session file")
}

func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove session file")
	}

	return nil
}

// memoryStore keeps the token in process memory only. Useful for tests and
// short-lived tools.
type memoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token, nil
}

func (s *memoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token

	return nil
}

func (s *memoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""

	return nil
}
