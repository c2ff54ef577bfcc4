// Package session holds the signed-in user of the client and persists it
// to a single JSON file between runs.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sbilibin2017/roommate-finder/internal/logger"
	"github.com/sbilibin2017/roommate-finder/internal/models"
)

type record struct {
	User    *models.UserSummary `json:"user"`
	SavedAt time.Time           `json:"saved_at"`
}

// Store is the client session. Load it once at start, Set it after
// register, login or profile update, and Clear it on logout.
// It is safe for concurrent use.
type Store struct {
	path string

	mu      sync.RWMutex
	current *models.UserSummary
}

// NewStore creates a store backed by the file at path. Nothing is read
// until Load.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath is $HOME/.roomctl/session.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".roomctl", "session.json"), nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted session. A missing file means nobody is signed
// in. An unreadable file leaves the session empty and returns the error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.setCurrent(nil)
		return nil
	}
	if err != nil {
		s.setCurrent(nil)
		return fmt.Errorf("read session: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.setCurrent(nil)
		return fmt.Errorf("decode session %s: %w", s.path, err)
	}

	s.setCurrent(rec.User)
	logger.Log.Debugw("Session loaded", "path", s.path, "signed_in", rec.User != nil)
	return nil
}

// Current returns the signed-in user.
func (s *Store) Current() (*models.UserSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	u := *s.current
	return &u, true
}

// Set records user as signed in and persists it.
func (s *Store) Set(user *models.UserSummary) error {
	if user == nil {
		return s.Clear()
	}

	u := *user
	data, err := json.MarshalIndent(record{User: &u, SavedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	s.setCurrent(&u)
	return nil
}

// Clear signs the user out and removes the persisted session.
func (s *Store) Clear() error {
	s.setCurrent(nil)
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func (s *Store) setCurrent(u *models.UserSummary) {
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
}

// writeFileAtomic replaces path with data through a rename so readers
// never see a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
