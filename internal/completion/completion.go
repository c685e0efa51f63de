// Package completion owns the per-item completion flags kept in the
// key-value store.
package completion

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/julianstephens/tripboard/internal/constants"
	"github.com/julianstephens/tripboard/internal/logger"
	"github.com/julianstephens/tripboard/internal/storage"
)

// KeyScheme selects how flag keys are derived.
type KeyScheme int

const (
	// LegacyKeys use only the item time, so items sharing a time share a flag.
	LegacyKeys KeyScheme = iota
	// NamespacedKeys include the trip id and day date.
	NamespacedKeys
)

// Store reads and flips completion flags.
type Store struct {
	mu     sync.Mutex
	kv     storage.Provider
	scheme KeyScheme
}

// New wraps a provider.
func New(kv storage.Provider, scheme KeyScheme) *Store {
	return &Store{kv: kv, scheme: scheme}
}

// Key builds the store key for an item.
func (s *Store) Key(tripID, date, itemTime string) string {
	if s.scheme == NamespacedKeys {
		return constants.CompletionKeyPrefix + strings.Join([]string{tripID, date, itemTime}, "_")
	}
	return constants.CompletionKeyPrefix + itemTime
}

// IsCompleted reports the stored flag. Missing, unreadable or malformed
// values read as false.
func (s *Store) IsCompleted(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(key)
}

func (s *Store) read(key string) bool {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		logger.Warn("failed to read completion flag", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	var done bool
	if err := json.Unmarshal([]byte(raw), &done); err != nil {
		logger.Debug("ignoring malformed completion flag", "key", key, "value", raw)
		return false
	}
	return done
}

// Toggle flips the flag for key, persists it, and returns the new value.
func (s *Store) Toggle(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := !s.read(key)
	data, err := json.Marshal(next)
	if err != nil {
		return false, err
	}
	if err := s.kv.Set(key, string(data)); err != nil {
		return false, fmt.Errorf("failed to persist completion flag: %w", err)
	}
	return next, nil
}

// ResetAll clears every key in the underlying store, including keys this
// package did not write.
func (s *Store) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Clear(); err != nil {
		return fmt.Errorf("failed to reset state: %w", err)
	}
	return nil
}
