package storage

import (
	"fmt"
	"net/url"
	"os"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvStore keeps one file per key under a base directory.
type DiskvStore struct {
	path string
	d    *diskv.Diskv
}

func NewDiskvStore(path string) *DiskvStore {
	return &DiskvStore{path: path}
}

func (s *DiskvStore) Init() error {
	if err := os.MkdirAll(s.path, 0700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	s.d = diskv.New(diskv.Options{
		BasePath:          s.path,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
		FilePerm:          0600,
		PathPerm:          0700,
	})
	return nil
}

func (s *DiskvStore) Load() error {
	if s.d != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("store not initialized at %s", s.path)
	}
	return s.Init()
}

func (s *DiskvStore) Close() error {
	return nil
}

func (s *DiskvStore) Get(key string) (string, bool, error) {
	if s.d == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	if !s.d.Has(key) {
		return "", false, nil
	}
	val, err := s.d.Read(key)
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return string(val), true, nil
}

func (s *DiskvStore) Set(key, value string) error {
	if s.d == nil {
		return fmt.Errorf("storage not loaded")
	}
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) Delete(key string) error {
	if s.d == nil {
		return fmt.Errorf("storage not loaded")
	}
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}

func (s *DiskvStore) Keys() ([]string, error) {
	if s.d == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	var keys []string
	for k := range s.d.Keys(nil) {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Clear erases every key and recreates the empty base directory.
func (s *DiskvStore) Clear() error {
	if s.d == nil {
		return fmt.Errorf("storage not loaded")
	}
	if err := s.d.EraseAll(); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return os.MkdirAll(s.path, 0700)
}

func (s *DiskvStore) GetConfigPath() string {
	return s.path
}

// Keys may hold ':' and spaces, so file names are path-escaped.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: url.PathEscape(key),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	key, err := url.PathUnescape(pathKey.FileName)
	if err != nil {
		return pathKey.FileName
	}
	return key
}
