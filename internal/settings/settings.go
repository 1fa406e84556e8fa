// Package settings provides YAML-backed user preferences.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appDir       = "screenpicker"
	settingsFile = "settings.yaml"
)

// Known keys.
const (
	KeyColorType     = "color_type"
	// KeyHoldClipboard keeps the process alive after a copy until another
	// program owns the clipboard. Defaults to true.
	KeyHoldClipboard = "hold_clipboard"
)

// Store keeps options as a flat string map.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
	path   string
}

// DefaultPath returns ~/.config/screenpicker/settings.yaml (or the platform
// equivalent).
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, appDir, settingsFile)
}

// Load reads the settings file at path. A missing file is not an error and
// yields an empty store; an unreadable or malformed file returns the empty
// store together with the error so callers can log and carry on.
func Load(path string) (*Store, error) {
	s := &Store{values: make(map[string]string), path: path}
	if path == "" {
		s.path = DefaultPath()
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	var values map[string]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return s, fmt.Errorf("parse %s: %w", s.path, err)
	}
	for k, v := range values {
		s.values[k] = v
	}
	return s, nil
}

// Path is where Save writes.
func (s *Store) Path() string { return s.path }

// Option returns the value stored under key, or def when unset.
func (s *Store) Option(key, def string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.values[key]; ok && v != "" {
		return v
	}
	return def
}

// SetOption stores a value in memory; call Save to persist it.
func (s *Store) SetOption(key, val string) {
	s.mu.Lock()
	s.values[key] = val
	s.mu.Unlock()
}

// Bool returns a bool option, or fallback if unset or unparsable.
func (s *Store) Bool(key string, fallback bool) bool {
	v := s.Option(key, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// Save writes all options to disk, creating the directory if needed.
func (s *Store) Save() error {
	s.mu.RLock()
	values := make(map[string]string, len(s.values))
	for k, v := range s.values {
		values[k] = v
	}
	s.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(values); err != nil {
		return err
	}
	return enc.Close()
}
