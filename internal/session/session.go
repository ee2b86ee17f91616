// Package session holds the search result list the navigation commands walk
// through. Because every CLI invocation is a fresh process, the active
// session is persisted implicitly under the sessions directory; named
// sessions are explicit copies the user saves and recalls.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrEmpty reports a navigation call with no active results. It is a
// user-facing condition, not a crash.
var ErrEmpty = errors.New("no active results")

// currentName is the reserved name of the implicit active session.
const currentName = "current"

// Session is a named ordered result list with a navigation cursor.
type Session struct {
	Name    string   `json:"name"`
	SavedAt string   `json:"saved_at"`
	Results []string `json:"results"`
	Cursor  int      `json:"cursor"`
}

// Manager persists sessions under a directory, one JSON file per name.
// Last write wins; no locking between concurrent writers.
type Manager struct {
	dir string
}

func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Replace installs results as the active session with the cursor at 0 and
// persists it. An empty result list clears the active session.
func (m *Manager) Replace(results []string) error {
	if len(results) == 0 {
		_ = os.Remove(m.path(currentName))
		return nil
	}
	s := &Session{
		Name:    currentName,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
		Results: results,
		Cursor:  0,
	}
	return m.writeSession(currentName, s)
}

// Current loads the active session. ErrEmpty when none exists.
func (m *Manager) Current() (*Session, error) {
	return m.read(currentName)
}

// Next advances the cursor, clamping at the last result. The boolean reports
// whether the cursor actually moved.
func (m *Manager) Next() (*Session, bool, error) {
	return m.move(func(s *Session) int { return s.Cursor + 1 })
}

// Prev steps the cursor back, clamping at the first result.
func (m *Manager) Prev() (*Session, bool, error) {
	return m.move(func(s *Session) int { return s.Cursor - 1 })
}

// First jumps to the first result.
func (m *Manager) First() (*Session, bool, error) {
	return m.move(func(s *Session) int { return 0 })
}

// Last jumps to the last result.
func (m *Manager) Last() (*Session, bool, error) {
	return m.move(func(s *Session) int { return len(s.Results) - 1 })
}

func (m *Manager) move(target func(*Session) int) (*Session, bool, error) {
	s, err := m.read(currentName)
	if err != nil {
		return nil, false, err
	}
	next := clamp(target(s), 0, len(s.Results)-1)
	moved := next != s.Cursor
	if moved {
		s.Cursor = next
		if err := m.writeSession(currentName, s); err != nil {
			return nil, false, err
		}
	}
	return s, moved, nil
}

// Save copies the active session under name, overwriting any prior session
// with the same name.
func (m *Manager) Save(name string) (*Session, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	s, err := m.read(currentName)
	if err != nil {
		return nil, err
	}
	s.Name = name
	s.SavedAt = time.Now().UTC().Format(time.RFC3339)
	if err := m.writeSession(name, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Recall loads the named session and makes it the active one.
func (m *Manager) Recall(name string) (*Session, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	s, err := m.read(name)
	if err != nil {
		return nil, err
	}
	s.Cursor = clamp(s.Cursor, 0, len(s.Results)-1)
	if err := m.writeSession(currentName, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *Manager) read(name string) (*Session, error) {
	data, err := os.ReadFile(m.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			if name == currentName {
				return nil, ErrEmpty
			}
			return nil, fmt.Errorf("no session named %q", name)
		}
		return nil, fmt.Errorf("cannot read session %q: %w", name, err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid session file for %q: %w", name, err)
	}
	if len(s.Results) == 0 {
		if name == currentName {
			return nil, ErrEmpty
		}
		return &s, nil
	}
	s.Cursor = clamp(s.Cursor, 0, len(s.Results)-1)
	return &s, nil
}

func (m *Manager) writeSession(name string, s *Session) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("cannot create sessions dir %s: %w", m.dir, err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal session: %w", err)
	}
	if err := os.WriteFile(m.path(name), data, 0o644); err != nil {
		return fmt.Errorf("cannot write session %q: %w", name, err)
	}
	return nil
}

func (m *Manager) path(name string) string {
	return filepath.Join(m.dir, name+".json")
}

func validName(name string) error {
	if name == "" || name == currentName || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid session name %q", name)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
