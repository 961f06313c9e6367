package session

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Gauge is told how many sessions are live after each change.
type Gauge interface {
	SetActiveSessions(n int)
}

// Manager owns every live session.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	gauge    Gauge
}

// NewManager creates a new Manager. gauge may be nil.
func NewManager(gauge Gauge) *Manager {
	return &Manager{sessions: make(map[string]*Session), gauge: gauge}
}

// Create starts a session with default preferences.
func (m *Manager) Create() *Session {
	s := newSession(uuid.NewString())

	m.mu.Lock()
	m.sessions[s.id] = s
	n := len(m.sessions)
	m.mu.Unlock()

	m.report(n)
	log.Printf("Created session %s", s.id)
	return s
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete removes the session with id.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	if _, ok := m.sessions[id]; !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()

	m.report(n)
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) report(n int) {
	if m.gauge != nil {
		m.gauge.SetActiveSessions(n)
	}
}
