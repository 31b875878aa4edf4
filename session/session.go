// Package session provides the in-memory session layer the shell mounts
// alongside the router. Sessions are identified by UUID and expire after a
// period of inactivity; nothing is persisted.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lanterntools/lantern/errors"
	"github.com/sirupsen/logrus"
)

// DefaultTTL is the idle lifetime of a session when none is configured.
const DefaultTTL = 30 * time.Minute

// Session is a single user session. Values carries small per-session state
// such as the last visited route.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
	Values    map[string]string
}

// Manager owns all live sessions. Expired sessions are reaped lazily on
// access rather than by a background goroutine.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
	log      *logrus.Entry

	// now is swapped in tests to control expiry.
	now func() time.Time
}

// NewManager creates a session manager. A non-positive ttl falls back to
// DefaultTTL.
func NewManager(ttl time.Duration, log *logrus.Entry) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]*Session),
		log:      log,
		now:      time.Now,
	}
}

// Start issues a new session.
func (m *Manager) Start() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
		Values:    make(map[string]string),
	}
	m.sessions[s.ID] = s
	m.log.WithField("session", s.ID).Debug("Session started")
	return s
}

// Get returns the session with the given ID. An expired session is removed
// and reported as ErrCodeSessionExpired.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.SessionNotFound(id)
	}
	if m.now().After(s.ExpiresAt) {
		delete(m.sessions, id)
		m.log.WithField("session", id).Debug("Session expired")
		return nil, errors.SessionExpired(id)
	}
	return s, nil
}

// Touch extends the session's lifetime by the manager's TTL.
func (m *Manager) Touch(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return errors.SessionNotFound(id)
	}
	if m.now().After(s.ExpiresAt) {
		delete(m.sessions, id)
		return errors.SessionExpired(id)
	}
	s.ExpiresAt = m.now().Add(m.ttl)
	return nil
}

// End removes a session. Ending an unknown session is a no-op.
func (m *Manager) End(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		m.log.WithField("session", id).Debug("Session ended")
	}
}

// Count reaps expired sessions and returns the number still live.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
	return len(m.sessions)
}
