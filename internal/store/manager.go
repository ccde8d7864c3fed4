package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/axox-storefront/internal/common"
)

// DefaultSessionTTL is how long an untouched session survives.
const DefaultSessionTTL = 2 * time.Hour

// Manager tracks live sessions keyed by an opaque id.
type Manager struct {
	logger   *slog.Logger
	sessions map[string]*Store
	ttl      time.Duration
	mu       sync.RWMutex
}

// NewManager creates a session manager. A zero ttl uses DefaultSessionTTL.
func NewManager(ttl time.Duration, logger *slog.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		sessions: make(map[string]*Store),
		ttl:      ttl,
		logger:   logger,
	}
}

// Create starts a new session and returns its id.
func (m *Manager) Create() (string, *Store) {
	id := uuid.NewString()
	s := New()

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	m.logger.Debug("session created", "session_id", id)
	return id, s
}

// Get returns the session for id and marks it active, so reads keep a
// session alive as well as writes.
func (m *Manager) Get(id string) (*Store, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrSessionNotFound, id)
	}

	s.mu.Lock()
	s.touch()
	s.mu.Unlock()
	return s, nil
}

// End discards the session for id.
func (m *Manager) End(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than the ttl and returns how many
// were removed.
func (m *Manager) Sweep() int {
	return m.sweepAt(time.Now())
}

func (m *Manager) sweepAt(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if now.Sub(s.LastTouched()) > m.ttl {
			delete(m.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		m.logger.Info("expired idle sessions", "removed", removed, "remaining", len(m.sessions))
	}
	return removed
}
