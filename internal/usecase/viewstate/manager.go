package viewstate

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avamus/visionboard/internal/domain/entities"
)

// Manager tracks live dashboard sessions and expires idle ones.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	sessionTTL time.Duration
	savedTTL   time.Duration
}

// NewManager creates a session manager. Idle sessions are swept every
// few minutes, mirroring the member's navigation away from the page.
func NewManager(sessionTTL, savedTTL time.Duration) *Manager {
	m := &Manager{
		sessions:   make(map[string]*Session),
		sessionTTL: sessionTTL,
		savedTTL:   savedTTL,
	}
	go m.sweepExpired()
	return m
}

// Create opens a new session over a member's call snapshot and returns
// it with a fresh id.
func (m *Manager) Create(memberID string, snapshot []*entities.CallLog) *Session {
	s := NewSession(uuid.NewString(), snapshot, m.savedTTL)
	s.MemberID = memberID

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get returns a session by id, refreshing its idle timer.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		s.mu.Lock()
		s.LastUsed = time.Now()
		s.mu.Unlock()
	}
	return s, ok
}

// Delete removes a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// sweepExpired periodically drops sessions idle past the TTL.
func (m *Manager) sweepExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-m.sessionTTL)
		m.mu.Lock()
		for id, s := range m.sessions {
			s.mu.Lock()
			idle := s.LastUsed.Before(cutoff)
			s.mu.Unlock()
			if idle {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}
