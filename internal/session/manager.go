package session

import (
	"context"
	"sync"
	"time"

	"eaglegym/internal/content"
	"eaglegym/internal/logger"
	"eaglegym/internal/metrics"
	"eaglegym/internal/selection"

	"github.com/google/uuid"
)

// Session is one visitor's branch selection and the content reader bound to it.
type Session struct {
	ID        uuid.UUID
	Selection *selection.State
	Content   content.Service

	lastSeen time.Time
}

// Factory builds the per-visitor state for a new session.
type Factory func() (*selection.State, content.Service)

// Manager keeps sessions in memory and drops the ones idle longer than ttl.
type Manager struct {
	secret  string
	ttl     time.Duration
	factory Factory

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewManager(secret string, ttl time.Duration, factory Factory) *Manager {
	return &Manager{
		secret:   secret,
		ttl:      ttl,
		factory:  factory,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Run evicts idle sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := m.Evict(now); n > 0 {
				logger.Debug("Evicted idle sessions", "count", n)
			}
		}
	}
}

func (m *Manager) Evict(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			delete(m.sessions, id)
			evicted++
		}
	}
	metrics.SetActiveSessions(len(m.sessions))
	return evicted
}

// Create starts a session on the default gym and branch. Nothing is read
// from the store until the visitor opens a branch.
func (m *Manager) Create() (*Session, string, error) {
	id := uuid.New()
	token, err := GenerateToken(id, m.secret, m.ttl)
	if err != nil {
		return nil, "", err
	}

	state, reader := m.factory()
	state.Reset()

	s := &Session{
		ID:        id,
		Selection: state,
		Content:   reader,
		lastSeen:  time.Now(),
	}

	m.mu.Lock()
	m.sessions[id] = s
	metrics.SetActiveSessions(len(m.sessions))
	m.mu.Unlock()

	return s, token, nil
}

// Lookup resolves a cookie token to a live session and reports when the
// token itself expires.
func (m *Manager) Lookup(token string) (*Session, time.Time, error) {
	id, claims, err := ValidateToken(token, m.secret)
	if err != nil {
		return nil, time.Time{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, time.Time{}, ErrSessionExpired
	}
	s.lastSeen = time.Now()
	return s, claims.ExpiresAt.Time, nil
}

// Renew issues a fresh token for s.
func (m *Manager) Renew(s *Session) (string, error) {
	return GenerateToken(s.ID, m.secret, m.ttl)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}
