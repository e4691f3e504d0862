package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// MemoryStore implements Store in process memory. Identities are resolved
// through a UserFinder at read time, mirroring a join.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	users    UserFinder
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore(users UserFinder) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		users:    users,
	}
}

func (m *MemoryStore) Insert(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[s.ID]; exists {
		return ErrDuplicateSession
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *MemoryStore) FindByID(ctx context.Context, id string) (*Session, *User, error) {
	m.mu.RLock()
	s, exists := m.sessions[id]
	m.mu.RUnlock()

	if !exists {
		return nil, nil, ErrSessionNotFound
	}

	user, err := m.users.FindUser(ctx, s.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, errors.Join(ErrStore, err)
	}

	return &s, user, nil
}

func (m *MemoryStore) UpdateExpiry(_ context.Context, id string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, exists := m.sessions[id]; exists {
		s.ExpiresAt = expiresAt
		m.sessions[id] = s
	}
	return nil
}

func (m *MemoryStore) DeleteByID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

// Len returns the number of stored records, live or expired.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
