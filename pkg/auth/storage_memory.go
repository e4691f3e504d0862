package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage keeps accounts in process memory. Intended for development and tests.
type MemoryStorage struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]User
	byEmail map[string]uuid.UUID
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byID:    make(map[uuid.UUID]User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *MemoryStorage) CreateUser(_ context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[user.Email]; taken {
		return ErrEmailAlreadyExists
	}

	s.byID[user.ID] = cloneUser(*user)
	s.byEmail[user.Email] = user.ID
	return nil
}

func (s *MemoryStorage) GetUserByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := cloneUser(s.byID[id])
	return &u, nil
}

func (s *MemoryStorage) GetUserByID(_ context.Context, id uuid.UUID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	u = cloneUser(u)
	return &u, nil
}

func cloneUser(u User) User {
	u.PasswordHash = append([]byte(nil), u.PasswordHash...)
	return u
}
