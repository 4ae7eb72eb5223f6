package userstore

import (
	"context"
	"strings"
	"sync"

	"github.com/safeglow/backend/internal/domain"
)

// MemoryStore keeps users in process memory. Data is lost on restart.
type MemoryStore struct {
	byID    map[string]*domain.User
	byEmail map[string]string
	mutex   sync.RWMutex
}

// NewMemoryStore creates an empty in-memory user store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

// Create stores a new user, rejecting duplicate emails
func (s *MemoryStore) Create(ctx context.Context, user *domain.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	email := normalizeEmail(user.Email)
	if _, taken := s.byEmail[email]; taken {
		return domain.ErrEmailTaken
	}

	stored := *user
	s.byID[user.ID] = &stored
	s.byEmail[email] = user.ID
	return nil
}

// FindByEmail looks a user up by email, case-insensitively
func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user := *s.byID[id]
	return &user, nil
}

// FindByID looks a user up by ID
func (s *MemoryStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stored, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user := *stored
	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
