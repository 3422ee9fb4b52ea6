package memory

import (
	"context"
	"sync"
	"time"

	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/domain"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
)

type sessionEntry struct {
	userID    domain.UserID
	expiresAt time.Time
}

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]sessionEntry)}
}

func (s *SessionStore) Create(ctx context.Context, tokenHash string, userID domain.UserID, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[tokenHash] = sessionEntry{userID: userID, expiresAt: expiresAt}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, tokenHash string) (domain.UserID, error) {
	s.mu.RLock()
	entry, ok := s.sessions[tokenHash]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return domain.UserID{}, domerrors.ErrSessionNotFound
	}
	return entry.userID, nil
}

func (s *SessionStore) Delete(ctx context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenHash)
	return nil
}

// Ensure SessionStore implements ports.SessionStore.
var _ ports.SessionStore = (*SessionStore)(nil)
