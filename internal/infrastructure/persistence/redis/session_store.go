// Package redis keeps sessions in Redis when REDIS_URL is set, so
// session reads skip Postgres and expiry is handled by key TTL.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/domain"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
)

const keyPrefix = "session:"

type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Create(ctx context.Context, tokenHash string, userID domain.UserID, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, keyPrefix+tokenHash, userID.String(), ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, tokenHash string) (domain.UserID, error) {
	val, err := s.client.Get(ctx, keyPrefix+tokenHash).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.UserID{}, domerrors.ErrSessionNotFound
		}
		return domain.UserID{}, err
	}
	id, err := uuid.Parse(val)
	if err != nil {
		// A corrupt value reads as no session rather than a 500.
		return domain.UserID{}, domerrors.ErrSessionNotFound
	}
	return domain.NewUserID(id), nil
}

func (s *SessionStore) Delete(ctx context.Context, tokenHash string) error {
	return s.client.Del(ctx, keyPrefix+tokenHash).Err()
}

// Ensure SessionStore implements ports.SessionStore.
var _ ports.SessionStore = (*SessionStore)(nil)
