package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/domain"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
)

const (
	createSessionSQL = `INSERT INTO sessions (token_hash, user_id, expires_at, created_at) VALUES ($1, $2, $3, NOW())`
	getSessionSQL    = `SELECT user_id FROM sessions WHERE token_hash = $1 AND expires_at > NOW()`
	deleteSessionSQL = `DELETE FROM sessions WHERE token_hash = $1`
	reapSessionsSQL  = `DELETE FROM sessions WHERE expires_at <= NOW()`
)

// SessionStore keeps sessions in Postgres, keyed by the SHA-256 of
// the opaque token.
type SessionStore struct {
	pool *pgxpool.Pool
}

func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

func (s *SessionStore) Create(ctx context.Context, tokenHash string, userID domain.UserID, expiresAt time.Time) error {
	_, err := s.pool.Exec(ctx, createSessionSQL, tokenHash, userID.UUID, expiresAt)
	return err
}

func (s *SessionStore) Get(ctx context.Context, tokenHash string) (domain.UserID, error) {
	var id domain.UserID
	err := s.pool.QueryRow(ctx, getSessionSQL, tokenHash).Scan(&id.UUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserID{}, domerrors.ErrSessionNotFound
		}
		return domain.UserID{}, err
	}
	return id, nil
}

func (s *SessionStore) Delete(ctx context.Context, tokenHash string) error {
	_, err := s.pool.Exec(ctx, deleteSessionSQL, tokenHash)
	return err
}

// Reap removes expired rows. Expired sessions never resolve (the
// lookup filters on expiry); this just keeps the table small.
func (s *SessionStore) Reap(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, reapSessionsSQL)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Ensure SessionStore implements ports.SessionStore.
var _ ports.SessionStore = (*SessionStore)(nil)
