package ports

import (
	"context"
	"time"

	"github.com/marshad7/taskflow/internal/domain"
)

// UserRepository defines persistence for accounts. Lookups return
// (nil, nil) when no row matches.
type UserRepository interface {
	// Create inserts the user; returns domain/errors.ErrEmailTaken when
	// the normalized email is already registered.
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}

// TaskRepository defines owner-scoped persistence for tasks. Every
// query and mutation carries the owner predicate down into the store
// so ownership races are closed at the data-access layer.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	// List returns tasks matching the filter, newest first (created_at
	// DESC, id DESC as tie-break).
	List(ctx context.Context, owner domain.UserID, filter domain.TaskFilter) ([]*domain.Task, error)
	// Count returns the number of rows matching the filter ignoring
	// Limit/Offset.
	Count(ctx context.Context, owner domain.UserID, filter domain.TaskFilter) (int, error)
	// Update applies the patch atomically, refreshing updated_at and
	// deriving completed_at from any status change. Returns (nil, nil)
	// when no row matches id+owner.
	Update(ctx context.Context, owner domain.UserID, id domain.TaskID, patch domain.TaskPatch, now time.Time) (*domain.Task, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, owner domain.UserID, id domain.TaskID) (bool, error)
}

// SessionStore defines storage for server-side sessions (Postgres,
// Redis, or memory). Tokens are stored hashed; the opaque token never
// touches the store.
type SessionStore interface {
	Create(ctx context.Context, tokenHash string, userID domain.UserID, expiresAt time.Time) error
	// Get resolves a live session; expired or unknown hashes return
	// domain/errors.ErrSessionNotFound.
	Get(ctx context.Context, tokenHash string) (domain.UserID, error)
	// Delete is idempotent; deleting an absent session is not an error.
	Delete(ctx context.Context, tokenHash string) error
}
