package account

import (
	"context"
	"errors"

	"github.com/marshad7/taskflow/internal/application/ports"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
)

// Logout destroys a session. Idempotent: an absent or already-dead
// token succeeds the same as a live one.
type Logout struct {
	sessions ports.SessionStore
}

func NewLogout(sessions ports.SessionStore) *Logout {
	return &Logout{sessions: sessions}
}

func (uc *Logout) Execute(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := uc.sessions.Delete(ctx, HashSessionToken(token))
	if errors.Is(err, domerrors.ErrSessionNotFound) {
		return nil
	}
	return err
}
