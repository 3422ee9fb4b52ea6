package account

import (
	"context"
	"time"

	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/domain"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User    *domain.User
	Session *Session
}

// Login authenticates a credential pair and establishes a session.
// Unknown email and wrong password are distinct failures: the client
// can offer "register instead" on ErrAccountNotFound. That leaks
// account existence and is an accepted product tradeoff.
type Login struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	hasher   ports.PasswordHasher
	ttl      time.Duration
}

func NewLogin(users ports.UserRepository, sessions ports.SessionStore, hasher ports.PasswordHasher, ttl time.Duration) *Login {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Login{users: users, sessions: sessions, hasher: hasher, ttl: ttl}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domerrors.Validationf("email and password are required")
	}
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrAccountNotFound
	}
	if !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	session, err := establishSession(ctx, uc.sessions, user.ID, uc.ttl)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Session: session}, nil
}
