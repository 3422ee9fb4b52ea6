package account

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/domain"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
)

type RegisterInput struct {
	Email    string
	Password string
}

type RegisterResult struct {
	User    *domain.User
	Session *Session
}

// Register creates an account and establishes a session for it.
type Register struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	hasher   ports.PasswordHasher
	ttl      time.Duration
}

func NewRegister(users ports.UserRepository, sessions ports.SessionStore, hasher ports.PasswordHasher, ttl time.Duration) *Register {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Register{users: users, sessions: sessions, hasher: hasher, ttl: ttl}
}

func (uc *Register) Execute(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	email := NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domerrors.Validationf("email and password are required")
	}
	if len(email) > MaxEmailLength || !emailRegex.MatchString(email) {
		return nil, domerrors.Validationf("invalid email address")
	}
	if len(input.Password) < MinPasswordLength {
		return nil, domerrors.Validationf("password must be at least %d characters", MinPasswordLength)
	}
	if len(input.Password) > MaxPasswordLength {
		return nil, domerrors.Validationf("password must be at most %d characters", MaxPasswordLength)
	}

	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrEmailTaken
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	// The unique index still closes the pre-check race; the repository
	// maps that violation back to ErrEmailTaken.
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	session, err := establishSession(ctx, uc.sessions, user.ID, uc.ttl)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{User: user, Session: session}, nil
}
