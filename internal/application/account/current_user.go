package account

import (
	"context"

	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/domain"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
)

// CurrentUser resolves the authenticated identity to its account row.
// A session whose user no longer exists reads as unauthenticated.
type CurrentUser struct {
	users ports.UserRepository
}

func NewCurrentUser(users ports.UserRepository) *CurrentUser {
	return &CurrentUser{users: users}
}

func (uc *CurrentUser) Execute(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUnauthenticated
	}
	return user, nil
}
