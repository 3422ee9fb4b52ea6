package task

import (
	"context"

	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/domain"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
)

// Delete removes a task the caller owns.
type Delete struct {
	tasks ports.TaskRepository
}

func NewDelete(tasks ports.TaskRepository) *Delete {
	return &Delete{tasks: tasks}
}

func (uc *Delete) Execute(ctx context.Context, owner domain.UserID, rawID string) error {
	id, err := parseTaskID(rawID)
	if err != nil {
		return err
	}
	deleted, err := uc.tasks.Delete(ctx, owner, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domerrors.ErrTaskNotFound
	}
	return nil
}
