package task

import (
	"context"
	"time"

	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/domain"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
)

// OptionalString is a tri-state field: absent, explicitly null, or a
// value. Used for due_date where null means "clear it".
type OptionalString struct {
	Set   bool
	Value *string
}

// UpdateInput is a partial update: nil pointer means the field was
// not in the request and stays unchanged.
type UpdateInput struct {
	Owner       domain.UserID
	ID          string
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     OptionalString
}

// Update applies a partial update to a task the caller owns. A miss
// on id+owner is reported as not-found either way, so callers cannot
// probe for other users' task ids.
type Update struct {
	tasks ports.TaskRepository
}

func NewUpdate(tasks ports.TaskRepository) *Update {
	return &Update{tasks: tasks}
}

func (uc *Update) Execute(ctx context.Context, input UpdateInput) (*domain.Task, error) {
	id, err := parseTaskID(input.ID)
	if err != nil {
		return nil, err
	}

	var patch domain.TaskPatch
	if input.Title != nil {
		title, err := parseTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		patch.Title = &title
	}
	if input.Description != nil {
		description, err := parseDescription(*input.Description)
		if err != nil {
			return nil, err
		}
		patch.Description = &description
	}
	if input.Status != nil {
		status, err := parseStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		patch.Status = &status
	}
	if input.Priority != nil {
		priority, err := parsePriority(*input.Priority)
		if err != nil {
			return nil, err
		}
		patch.Priority = &priority
	}
	if input.DueDate.Set {
		patch.DueDate.Set = true
		if input.DueDate.Value != nil {
			d, err := parseDueDate(*input.DueDate.Value)
			if err != nil {
				return nil, err
			}
			patch.DueDate.Value = &d
		}
	}
	if patch.IsEmpty() {
		return nil, domerrors.Validationf("no fields to update")
	}

	updated, err := uc.tasks.Update(ctx, input.Owner, id, patch, time.Now())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domerrors.ErrTaskNotFound
	}
	return updated, nil
}
