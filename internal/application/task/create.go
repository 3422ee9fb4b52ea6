package task

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/domain"
)

// CreateInput uses nil pointers for fields the request left out, so
// defaults apply only on true omission.
type CreateInput struct {
	Owner       domain.UserID
	Title       string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *string
}

// Create inserts a task owned by the caller.
type Create struct {
	tasks ports.TaskRepository
}

func NewCreate(tasks ports.TaskRepository) *Create {
	return &Create{tasks: tasks}
}

func (uc *Create) Execute(ctx context.Context, input CreateInput) (*domain.Task, error) {
	title, err := parseTitle(input.Title)
	if err != nil {
		return nil, err
	}
	description := ""
	if input.Description != nil {
		if description, err = parseDescription(*input.Description); err != nil {
			return nil, err
		}
	}
	status := domain.StatusTodo
	if input.Status != nil {
		if status, err = parseStatus(*input.Status); err != nil {
			return nil, err
		}
	}
	priority := domain.PriorityMedium
	if input.Priority != nil {
		if priority, err = parsePriority(*input.Priority); err != nil {
			return nil, err
		}
	}
	var dueDate *time.Time
	if input.DueDate != nil {
		d, err := parseDueDate(*input.DueDate)
		if err != nil {
			return nil, err
		}
		dueDate = &d
	}

	now := time.Now()
	t := &domain.Task{
		ID:          domain.NewTaskID(uuid.New()),
		UserID:      input.Owner,
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if status == domain.StatusDone {
		t.CompletedAt = &now
	}
	if err := uc.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
