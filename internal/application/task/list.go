package task

import (
	"context"

	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/domain"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
)

// ListInput carries raw filter values; enum filters are validated
// here and rejected when invalid rather than silently dropped. Limit
// and Offset are nil when the caller did not ask for pagination.
type ListInput struct {
	Owner    domain.UserID
	Status   string
	Priority string
	Query    string
	Limit    *int
	Offset   *int
}

// Page reports the window applied and the total match count ignoring
// that window, so clients can compute page counts.
type Page struct {
	Limit  int
	Offset int
	Total  int
}

type ListResult struct {
	Tasks []*domain.Task
	Page  *Page
}

// List returns the caller's tasks under a conjunctive filter, newest
// first.
type List struct {
	tasks ports.TaskRepository
}

func NewList(tasks ports.TaskRepository) *List {
	return &List{tasks: tasks}
}

func (uc *List) Execute(ctx context.Context, input ListInput) (*ListResult, error) {
	var filter domain.TaskFilter
	if input.Status != "" {
		status, err := parseStatus(input.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}
	if input.Priority != "" {
		priority, err := parsePriority(input.Priority)
		if err != nil {
			return nil, err
		}
		filter.Priority = &priority
	}
	if input.Query != "" {
		if len(input.Query) > MaxSearchLength {
			return nil, domerrors.Validationf("q must be at most %d characters", MaxSearchLength)
		}
		filter.Query = input.Query
	}

	paginated := input.Limit != nil || input.Offset != nil
	if paginated {
		filter.Limit = DefaultPageLimit
		if input.Limit != nil {
			if *input.Limit < 1 || *input.Limit > MaxPageLimit {
				return nil, domerrors.Validationf("limit must be between 1 and %d", MaxPageLimit)
			}
			filter.Limit = *input.Limit
		}
		if input.Offset != nil {
			if *input.Offset < 0 || *input.Offset > MaxPageOffset {
				return nil, domerrors.Validationf("offset must be between 0 and %d", MaxPageOffset)
			}
			filter.Offset = *input.Offset
		}
	}

	tasks, err := uc.tasks.List(ctx, input.Owner, filter)
	if err != nil {
		return nil, err
	}
	result := &ListResult{Tasks: tasks}
	if paginated {
		total, err := uc.tasks.Count(ctx, input.Owner, filter)
		if err != nil {
			return nil, err
		}
		result.Page = &Page{Limit: filter.Limit, Offset: filter.Offset, Total: total}
	}
	return result, nil
}
