package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/domain"
)

// TaskRepository mirrors the Postgres repository's semantics,
// including the completed_at derivation applied inside Update.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[domain.TaskID]*domain.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[domain.TaskID]*domain.Task)}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := cloneTask(task)
	r.tasks[t.ID] = t
	return nil
}

func (r *TaskRepository) List(ctx context.Context, owner domain.UserID, filter domain.TaskFilter) ([]*domain.Task, error) {
	r.mu.RLock()
	matched := r.match(owner, filter)
	r.mu.RUnlock()

	// Newest first; id breaks created_at ties for a stable total order.
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() > matched[j].ID.String()
	})

	if filter.Paginated() {
		if filter.Offset >= len(matched) {
			return []*domain.Task{}, nil
		}
		matched = matched[filter.Offset:]
		if filter.Limit < len(matched) {
			matched = matched[:filter.Limit]
		}
	}
	return matched, nil
}

func (r *TaskRepository) Count(ctx context.Context, owner domain.UserID, filter domain.TaskFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.match(owner, filter)), nil
}

func (r *TaskRepository) Update(ctx context.Context, owner domain.UserID, id domain.TaskID, patch domain.TaskPatch, now time.Time) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != owner {
		return nil, nil
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
		if t.Status == domain.StatusDone {
			if t.CompletedAt == nil {
				done := now
				t.CompletedAt = &done
			}
		} else {
			t.CompletedAt = nil
		}
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueDate.Set {
		if patch.DueDate.Value != nil {
			d := *patch.DueDate.Value
			t.DueDate = &d
		} else {
			t.DueDate = nil
		}
	}
	t.UpdatedAt = now
	return cloneTask(t), nil
}

func (r *TaskRepository) Delete(ctx context.Context, owner domain.UserID, id domain.TaskID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != owner {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

// match must be called with the lock held.
func (r *TaskRepository) match(owner domain.UserID, filter domain.TaskFilter) []*domain.Task {
	var out []*domain.Task
	q := strings.ToLower(filter.Query)
	for _, t := range r.tasks {
		if t.UserID != owner {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		out = append(out, cloneTask(t))
	}
	return out
}

func cloneTask(t *domain.Task) *domain.Task {
	out := *t
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	if t.CompletedAt != nil {
		c := *t.CompletedAt
		out.CompletedAt = &c
	}
	return &out
}

// Ensure TaskRepository implements ports.TaskRepository.
var _ ports.TaskRepository = (*TaskRepository)(nil)
