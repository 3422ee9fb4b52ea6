package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskID is a value object for task identity.
type TaskID struct{ uuid.UUID }

// NewTaskID creates a TaskID from a uuid.
func NewTaskID(id uuid.UUID) TaskID { return TaskID{UUID: id} }

// ParseTaskID parses the canonical string form.
func ParseTaskID(s string) (TaskID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TaskID{}, err
	}
	return TaskID{UUID: id}, nil
}

// String returns the canonical string form.
func (t TaskID) String() string { return t.UUID.String() }

// Status is the workflow state of a task.
type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// ParseStatus validates a raw status value at the boundary. Invalid
// values are rejected, never coerced.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusTodo, StatusDoing, StatusDone:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority validates a raw priority value at the boundary.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority %q", s)
}

// Task belongs to exactly one user; user_id is the sole authorization
// boundary. DueDate carries no time component. CompletedAt is non-nil
// iff Status was done at the last write, set on the first transition
// into done and preserved across further done updates.
type Task struct {
	ID          TaskID
	UserID      UserID
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// OptionalDate distinguishes "field not supplied" from "explicitly
// null". Set reports presence; a nil Value with Set clears the date.
type OptionalDate struct {
	Set   bool
	Value *time.Time
}

// TaskPatch is a partial update: nil pointer means "leave unchanged".
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	DueDate     OptionalDate
}

// IsEmpty reports whether the patch supplies no fields at all.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && !p.DueDate.Set
}

// TaskFilter is the conjunctive predicate for listing. A nil enum
// pointer or empty Query leaves that clause out. Limit <= 0 disables
// pagination.
type TaskFilter struct {
	Status   *Status
	Priority *Priority
	Query    string
	Limit    int
	Offset   int
}

// Paginated reports whether LIMIT/OFFSET apply.
func (f TaskFilter) Paginated() bool { return f.Limit > 0 }
