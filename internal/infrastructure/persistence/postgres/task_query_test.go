package postgres

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/marshad7/taskflow/internal/domain"
)

func TestBuildListQueryOwnerOnly(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	sql, args := buildListQuery(owner, domain.TaskFilter{})
	want := "SELECT " + taskColumns + " FROM tasks WHERE user_id = $1 ORDER BY created_at DESC, id DESC"
	if sql != want {
		t.Errorf("sql = %q\nwant  %q", sql, want)
	}
	if len(args) != 1 || args[0] != owner.UUID {
		t.Errorf("args = %v", args)
	}
}

func TestBuildListQueryAllFilters(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	status := domain.StatusTodo
	priority := domain.PriorityHigh
	sql, args := buildListQuery(owner, domain.TaskFilter{
		Status:   &status,
		Priority: &priority,
		Query:    "report",
		Limit:    10,
		Offset:   20,
	})
	want := "SELECT " + taskColumns + " FROM tasks WHERE user_id = $1 AND status = $2 AND priority = $3 AND (title ILIKE $4 OR description ILIKE $4) ORDER BY created_at DESC, id DESC LIMIT $5 OFFSET $6"
	if sql != want {
		t.Errorf("sql = %q\nwant  %q", sql, want)
	}
	wantArgs := []any{owner.UUID, "todo", "high", "%report%", 10, 20}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestBuildCountQueryIgnoresPagination(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	status := domain.StatusDone
	sql, args := buildCountQuery(owner, domain.TaskFilter{Status: &status, Limit: 10, Offset: 20})
	want := "SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND status = $2"
	if sql != want {
		t.Errorf("sql = %q\nwant  %q", sql, want)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, LIMIT/OFFSET must not leak into the count", args)
	}
}

func TestBuildUpdateQueryDoneDerivation(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	id := domain.NewTaskID(uuid.New())
	now := time.Now()
	status := domain.StatusDone
	sql, args := buildUpdateQuery(owner, id, domain.TaskPatch{Status: &status}, now)

	want := "UPDATE tasks SET status = $1, completed_at = COALESCE(completed_at, $2), updated_at = $3 WHERE id = $4 AND user_id = $5 RETURNING " + taskColumns
	if sql != want {
		t.Errorf("sql = %q\nwant  %q", sql, want)
	}
	if len(args) != 5 || args[0] != "done" {
		t.Errorf("args = %v", args)
	}
}

func TestBuildUpdateQueryLeavingDoneClearsCompletedAt(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	id := domain.NewTaskID(uuid.New())
	status := domain.StatusDoing
	sql, _ := buildUpdateQuery(owner, id, domain.TaskPatch{Status: &status}, time.Now())

	want := "UPDATE tasks SET status = $1, completed_at = NULL, updated_at = $2 WHERE id = $3 AND user_id = $4 RETURNING " + taskColumns
	if sql != want {
		t.Errorf("sql = %q\nwant  %q", sql, want)
	}
}

func TestBuildUpdateQueryFullPatch(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	id := domain.NewTaskID(uuid.New())
	now := time.Now()
	title := "T"
	description := "D"
	priority := domain.PriorityLow
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	sql, args := buildUpdateQuery(owner, id, domain.TaskPatch{
		Title:       &title,
		Description: &description,
		Priority:    &priority,
		DueDate:     domain.OptionalDate{Set: true, Value: &due},
	}, now)

	want := "UPDATE tasks SET title = $1, description = $2, priority = $3, due_date = $4, updated_at = $5 WHERE id = $6 AND user_id = $7 RETURNING " + taskColumns
	if sql != want {
		t.Errorf("sql = %q\nwant  %q", sql, want)
	}
	if len(args) != 7 {
		t.Errorf("args = %v", args)
	}
}

func TestBuildUpdateQueryNullDueDate(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	id := domain.NewTaskID(uuid.New())
	sql, args := buildUpdateQuery(owner, id, domain.TaskPatch{DueDate: domain.OptionalDate{Set: true}}, time.Now())

	want := "UPDATE tasks SET due_date = NULL, updated_at = $1 WHERE id = $2 AND user_id = $3 RETURNING " + taskColumns
	if sql != want {
		t.Errorf("sql = %q\nwant  %q", sql, want)
	}
	if len(args) != 3 {
		t.Errorf("args = %v", args)
	}
}
