package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/domain"
)

const (
	taskColumns = `id, user_id, title, description, status, priority, due_date, created_at, updated_at, completed_at`

	createTaskSQL = `INSERT INTO tasks (id, user_id, title, description, status, priority, due_date, created_at, updated_at, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	deleteTaskSQL = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	_, err := r.pool.Exec(ctx, createTaskSQL,
		task.ID.UUID,
		task.UserID.UUID,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		dateArg(task.DueDate),
		task.CreatedAt,
		task.UpdatedAt,
		timestampArg(task.CompletedAt),
	)
	return err
}

func (r *TaskRepository) List(ctx context.Context, owner domain.UserID, filter domain.TaskFilter) ([]*domain.Task, error) {
	sql, args := buildListQuery(owner, filter)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Count(ctx context.Context, owner domain.UserID, filter domain.TaskFilter) (int, error) {
	sql, args := buildCountQuery(owner, filter)
	var total int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Update applies the patch and the completed_at derivation in one
// statement; the owner predicate rides in the WHERE clause so an
// unowned id updates nothing.
func (r *TaskRepository) Update(ctx context.Context, owner domain.UserID, id domain.TaskID, patch domain.TaskPatch, now time.Time) (*domain.Task, error) {
	sql, args := buildUpdateQuery(owner, id, patch, now)
	t, err := scanTask(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, owner domain.UserID, id domain.TaskID) (bool, error) {
	tag, err := r.pool.Exec(ctx, deleteTaskSQL, id.UUID, owner.UUID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		t           domain.Task
		status      string
		priority    string
		dueDate     pgtype.Date
		completedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&t.ID.UUID,
		&t.UserID.UUID,
		&t.Title,
		&t.Description,
		&status,
		&priority,
		&dueDate,
		&t.CreatedAt,
		&t.UpdatedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Status = domain.Status(status)
	t.Priority = domain.Priority(priority)
	if dueDate.Valid {
		d := dueDate.Time
		t.DueDate = &d
	}
	if completedAt.Valid {
		c := completedAt.Time
		t.CompletedAt = &c
	}
	return &t, nil
}

func dateArg(d *time.Time) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *d, Valid: true}
}

func timestampArg(ts *time.Time) pgtype.Timestamptz {
	if ts == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *ts, Valid: true}
}

// Ensure TaskRepository implements ports.TaskRepository.
var _ ports.TaskRepository = (*TaskRepository)(nil)
