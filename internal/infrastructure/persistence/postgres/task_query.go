package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/marshad7/taskflow/internal/domain"
)

// Dynamic WHERE/SET building: clauses are assembled from fixed
// fragments and every value travels as a positional parameter. Raw
// input never lands in the query text.

func buildWhere(owner domain.UserID, filter domain.TaskFilter) (string, []any) {
	clauses := []string{"user_id = $1"}
	args := []any{owner.UUID}
	n := 2

	if filter.Status != nil {
		clauses = append(clauses, fmt.Sprintf("status = $%d", n))
		args = append(args, string(*filter.Status))
		n++
	}
	if filter.Priority != nil {
		clauses = append(clauses, fmt.Sprintf("priority = $%d", n))
		args = append(args, string(*filter.Priority))
		n++
	}
	if filter.Query != "" {
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
		args = append(args, "%"+filter.Query+"%")
		n++
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func buildListQuery(owner domain.UserID, filter domain.TaskFilter) (string, []any) {
	where, args := buildWhere(owner, filter)
	sql := fmt.Sprintf("SELECT %s FROM tasks %s ORDER BY created_at DESC, id DESC", taskColumns, where)
	if filter.Paginated() {
		n := len(args) + 1
		sql += fmt.Sprintf(" LIMIT $%d OFFSET $%d", n, n+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	return sql, args
}

func buildCountQuery(owner domain.UserID, filter domain.TaskFilter) (string, []any) {
	where, args := buildWhere(owner, filter)
	return "SELECT COUNT(*) FROM tasks " + where, args
}

func buildUpdateQuery(owner domain.UserID, id domain.TaskID, patch domain.TaskPatch, now time.Time) (string, []any) {
	var sets []string
	var args []any
	n := 1

	if patch.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", n))
		args = append(args, *patch.Title)
		n++
	}
	if patch.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", n))
		args = append(args, *patch.Description)
		n++
	}
	if patch.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", n))
		args = append(args, string(*patch.Status))
		n++
		if *patch.Status == domain.StatusDone {
			// First transition into done wins; later done writes keep it.
			sets = append(sets, fmt.Sprintf("completed_at = COALESCE(completed_at, $%d)", n))
			args = append(args, now)
			n++
		} else {
			sets = append(sets, "completed_at = NULL")
		}
	}
	if patch.Priority != nil {
		sets = append(sets, fmt.Sprintf("priority = $%d", n))
		args = append(args, string(*patch.Priority))
		n++
	}
	if patch.DueDate.Set {
		if patch.DueDate.Value != nil {
			sets = append(sets, fmt.Sprintf("due_date = $%d", n))
			args = append(args, dateArg(patch.DueDate.Value))
			n++
		} else {
			sets = append(sets, "due_date = NULL")
		}
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", n))
	args = append(args, now)
	n++

	sql := fmt.Sprintf("UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		strings.Join(sets, ", "), n, n+1, taskColumns)
	args = append(args, id.UUID, owner.UUID)
	return sql, args
}
