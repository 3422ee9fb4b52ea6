package task

import (
	"strings"
	"time"

	"github.com/marshad7/taskflow/internal/domain"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
)

// Field bounds, matched by the API docs.
const (
	MaxTitleLength       = 120
	MaxDescriptionLength = 2000
	MaxSearchLength      = 200

	DefaultPageLimit = 10
	MaxPageLimit     = 50
	MaxPageOffset    = 100000
)

// dueDateLayout is a calendar date with no time component.
const dueDateLayout = "2006-01-02"

func parseTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", domerrors.Validationf("title is required")
	}
	if len(title) > MaxTitleLength {
		return "", domerrors.Validationf("title must be at most %d characters", MaxTitleLength)
	}
	return title, nil
}

func parseDescription(raw string) (string, error) {
	if len(raw) > MaxDescriptionLength {
		return "", domerrors.Validationf("description must be at most %d characters", MaxDescriptionLength)
	}
	return raw, nil
}

func parseStatus(raw string) (domain.Status, error) {
	status, err := domain.ParseStatus(raw)
	if err != nil {
		return "", domerrors.Validationf("status must be one of todo, doing, done")
	}
	return status, nil
}

func parsePriority(raw string) (domain.Priority, error) {
	priority, err := domain.ParsePriority(raw)
	if err != nil {
		return "", domerrors.Validationf("priority must be one of low, medium, high")
	}
	return priority, nil
}

func parseDueDate(raw string) (time.Time, error) {
	d, err := time.Parse(dueDateLayout, raw)
	if err != nil {
		return time.Time{}, domerrors.Validationf("due_date must be a valid YYYY-MM-DD date")
	}
	return d, nil
}

func parseTaskID(raw string) (domain.TaskID, error) {
	id, err := domain.ParseTaskID(raw)
	if err != nil {
		return domain.TaskID{}, domerrors.Validationf("invalid task id")
	}
	return id, nil
}
