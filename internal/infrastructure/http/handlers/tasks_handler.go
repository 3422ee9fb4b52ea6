package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/marshad7/taskflow/internal/application/task"
	"github.com/marshad7/taskflow/internal/domain"
	"github.com/marshad7/taskflow/internal/infrastructure/http/middleware"
)

// TasksHandler serves /tasks/*. All routes sit behind the session
// middleware, so the owner id is always in the context.
type TasksHandler struct {
	create *task.Create
	list   *task.List
	update *task.Update
	delete *task.Delete
	log    zerolog.Logger
}

func NewTasksHandler(create *task.Create, list *task.List, update *task.Update, delete_ *task.Delete, log zerolog.Logger) *TasksHandler {
	return &TasksHandler{create: create, list: list, update: update, delete: delete_, log: log}
}

// taskResponse is the public task projection. Nullable fields encode
// as explicit null, and due_date is a bare calendar date.
type taskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *string    `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	resp := taskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CompletedAt: t.CompletedAt,
	}
	if t.DueDate != nil {
		d := t.DueDate.Format("2006-01-02")
		resp.DueDate = &d
	}
	return resp
}

func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "not authenticated")
		return
	}
	q := r.URL.Query()
	input := task.ListInput{
		Owner:    owner,
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
		Query:    q.Get("q"),
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "limit must be an integer")
			return
		}
		input.Limit = &n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "offset must be an integer")
			return
		}
		input.Offset = &n
	}

	result, err := h.list.Execute(r.Context(), input)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	items := make([]taskResponse, 0, len(result.Tasks))
	for _, t := range result.Tasks {
		items = append(items, toTaskResponse(t))
	}
	body := map[string]interface{}{"tasks": items}
	if result.Page != nil {
		body["page"] = map[string]int{
			"limit":  result.Page.Limit,
			"offset": result.Page.Offset,
			"total":  result.Page.Total,
		}
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "not authenticated")
		return
	}
	var body struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
		Priority    *string `json:"priority"`
		DueDate     *string `json:"due_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	created, err := h.create.Execute(r.Context(), task.CreateInput{
		Owner:       owner,
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		Priority:    body.Priority,
		DueDate:     body.DueDate,
	})
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"task": toTaskResponse(created)})
}

func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "not authenticated")
		return
	}
	// due_date is tri-state: absent leaves it, null clears it, a
	// string sets it. RawMessage keeps absent and null apart.
	var body struct {
		Title       *string         `json:"title"`
		Description *string         `json:"description"`
		Status      *string         `json:"status"`
		Priority    *string         `json:"priority"`
		DueDate     json.RawMessage `json:"due_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	input := task.UpdateInput{
		Owner:       owner,
		ID:          chi.URLParam(r, "id"),
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		Priority:    body.Priority,
	}
	if body.DueDate != nil {
		input.DueDate.Set = true
		if !bytes.Equal(bytes.TrimSpace(body.DueDate), []byte("null")) {
			var s string
			if err := json.Unmarshal(body.DueDate, &s); err != nil {
				writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "due_date must be a string or null")
				return
			}
			input.DueDate.Value = &s
		}
	}

	updated, err := h.update.Execute(r.Context(), input)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"task": toTaskResponse(updated)})
}

func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "not authenticated")
		return
	}
	if err := h.delete.Execute(r.Context(), owner, chi.URLParam(r, "id")); err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
