package middleware

import (
	"errors"
	"net/http"

	"github.com/marshad7/taskflow/internal/application/account"
	"github.com/marshad7/taskflow/internal/application/ports"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
	"github.com/marshad7/taskflow/internal/infrastructure/session"
)

// SessionAuth resolves the session cookie to a user id and sets it in
// the context (see UserFromContext). Requests without a live session
// get a 401 before any handler runs.
type SessionAuth struct {
	sessions ports.SessionStore
}

func NewSessionAuth(sessions ports.SessionStore) *SessionAuth {
	return &SessionAuth{sessions: sessions}
}

func (m *SessionAuth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := session.TokenFromRequest(r)
		if token == "" {
			unauthorized(w)
			return
		}
		userID, err := m.sessions.Get(r.Context(), account.HashSessionToken(token))
		if err != nil {
			if errors.Is(err, domerrors.ErrSessionNotFound) {
				unauthorized(w)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), userID)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"not authenticated","code":"unauthorized"}`))
}
