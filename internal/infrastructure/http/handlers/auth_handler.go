package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/marshad7/taskflow/internal/application/account"
	"github.com/marshad7/taskflow/internal/infrastructure/http/middleware"
	"github.com/marshad7/taskflow/internal/infrastructure/session"
)

// AuthHandler serves /auth/*: register, login, logout, me.
type AuthHandler struct {
	register      *account.Register
	login         *account.Login
	logout        *account.Logout
	currentUser   *account.CurrentUser
	secureCookies bool
	validate      *validator.Validate
	log           zerolog.Logger
}

func NewAuthHandler(register *account.Register, login *account.Login, logout *account.Logout, currentUser *account.CurrentUser, secureCookies bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register:      register,
		login:         login,
		logout:        logout,
		currentUser:   currentUser,
		secureCookies: secureCookies,
		validate:      validator.New(),
		log:           log,
	}
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,max=254"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	result, err := h.register.Execute(r.Context(), account.RegisterInput{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		middleware.RecordAuthAttempt("register", false)
		writeDomainErr(w, h.log, err)
		return
	}
	middleware.RecordAuthAttempt("register", true)
	http.SetCookie(w, session.NewCookie(result.Session.Token, result.Session.ExpiresAt, h.secureCookies))
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"user": userResponse{ID: result.User.ID.String(), Email: result.User.Email},
	})
}

// Login distinguishes 404 (no account, client may offer registration)
// from 401 (wrong password). The account-existence leak is accepted.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,max=254"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	result, err := h.login.Execute(r.Context(), account.LoginInput{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		middleware.RecordAuthAttempt("login", false)
		writeDomainErr(w, h.log, err)
		return
	}
	middleware.RecordAuthAttempt("login", true)
	http.SetCookie(w, session.NewCookie(result.Session.Token, result.Session.ExpiresAt, h.secureCookies))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": userResponse{ID: result.User.ID.String(), Email: result.User.Email},
	})
}

// Logout is idempotent: an unauthenticated caller gets the same 200
// as a live one.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.logout.Execute(r.Context(), session.TokenFromRequest(r)); err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	http.SetCookie(w, session.ClearCookie(h.secureCookies))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me requires the session middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "not authenticated")
		return
	}
	user, err := h.currentUser.Execute(r.Context(), userID)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": userResponse{ID: user.ID.String(), Email: user.Email},
	})
}
