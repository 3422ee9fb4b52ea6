// Package session owns the cookie that carries the opaque session
// token between browser and server.
package session

import (
	"net/http"
	"time"
)

// CookieName is the session cookie. The value is the opaque token;
// the server only ever stores its hash.
const CookieName = "taskflow_session"

// NewCookie builds the session cookie. HttpOnly keeps it away from
// scripts; SameSite=Lax keeps cross-site POSTs from carrying it.
func NewCookie(token string, expiresAt time.Time, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt) / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie expires the session cookie on the client.
func ClearCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// TokenFromRequest extracts the opaque token, or "" when the cookie
// is absent.
func TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
