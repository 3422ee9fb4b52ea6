package account

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/marshad7/taskflow/internal/application/ports"
	"github.com/marshad7/taskflow/internal/domain"
)

// DefaultSessionTTL is how long a session stays valid.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Session is an established login: the opaque token handed to the
// transport layer (cookie value) and its expiry.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// MintSessionToken returns a fresh opaque token and the hash stored
// server-side. Only the hash ever reaches the store.
func MintSessionToken() (token, tokenHash string, err error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(raw)
	return token, HashSessionToken(token), nil
}

// HashSessionToken maps a client-held token to its storage key.
func HashSessionToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

func establishSession(ctx context.Context, sessions ports.SessionStore, userID domain.UserID, ttl time.Duration) (*Session, error) {
	token, tokenHash, err := MintSessionToken()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(ttl)
	if err := sessions.Create(ctx, tokenHash, userID, expiresAt); err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}
