package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/marshad7/taskflow/internal/domain"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
)

func TestSessionStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()
	userID := domain.NewUserID(uuid.New())

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, domerrors.ErrSessionNotFound) {
		t.Fatalf("Get on empty store: %v", err)
	}

	if err := store.Create(ctx, "hash", userID, time.Now().Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	got, err := store.Get(ctx, "hash")
	if err != nil {
		t.Fatal(err)
	}
	if got != userID {
		t.Errorf("Get returned %v, want %v", got, userID)
	}

	if err := store.Delete(ctx, "hash"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(ctx, "hash"); !errors.Is(err, domerrors.ErrSessionNotFound) {
		t.Errorf("Get after delete: %v", err)
	}
	// Deleting again is a no-op.
	if err := store.Delete(ctx, "hash"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	if err := store.Create(ctx, "hash", domain.NewUserID(uuid.New()), time.Now().Add(-time.Second)); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(ctx, "hash"); !errors.Is(err, domerrors.ErrSessionNotFound) {
		t.Errorf("expired session should be invisible, got %v", err)
	}
}
