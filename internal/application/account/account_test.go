package account_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/marshad7/taskflow/internal/application/account"
	domerrors "github.com/marshad7/taskflow/internal/domain/errors"
	"github.com/marshad7/taskflow/internal/infrastructure/persistence/memory"
)

// stubHasher avoids paying for argon2 in use-case tests; the real
// hasher has its own tests in the security package.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (stubHasher) Verify(password, hash string) bool    { return hash == "hashed:"+password }

type fixture struct {
	users    *memory.UserRepository
	sessions *memory.SessionStore
	register *account.Register
	login    *account.Login
	logout   *account.Logout
	current  *account.CurrentUser
}

func newFixture() *fixture {
	users := memory.NewUserRepository()
	sessions := memory.NewSessionStore()
	hasher := stubHasher{}
	return &fixture{
		users:    users,
		sessions: sessions,
		register: account.NewRegister(users, sessions, hasher, time.Hour),
		login:    account.NewLogin(users, sessions, hasher, time.Hour),
		logout:   account.NewLogout(sessions),
		current:  account.NewCurrentUser(users),
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	f := newFixture()
	result, err := f.register.Execute(context.Background(), account.RegisterInput{
		Email:    "  User@Example.COM ",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.Email != "user@example.com" {
		t.Errorf("email not normalized: %q", result.User.Email)
	}
	if result.Session == nil || result.Session.Token == "" {
		t.Fatal("register should establish a session")
	}
	// The session resolves back to the new user.
	userID, err := f.sessions.Get(context.Background(), account.HashSessionToken(result.Session.Token))
	if err != nil {
		t.Fatalf("session lookup: %v", err)
	}
	if userID != result.User.ID {
		t.Error("session bound to wrong user")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	if _, err := f.register.Execute(ctx, account.RegisterInput{Email: "u@example.com", Password: "password123"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	// Different raw spelling, same normalized email.
	_, err := f.register.Execute(ctx, account.RegisterInput{Email: "U@EXAMPLE.COM", Password: "password456"})
	if !errors.Is(err, domerrors.ErrEmailTaken) {
		t.Errorf("got %v, want ErrEmailTaken", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "password123"},
		{"empty password", "u@example.com", ""},
		{"short password", "u@example.com", "short"},
		{"long password", "u@example.com", strings.Repeat("p", 129)},
		{"malformed email", "not-an-email", "password123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.register.Execute(ctx, account.RegisterInput{Email: tc.email, Password: tc.password})
			if !domerrors.IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}
}

func TestLoginDistinguishesUnknownAccountFromBadPassword(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	if _, err := f.register.Execute(ctx, account.RegisterInput{Email: "u@example.com", Password: "password123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := f.login.Execute(ctx, account.LoginInput{Email: "nobody@example.com", Password: "password123"})
	if !errors.Is(err, domerrors.ErrAccountNotFound) {
		t.Errorf("unknown email: got %v, want ErrAccountNotFound", err)
	}

	_, err = f.login.Execute(ctx, account.LoginInput{Email: "u@example.com", Password: "wrongpassword"})
	if !errors.Is(err, domerrors.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}

	result, err := f.login.Execute(ctx, account.LoginInput{Email: " U@example.com ", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Session == nil || result.Session.Token == "" {
		t.Error("login should establish a session")
	}
}

func TestConcurrentSessionsStayValid(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	if _, err := f.register.Execute(ctx, account.RegisterInput{Email: "u@example.com", Password: "password123"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	first, err := f.login.Execute(ctx, account.LoginInput{Email: "u@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := f.login.Execute(ctx, account.LoginInput{Email: "u@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	for _, s := range []*account.Session{first.Session, second.Session} {
		if _, err := f.sessions.Get(ctx, account.HashSessionToken(s.Token)); err != nil {
			t.Errorf("session should still resolve: %v", err)
		}
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	result, err := f.register.Execute(ctx, account.RegisterInput{Email: "u@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	token := result.Session.Token

	if err := f.logout.Execute(ctx, token); err != nil {
		t.Fatalf("first logout: %v", err)
	}
	if _, err := f.sessions.Get(ctx, account.HashSessionToken(token)); !errors.Is(err, domerrors.ErrSessionNotFound) {
		t.Error("session should be gone after logout")
	}
	if err := f.logout.Execute(ctx, token); err != nil {
		t.Errorf("second logout should succeed: %v", err)
	}
	if err := f.logout.Execute(ctx, ""); err != nil {
		t.Errorf("logout without token should succeed: %v", err)
	}
}

func TestCurrentUserGoneReadsAsUnauthenticated(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	result, err := f.register.Execute(ctx, account.RegisterInput{Email: "u@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	user, err := f.current.Execute(ctx, result.User.ID)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.Email != "u@example.com" {
		t.Errorf("unexpected email %q", user.Email)
	}

	other := newFixture() // empty user store, same id
	if _, err := other.current.Execute(ctx, result.User.ID); !errors.Is(err, domerrors.ErrUnauthenticated) {
		t.Errorf("got %v, want ErrUnauthenticated", err)
	}
}

func TestMintSessionToken(t *testing.T) {
	token, hash, err := account.MintSessionToken()
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("token length %d, want 64 hex chars", len(token))
	}
	if hash != account.HashSessionToken(token) {
		t.Error("hash should be deterministic for the token")
	}
	if hash == token {
		t.Error("stored hash must differ from the client token")
	}
	token2, _, err := account.MintSessionToken()
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if token == token2 {
		t.Error("tokens should be unique")
	}
}
