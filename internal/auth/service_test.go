package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cakeshare/cakeshare-api/internal/logging"
	"github.com/cakeshare/cakeshare-api/internal/user"
)

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	byEmail map[string]*user.User
	byID    map[int64]*user.User
	nextID  int64
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[int64]*user.User),
		nextID:  1,
	}
}

func (f *fakeUserRepo) add(u *user.User) *user.User {
	if u.ID == 0 {
		u.ID = f.nextID
		f.nextID++
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return u
}

func (f *fakeUserRepo) Create(_ context.Context, username, email, passwordHash string) (*user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, exists := f.byEmail[email]; exists {
		return nil, user.ErrDuplicate
	}
	for _, u := range f.byID {
		if u.Username == username {
			return nil, user.ErrDuplicate
		}
	}
	return f.add(&user.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}), nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func newTestService(t *testing.T, repo UserRepository) *Service {
	t.Helper()

	tokens := newTestJWTService(t, "test-secret", time.Hour)
	return NewService(repo, tokens, logging.NewLogger(false))
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(t, repo)

	u, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("expected assigned user id")
	}
	if u.Username != "alice" || u.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.PasswordHash == "secret123" || u.PasswordHash == "" {
		t.Fatalf("password was not hashed")
	}
	if !VerifyPassword(u.PasswordHash, "secret123") {
		t.Fatalf("stored hash does not verify the original password")
	}
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newFakeUserRepo())
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"missing username", "", "a@example.com", "secret123", ErrUsernameRequired},
		{"missing email", "alice", "", "secret123", ErrEmailRequired},
		{"bad email", "alice", "not-an-email", "secret123", ErrInvalidEmailFormat},
		{"missing password", "alice", "a@example.com", "", ErrPasswordRequired},
		{"short password", "alice", "a@example.com", "12345", ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(t, repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "secret123"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	_, err := svc.Register(ctx, "alice", "other@example.com", "secret123")
	if !errors.Is(err, user.ErrDuplicate) {
		t.Fatalf("duplicate username: got %v, want user.ErrDuplicate", err)
	}

	_, err = svc.Register(ctx, "bob", "alice@example.com", "secret123")
	if !errors.Is(err, user.ErrDuplicate) {
		t.Fatalf("duplicate email: got %v, want user.ErrDuplicate", err)
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(t, repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	u, token, err := svc.Login(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if u.ID != registered.ID {
		t.Fatalf("user id mismatch: got %d want %d", u.ID, registered.ID)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	tokens := newTestJWTService(t, "test-secret", time.Hour)
	userID, err := tokens.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if userID != registered.ID {
		t.Fatalf("token user id mismatch: got %d want %d", userID, registered.ID)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestService(t, repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "secret123"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable.
	_, _, err := svc.Login(ctx, "nobody@example.com", "secret123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v, want ErrInvalidCredentials", err)
	}

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newFakeUserRepo())
	ctx := context.Background()

	if _, _, err := svc.Login(ctx, "", "secret123"); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("missing email: got %v, want ErrEmailRequired", err)
	}
	if _, _, err := svc.Login(ctx, "alice@example.com", ""); !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("missing password: got %v, want ErrPasswordRequired", err)
	}
}
