package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cakeshare/cakeshare-api/internal/logging"
)

type fakeUserLister struct {
	users []*User
	err   error
}

func (f *fakeUserLister) List(_ context.Context) ([]*User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func (f *fakeUserLister) Count(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.users), nil
}

type fakeRecipeCounter struct {
	count int
	err   error
}

func (f *fakeRecipeCounter) Count(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.count, nil
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	now := time.Now()
	lister := &fakeUserLister{users: []*User{
		{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "$argon2id$hash", CreatedAt: now},
		{ID: 2, Username: "bob", Email: "bob@example.com", PasswordHash: "$argon2id$hash", CreatedAt: now},
	}}
	h := NewHandler(lister, &fakeRecipeCounter{count: 7}, logging.NewLogger(false))

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	h.ListUsers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp ListUsersResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Users) != 2 {
		t.Fatalf("got %d users, want 2", len(resp.Users))
	}
	if resp.Stats.TotalUsers != 2 || resp.Stats.TotalRecipes != 7 {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
	if resp.Users[0].Username != "alice" || resp.Users[1].Username != "bob" {
		t.Fatalf("unexpected users: %+v", resp.Users)
	}
	// Hashes stay out of the listing.
	if strings.Contains(rec.Body.String(), "argon2id") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestListUsers_Empty(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakeUserLister{}, &fakeRecipeCounter{}, logging.NewLogger(false))

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	h.ListUsers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	// An empty listing is [] and not null.
	if !strings.Contains(rec.Body.String(), `"users":[]`) {
		t.Fatalf("expected empty users array, got %s", rec.Body.String())
	}
}

func TestListUsers_StoreError(t *testing.T) {
	t.Parallel()

	lister := &fakeUserLister{err: fmt.Errorf("pq: connection refused")}
	h := NewHandler(lister, &fakeRecipeCounter{}, logging.NewLogger(false))

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	h.ListUsers(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rec.Body.String(), "pq:") {
		t.Fatalf("driver error leaked to client: %s", rec.Body.String())
	}
}
