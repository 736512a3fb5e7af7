package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/cakeshare/cakeshare-api/internal/user"
)

func seedAccessUsers(t *testing.T) (*fakeUserRepo, *user.User, *user.User) {
	t.Helper()

	repo := newFakeUserRepo()
	admin := repo.add(&user.User{Username: "admin", Email: "admin@example.com"})
	regular := repo.add(&user.User{Username: "bob", Email: "bob@example.com"})
	return repo, admin, regular
}

func TestRoleOf(t *testing.T) {
	t.Parallel()

	repo, admin, regular := seedAccessUsers(t)
	access := NewAccess(repo, "admin@example.com")
	ctx := context.Background()

	role, err := access.RoleOf(ctx, admin.ID)
	if err != nil {
		t.Fatalf("RoleOf(admin) error: %v", err)
	}
	if role != RoleAdmin {
		t.Fatalf("admin role: got %v, want RoleAdmin", role)
	}

	role, err = access.RoleOf(ctx, regular.ID)
	if err != nil {
		t.Fatalf("RoleOf(regular) error: %v", err)
	}
	if role != RoleUser {
		t.Fatalf("regular role: got %v, want RoleUser", role)
	}
}

func TestRoleOf_MissingUser(t *testing.T) {
	t.Parallel()

	repo, _, _ := seedAccessUsers(t)
	access := NewAccess(repo, "admin@example.com")

	_, err := access.RoleOf(context.Background(), 9999)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestRoleOf_AdminDisabled(t *testing.T) {
	t.Parallel()

	repo, admin, _ := seedAccessUsers(t)
	access := NewAccess(repo, "")

	// With no admin email configured nobody is an admin.
	role, err := access.RoleOf(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("RoleOf error: %v", err)
	}
	if role != RoleUser {
		t.Fatalf("got %v, want RoleUser when admin gating is disabled", role)
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	repo, admin, regular := seedAccessUsers(t)
	access := NewAccess(repo, "admin@example.com")
	ctx := context.Background()

	if err := access.RequireAdmin(ctx, admin.ID); err != nil {
		t.Fatalf("RequireAdmin(admin) error: %v", err)
	}
	if err := access.RequireAdmin(ctx, regular.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("RequireAdmin(regular): got %v, want ErrForbidden", err)
	}
	if err := access.RequireAdmin(ctx, 9999); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("RequireAdmin(missing): got %v, want ErrUnauthorized", err)
	}
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	t.Parallel()

	repo, admin, regular := seedAccessUsers(t)
	access := NewAccess(repo, "admin@example.com")
	ctx := context.Background()

	// The owner may act on their own resource.
	if err := access.RequireOwnerOrAdmin(ctx, regular.ID, regular.ID); err != nil {
		t.Fatalf("owner: unexpected error %v", err)
	}
	// The admin may act on anyone's resource.
	if err := access.RequireOwnerOrAdmin(ctx, admin.ID, regular.ID); err != nil {
		t.Fatalf("admin: unexpected error %v", err)
	}
	// Anyone else is rejected.
	if err := access.RequireOwnerOrAdmin(ctx, regular.ID, admin.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-owner: got %v, want ErrForbidden", err)
	}
}
