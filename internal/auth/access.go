package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/cakeshare/cakeshare-api/internal/user"
)

var (
	// ErrUnauthorized means the identity could not be established at all,
	// including a token for an account that no longer exists.
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden means the identity is valid but lacks the required role
	// or ownership.
	ErrForbidden = errors.New("access denied")
)

// Role is a user's authorization level. There is exactly one admin account,
// identified by its email address; everything else is a regular user.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

// Access makes endpoint-level authorization decisions for verified
// identities. Each check is stateless and evaluated fresh per request.
type Access struct {
	users      UserRepository
	adminEmail string
}

func NewAccess(users UserRepository, adminEmail string) *Access {
	return &Access{users: users, adminEmail: adminEmail}
}

// RoleOf resolves a user's role by looking up the stored email. A missing
// user row maps to ErrUnauthorized: the token may be genuine, but the
// identity it asserts no longer exists.
func (a *Access) RoleOf(ctx context.Context, userID int64) (Role, error) {
	u, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return RoleUser, ErrUnauthorized
		}
		return RoleUser, fmt.Errorf("failed to resolve role: %w", err)
	}

	if a.adminEmail != "" && u.Email == a.adminEmail {
		return RoleAdmin, nil
	}

	return RoleUser, nil
}

// RequireAdmin passes only for the single configured administrator.
func (a *Access) RequireAdmin(ctx context.Context, userID int64) error {
	role, err := a.RoleOf(ctx, userID)
	if err != nil {
		return err
	}
	if role != RoleAdmin {
		return ErrForbidden
	}
	return nil
}

// RequireOwnerOrAdmin passes for the resource owner or the administrator.
func (a *Access) RequireOwnerOrAdmin(ctx context.Context, userID, ownerID int64) error {
	if userID == ownerID {
		return nil
	}
	return a.RequireAdmin(ctx, userID)
}
