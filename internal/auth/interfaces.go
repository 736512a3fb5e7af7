package auth

import (
	"context"

	"github.com/cakeshare/cakeshare-api/internal/user"
)

// TokenService defines token creation and validation.
// JWTService (HS256 with a shared symmetric secret) is the implementation.
type TokenService interface {
	CreateToken(userID int64) (string, error)
	VerifyToken(tokenStr string) (int64, error)
}

// UserRepository is the slice of the credential store the auth package needs.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id int64) (*user.User, error)
}
