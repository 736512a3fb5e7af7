package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Identity is the nested claim carrying the authenticated user's id.
type Identity struct {
	ID int64 `json:"id"`
}

// Claims are the data encoded into a bearer token.
type Claims struct {
	jwt.RegisteredClaims
	Data Identity `json:"data"`
}

// JWTService signs and verifies HS256 bearer tokens with a single shared
// secret known only to this process. Implements TokenService.
type JWTService struct {
	secret   []byte
	issuer   string
	audience string
	duration time.Duration
}

func NewJWTService(secret []byte, issuer, audience string, duration time.Duration) (*JWTService, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("signing secret must not be empty")
	}

	return &JWTService{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		duration: duration,
	}, nil
}

// CreateToken mints a signed token asserting the given user's identity.
// Claims: iss, aud, iat, nbf, exp and the nested identity object.
func (s *JWTService) CreateToken(userID int64) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
		Data: Identity{ID: userID},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// VerifyToken validates signature, time window and the identity claim, and
// returns the user id the token asserts. Any failure comes back as
// ErrInvalidToken or ErrExpiredToken; it never panics on malformed input.
// Stripping a "Bearer " prefix is the caller's job.
func (s *JWTService) VerifyToken(tokenStr string) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}

	if !token.Valid {
		return 0, ErrInvalidToken
	}

	// A token without the identity claim proves nothing.
	if claims.Data.ID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.Data.ID, nil
}
