package auth

import (
	"errors"
	"time"
)

var (
	// ErrInvalidToken is returned for malformed, tampered, or wrongly
	// signed tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the signature verifies but the
	// token's lifetime has elapsed.
	ErrExpiredToken = errors.New("token has expired")
)

// TokenClaims are the claims carried by an access token. Subject is the
// email the token asserts belongs to its presenter.
type TokenClaims struct {
	Subject   string    `json:"sub"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// TokenService defines the interface for token issuance and verification.
// Implementations include JWTService (HS256) and PasetoService (v4.local).
type TokenService interface {
	IssueToken(subject string, ttl time.Duration) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}
