package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the self-contained content of a session token. The JSON field
// names are part of the wire contract: the browser client decodes the payload
// segment locally and reads userId/email for display.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenCodec mints and validates the stateless bearer tokens that represent
// a session. Both operations are pure: no store access, no shared mutable
// state, safe for concurrent use.
type TokenCodec interface {
	// Mint signs a token for the principal, expiring after the configured TTL.
	Mint(userID uuid.UUID, email string) (string, error)

	// Decode verifies the signature and expiry and returns the claims.
	// Any failure (tampered payload, malformed structure, expiry) is an
	// ErrTokenInvalid; there is no partial validity.
	Decode(token string) (*Claims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
