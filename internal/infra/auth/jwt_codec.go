package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"cryptoinsight/config"
	domainerrors "cryptoinsight/internal/domain/errors"
	"cryptoinsight/internal/domain/service"
	"cryptoinsight/internal/errors"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
// Tokens are signed with HMAC-SHA256 and carry the principal's id and email so
// clients can render session state without a round trip.
type jwtCodec struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTCodec is the constructor for jwtCodec.
// It takes configuration values to create a new token codec instance.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtCodec{
		secret: []byte(cfg.JWT.Secret),
		ttl:    cfg.JWT.TTL,
	}, nil
}

// Mint creates a signed session token for the given principal.
func (c *jwtCodec) Mint(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(c.secret)
}

// Decode verifies the signature and expiry of a token string and returns its claims.
// Every failure mode collapses into ErrTokenInvalid; callers never learn whether
// a token was tampered with, malformed, or merely expired.
func (c *jwtCodec) Decode(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	return claims, nil
}

// TTL returns the configured token lifetime.
func (c *jwtCodec) TTL() time.Duration {
	return c.ttl
}
