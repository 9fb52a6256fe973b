package middleware

import (
	"strings"

	"cryptoinsight/internal/delivery/http/response"
	"cryptoinsight/internal/domain/entity"
	"cryptoinsight/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyPrincipal is the echo.Context key holding the authenticated principal.
const ContextKeyPrincipal = "principal"

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenCodec service.TokenCodec
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenCodec service.TokenCodec) *AuthMiddleware {
	return &AuthMiddleware{tokenCodec: tokenCodec}
}

// Authenticate validates the bearer token and stores the principal on the
// request context. The token is self-contained, so no store lookup happens
// here; a valid signature and unexpired claims are the whole check.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "invalid token format, must be Bearer token")
		}

		claims, err := m.tokenCodec.Decode(tokenString)
		if err != nil {
			return response.Unauthorized(c, "invalid or expired token")
		}

		c.Set(ContextKeyPrincipal, &entity.Principal{
			UserID: claims.UserID,
			Email:  claims.Email,
		})

		return next(c)
	}
}

// GetPrincipal extracts the authenticated principal set by Authenticate.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(ContextKeyPrincipal).(*entity.Principal)

	return principal, ok
}
