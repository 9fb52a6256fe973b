// Package response defines the wire shapes of the API. Session endpoints
// return the principal and token at the top level; every failure renders as
// a bare {"message": ...} body so browser clients need a single error path.
package response

import (
	"net/http"

	"cryptoinsight/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Auth is the body of a successful signup or login.
type Auth struct {
	User  *entity.Principal `json:"user"`
	Token string            `json:"token"`
}

// Message is the body of every error response, and of simple
// acknowledgements like logout or health.
type Message struct {
	Message string `json:"message"`
}

// Deleted acknowledges a watchlist removal with the removed coin ID.
type Deleted struct {
	ID string `json:"id"`
}

// AuthSuccess renders an authenticated session.
func AuthSuccess(c echo.Context, statusCode int, user *entity.Principal, token string) error {
	return c.JSON(statusCode, Auth{
		User:  user,
		Token: token,
	})
}

// JSON renders any payload as-is.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Error renders a failure body.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Message{Message: message})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}
