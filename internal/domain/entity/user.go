// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record held by the credential store. Email is the
// login identifier (unique, case-insensitive); PasswordHash is the bcrypt
// digest and must never leave the session service boundary.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// Principal is the authenticated identity derived from a valid token.
// It is transient: reconstructed on each request, never stored on its own.
type Principal struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
}
