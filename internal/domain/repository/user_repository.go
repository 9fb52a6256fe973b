// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cryptoinsight/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned by Create when the email is already registered.
// The implementation must make the existence check and the insert atomic
// (unique constraint in the store), never an application-level check-then-act.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository is the credential store: one identity record per unique
// email. The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by email. Lookup is
	// case-insensitive; the stored casing is preserved in the result.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new identity record and assigns its ID.
	Create(ctx context.Context, user *entity.User) error
}
