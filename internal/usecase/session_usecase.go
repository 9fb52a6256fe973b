// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cryptoinsight/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated principal and its session token.
// Signup and login share this shape: both end in a live session.
type AuthOutput struct {
	User  *entity.Principal
	Token string
}

// SessionUsecase defines the interface for session-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type SessionUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
