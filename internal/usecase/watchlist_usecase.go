package usecase

import (
	"context"

	"cryptoinsight/internal/domain/entity"

	"github.com/google/uuid"
)

// WatchlistUsecase manages which coins a user follows. Entries are stored
// per user and hydrated with live listing data on read.
type WatchlistUsecase interface {
	// List returns the user's watched coins with current market data.
	List(ctx context.Context, userID uuid.UUID) ([]entity.Coin, error)

	// Add follows a coin. The coin must exist in the listing, and a user
	// can follow each coin at most once.
	Add(ctx context.Context, userID uuid.UUID, coinID string) (*entity.Coin, error)

	// Remove unfollows a coin.
	Remove(ctx context.Context, userID uuid.UUID, coinID string) error
}
