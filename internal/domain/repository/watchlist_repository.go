package repository

import (
	"context"
	"errors"

	"cryptoinsight/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateWatch is returned by Add when the user already follows the coin.
var ErrDuplicateWatch = errors.New("coin already in watchlist")

// ErrWatchNotFound is returned by Remove when no entry matches.
var ErrWatchNotFound = errors.New("watchlist entry not found")

// WatchlistRepository persists which coins a user follows. Entries are
// scoped per user; the (userID, coinID) pair is unique in the store.
type WatchlistRepository interface {
	// ListByUserID returns all entries for a user, oldest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistEntry, error)

	// Add inserts a new entry. Duplicate (userID, coinID) pairs fail with
	// ErrDuplicateWatch; the check-and-insert is atomic in the store.
	Add(ctx context.Context, entry *entity.WatchlistEntry) error

	// Remove deletes the entry for (userID, coinID).
	Remove(ctx context.Context, userID uuid.UUID, coinID string) error
}
