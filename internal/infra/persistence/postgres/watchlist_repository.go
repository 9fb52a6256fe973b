package postgres

import (
	"context"

	"cryptoinsight/internal/domain/entity"
	"cryptoinsight/internal/domain/repository"
	"cryptoinsight/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// watchlistRepository implements the repository.WatchlistRepository interface using GORM.
type watchlistRepository struct {
	db *gorm.DB
}

// NewWatchlistRepository is the constructor for watchlistRepository.
func NewWatchlistRepository(db *gorm.DB) repository.WatchlistRepository {
	return &watchlistRepository{db: db}
}

// ListByUserID returns all watchlist entries for a user, oldest first.
func (repo *watchlistRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistEntry, error) {
	var entryMs []model.WatchlistEntryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list watchlist entries")
	}

	entries := make([]*entity.WatchlistEntry, 0, len(entryMs))
	for i := range entryMs {
		entries = append(entries, toWatchlistDomain(&entryMs[i]))
	}

	return entries, nil
}

// Add inserts a new watchlist entry. The composite unique index on
// (user_id, coin_id) makes the duplicate check atomic with the insert.
func (repo *watchlistRepository) Add(ctx context.Context, entry *entity.WatchlistEntry) error {
	entryM := fromWatchlistDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWatch
		}

		return errors.Wrap(err, "failed to add watchlist entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// Remove deletes the entry for (userID, coinID).
func (repo *watchlistRepository) Remove(ctx context.Context, userID uuid.UUID, coinID string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND coin_id = ?", userID, coinID).
		Delete(&model.WatchlistEntryModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove watchlist entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWatchNotFound
	}

	return nil
}

// toWatchlistDomain converts a GORM WatchlistEntryModel to a domain entity.
func toWatchlistDomain(data *model.WatchlistEntryModel) *entity.WatchlistEntry {
	if data == nil {
		return nil
	}

	return &entity.WatchlistEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		CoinID:    data.CoinID,
		CreatedAt: data.CreatedAt,
	}
}

// fromWatchlistDomain converts a domain entity to a GORM WatchlistEntryModel.
func fromWatchlistDomain(data *entity.WatchlistEntry) *model.WatchlistEntryModel {
	if data == nil {
		return nil
	}

	return &model.WatchlistEntryModel{
		ID:     data.ID,
		UserID: data.UserID,
		CoinID: data.CoinID,
	}
}
