package impl

import (
	"context"
	"log/slog"

	deliverycontext "cryptoinsight/internal/delivery/context"
	"cryptoinsight/internal/domain/entity"
	domainerrors "cryptoinsight/internal/domain/errors"
	"cryptoinsight/internal/domain/repository"
	"cryptoinsight/internal/domain/service"
	"cryptoinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// watchlistService implements the WatchlistUsecase interface. The store only
// keeps (user, coin) pairs; market data is joined in from the provider on
// every read so listings never go stale.
type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
	provider      service.MarketDataProvider
	logger        *slog.Logger
}

// WatchlistServiceParams holds dependencies for watchlistService, injected by Fx.
type WatchlistServiceParams struct {
	fx.In

	WatchlistRepo repository.WatchlistRepository
	Provider      service.MarketDataProvider
	Logger        *slog.Logger
}

// NewWatchlistService is the constructor for watchlistService.
func NewWatchlistService(params WatchlistServiceParams) usecase.WatchlistUsecase {
	return &watchlistService{
		watchlistRepo: params.WatchlistRepo,
		provider:      params.Provider,
		logger:        params.Logger,
	}
}

func (srv *watchlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the user's watched coins hydrated with current market data.
// Entries whose coin has dropped out of the listing are skipped rather than
// failing the whole read.
func (srv *watchlistService) List(ctx context.Context, userID uuid.UUID) ([]entity.Coin, error) {
	entries, err := srv.watchlistRepo.ListByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list watchlist", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list watchlist")
	}

	coins := make([]entity.Coin, 0, len(entries))
	for _, entry := range entries {
		coin, err := srv.provider.Coin(ctx, entry.CoinID)
		if err != nil {
			if errors.Is(err, service.ErrCoinNotFound) {
				srv.log(ctx).Warn("Watched coin missing from listing", slog.String("coinID", entry.CoinID))

				continue
			}

			return nil, errors.Wrap(err, "failed to load watched coin")
		}
		coins = append(coins, *coin)
	}

	return coins, nil
}

// Add follows a coin for the user. The coin must exist in the listing; the
// store's unique index rejects duplicate follows atomically.
func (srv *watchlistService) Add(ctx context.Context, userID uuid.UUID, coinID string) (*entity.Coin, error) {
	coin, err := srv.provider.Coin(ctx, coinID)
	if err != nil {
		if errors.Is(err, service.ErrCoinNotFound) {
			srv.log(ctx).Warn("Attempt to watch unknown coin", slog.String("coinID", coinID))

			return nil, errors.Wrap(domainerrors.ErrNotFound, "coin not found")
		}

		return nil, errors.Wrap(err, "failed to load coin for watchlist")
	}

	entry := &entity.WatchlistEntry{
		UserID: userID,
		CoinID: coinID,
	}

	if err := srv.watchlistRepo.Add(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicateWatch) {
			return nil, errors.Wrap(domainerrors.ErrAlreadyWatched, "watchlist add failed")
		}
		srv.log(ctx).Error("Failed to add watchlist entry", slog.Any("userID", userID), slog.String("coinID", coinID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add watchlist entry")
	}

	srv.log(ctx).Debug("Coin added to watchlist", slog.Any("userID", userID), slog.String("coinID", coinID))

	return coin, nil
}

// Remove unfollows a coin for the user.
func (srv *watchlistService) Remove(ctx context.Context, userID uuid.UUID, coinID string) error {
	if err := srv.watchlistRepo.Remove(ctx, userID, coinID); err != nil {
		if errors.Is(err, repository.ErrWatchNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "watchlist entry not found")
		}
		srv.log(ctx).Error("Failed to remove watchlist entry", slog.Any("userID", userID), slog.String("coinID", coinID), slog.Any("error", err))

		return errors.Wrap(err, "failed to remove watchlist entry")
	}

	srv.log(ctx).Debug("Coin removed from watchlist", slog.Any("userID", userID), slog.String("coinID", coinID))

	return nil
}
