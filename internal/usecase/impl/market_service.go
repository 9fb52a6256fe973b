package impl

import (
	"context"
	"log/slog"

	deliverycontext "cryptoinsight/internal/delivery/context"
	"cryptoinsight/internal/domain/entity"
	"cryptoinsight/internal/domain/service"
	"cryptoinsight/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// marketService implements the MarketUsecase interface on top of the
// market-data provider.
type marketService struct {
	provider service.MarketDataProvider
	logger   *slog.Logger
}

// MarketServiceParams holds dependencies for marketService, injected by Fx.
type MarketServiceParams struct {
	fx.In

	Provider service.MarketDataProvider
	Logger   *slog.Logger
}

// NewMarketService is the constructor for marketService.
func NewMarketService(params MarketServiceParams) usecase.MarketUsecase {
	return &marketService{
		provider: params.Provider,
		logger:   params.Logger,
	}
}

func (srv *marketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCoins returns the tracked coin listing.
func (srv *marketService) ListCoins(ctx context.Context) ([]entity.Coin, error) {
	coins, err := srv.provider.Coins(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list coins", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list coins")
	}

	return coins, nil
}

// GetChart returns the price series for a coin. Coins outside the listing
// still produce a series on the generic price band, matching the provider.
func (srv *marketService) GetChart(ctx context.Context, coinID string) ([]entity.ChartPoint, error) {
	points, err := srv.provider.ChartSeries(ctx, coinID)
	if err != nil {
		srv.log(ctx).Error("Failed to build chart series", slog.String("coinID", coinID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to build chart series")
	}

	return points, nil
}
