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

// portfolioService implements the PortfolioUsecase interface.
type portfolioService struct {
	provider service.MarketDataProvider
	logger   *slog.Logger
}

// PortfolioServiceParams holds dependencies for portfolioService, injected by Fx.
type PortfolioServiceParams struct {
	fx.In

	Provider service.MarketDataProvider
	Logger   *slog.Logger
}

// NewPortfolioService is the constructor for portfolioService.
func NewPortfolioService(params PortfolioServiceParams) usecase.PortfolioUsecase {
	return &portfolioService{
		provider: params.Provider,
		logger:   params.Logger,
	}
}

// Get returns the demo portfolio snapshot.
func (srv *portfolioService) Get(ctx context.Context) (*entity.PortfolioSnapshot, error) {
	snapshot, err := srv.provider.Portfolio(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to load portfolio", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load portfolio")
	}

	return snapshot, nil
}
