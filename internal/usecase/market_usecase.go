package usecase

import (
	"context"

	"cryptoinsight/internal/domain/entity"
)

// MarketUsecase exposes the read-only market data backing the dashboard.
type MarketUsecase interface {
	// ListCoins returns the tracked coin listing.
	ListCoins(ctx context.Context) ([]entity.Coin, error)

	// GetChart returns the 7-day price series for a coin. Unknown coins
	// still chart on a generic price band.
	GetChart(ctx context.Context, coinID string) ([]entity.ChartPoint, error)
}
