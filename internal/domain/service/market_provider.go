package service

import (
	"context"
	"errors"

	"cryptoinsight/internal/domain/entity"
)

// ErrCoinNotFound is returned when a coin ID is not part of the listing.
var ErrCoinNotFound = errors.New("coin not found")

// MarketDataProvider is the opaque market-data source behind the dashboard:
// coin listing, chart series, and the demo portfolio snapshot. Implementations
// must return defensive copies so callers can never mutate shared state, and
// must honor context cancellation while simulating provider latency.
type MarketDataProvider interface {
	// Coins returns the tracked coin listing.
	Coins(ctx context.Context) ([]entity.Coin, error)

	// Coin returns a single listing entry, or ErrCoinNotFound.
	Coin(ctx context.Context, coinID string) (*entity.Coin, error)

	// ChartSeries returns the mock price history for a coin.
	ChartSeries(ctx context.Context, coinID string) ([]entity.ChartPoint, error)

	// Portfolio returns the demo portfolio snapshot.
	Portfolio(ctx context.Context) (*entity.PortfolioSnapshot, error)
}
