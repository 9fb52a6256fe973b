// Package market provides the mock market-data source backing the dashboard.
// Listings and portfolio figures are fixed; chart prices are jittered per call
// to look alive without a real upstream feed.
package market

import (
	"context"
	"math/rand/v2"
	"time"

	"cryptoinsight/config"
	"cryptoinsight/internal/domain/entity"
	"cryptoinsight/internal/domain/service"
)

const defaultLatency = 300 * time.Millisecond

// chartLabels are the fixed x-axis labels of the 7-day price chart.
var chartLabels = [...]string{
	"7d ago", "6d ago", "5d ago", "4d ago", "3d ago", "2d ago", "Yesterday", "Today",
}

// chartBaselines shape the relative movement of the chart before scaling.
var chartBaselines = [...]float64{100, 110, 105, 120, 130, 125, 140, 135}

// staticProvider is an in-memory implementation of MarketDataProvider.
// All reads copy out of the fixed dataset, so the provider is safe for
// concurrent use and callers cannot mutate shared state.
type staticProvider struct {
	latency   time.Duration
	coins     []entity.Coin
	portfolio entity.PortfolioSnapshot
}

// NewStaticProvider builds the provider with the demo dataset.
func NewStaticProvider(cfg *config.Config) service.MarketDataProvider {
	latency := defaultLatency
	if cfg.Market != nil && cfg.Market.Latency > 0 {
		latency = cfg.Market.Latency
	}

	return &staticProvider{
		latency: latency,
		coins: []entity.Coin{
			{ID: "bitcoin", Name: "Bitcoin", Symbol: "BTC", Price: 107376.50, Change24h: 2.5, MarketCap: 1300e9, Volume: 40e9},
			{ID: "ethereum", Name: "Ethereum", Symbol: "ETH", Price: 3700.75, Change24h: -1.2, MarketCap: 400e9, Volume: 20e9},
			{ID: "solana", Name: "Solana", Symbol: "SOL", Price: 18.20, Change24h: 5.1, MarketCap: 75e9, Volume: 5e9},
			{ID: "dogecoin", Name: "Dogecoin", Symbol: "DOGE", Price: 0.16, Change24h: 0.5, MarketCap: 22e9, Volume: 2e9},
			{ID: "cardano", Name: "Cardano", Symbol: "ADA", Price: 0.45, Change24h: -2.0, MarketCap: 16e9, Volume: 1e9},
			{ID: "avalanche", Name: "Avalanche", Symbol: "AVAX", Price: 35.80, Change24h: 1.8, MarketCap: 14e9, Volume: 1.2e9},
		},
		portfolio: entity.PortfolioSnapshot{
			TotalValue: 12540.75,
			Change24h:  120.50,
			Assets: []entity.Holding{
				{CoinID: "bitcoin", Name: "Bitcoin", Symbol: "BTC", Amount: 0.15, Value: 10200.07},
				{CoinID: "ethereum", Name: "Ethereum", Symbol: "ETH", Amount: 0.5, Value: 1700.37},
				{CoinID: "solana", Name: "Solana", Symbol: "SOL", Amount: 3, Value: 510.60},
				{CoinID: "dogecoin", Name: "Dogecoin", Symbol: "DOGE", Amount: 800, Value: 128.00},
			},
		},
	}
}

// Coins returns a copy of the tracked coin listing.
func (p *staticProvider) Coins(ctx context.Context) ([]entity.Coin, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	coins := make([]entity.Coin, len(p.coins))
	copy(coins, p.coins)

	return coins, nil
}

// Coin returns a copy of a single listing entry.
func (p *staticProvider) Coin(ctx context.Context, coinID string) (*entity.Coin, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	for _, coin := range p.coins {
		if coin.ID == coinID {
			found := coin

			return &found, nil
		}
	}

	return nil, service.ErrCoinNotFound
}

// ChartSeries synthesizes the 7-day price history for a coin. The curve's
// shape is fixed; each call jitters the points and scales them to the coin's
// price band.
func (p *staticProvider) ChartSeries(ctx context.Context, coinID string) ([]entity.ChartPoint, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	priceBase := 170.0
	switch coinID {
	case "bitcoin":
		priceBase = 68000
	case "ethereum":
		priceBase = 3400
	}

	points := make([]entity.ChartPoint, len(chartLabels))
	for i, label := range chartLabels {
		raw := rand.Float64()*100 + chartBaselines[i]
		points[i] = entity.ChartPoint{
			Label: label,
			Price: raw / 150 * priceBase,
		}
	}

	return points, nil
}

// Portfolio returns a copy of the demo portfolio snapshot.
func (p *staticProvider) Portfolio(ctx context.Context) (*entity.PortfolioSnapshot, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	snapshot := p.portfolio
	snapshot.Assets = make([]entity.Holding, len(p.portfolio.Assets))
	copy(snapshot.Assets, p.portfolio.Assets)

	return &snapshot, nil
}

// wait simulates provider latency while honoring cancellation.
func (p *staticProvider) wait(ctx context.Context) error {
	timer := time.NewTimer(p.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
