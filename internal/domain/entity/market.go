package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coin is a single entry of the tracked market listing.
type Coin struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change24h"`
	MarketCap float64 `json:"marketCap"`
	Volume    float64 `json:"volume"`
}

// ChartPoint is one sample of a coin's mock price history.
type ChartPoint struct {
	Label string  `json:"name"`
	Price float64 `json:"price"`
}

// WatchlistEntry links a user to a coin they follow. The (UserID, CoinID)
// pair is unique; duplicates are rejected by the store, not by the caller.
type WatchlistEntry struct {
	ID        uuid.UUID `json:"-"`
	UserID    uuid.UUID `json:"-"`
	CoinID    string    `json:"id"`
	CreatedAt time.Time `json:"-"`
}

// Holding is a single asset position inside a portfolio snapshot.
type Holding struct {
	CoinID string  `json:"id"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Amount float64 `json:"amount"`
	Value  float64 `json:"value"`
}

// PortfolioSnapshot is the demo portfolio summary served to the dashboard.
type PortfolioSnapshot struct {
	TotalValue float64   `json:"totalValue"`
	Change24h  float64   `json:"change24h"`
	Assets     []Holding `json:"assets"`
}
