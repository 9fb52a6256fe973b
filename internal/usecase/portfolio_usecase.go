package usecase

import (
	"context"

	"cryptoinsight/internal/domain/entity"
)

// PortfolioUsecase exposes the demo portfolio snapshot.
type PortfolioUsecase interface {
	Get(ctx context.Context) (*entity.PortfolioSnapshot, error)
}
