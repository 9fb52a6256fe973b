package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"cryptoinsight/config"
	"cryptoinsight/internal/domain/entity"
	"cryptoinsight/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			PasswordMinLength: 6,
		},
	}
}

// --- Repository mocks ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type mockWatchlistRepository struct {
	mock.Mock
}

func (m *mockWatchlistRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.WatchlistEntry), args.Error(1)
}

func (m *mockWatchlistRepository) Add(ctx context.Context, entry *entity.WatchlistEntry) error {
	args := m.Called(ctx, entry)

	return args.Error(0)
}

func (m *mockWatchlistRepository) Remove(ctx context.Context, userID uuid.UUID, coinID string) error {
	args := m.Called(ctx, userID, coinID)

	return args.Error(0)
}

// --- Service mocks ---

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenCodec struct {
	mock.Mock
}

func (m *mockTokenCodec) Mint(userID uuid.UUID, email string) (string, error) {
	args := m.Called(userID, email)

	return args.String(0), args.Error(1)
}

func (m *mockTokenCodec) Decode(token string) (*service.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *mockTokenCodec) TTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

type mockMarketDataProvider struct {
	mock.Mock
}

func (m *mockMarketDataProvider) Coins(ctx context.Context) ([]entity.Coin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Coin), args.Error(1)
}

func (m *mockMarketDataProvider) Coin(ctx context.Context, coinID string) (*entity.Coin, error) {
	args := m.Called(ctx, coinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Coin), args.Error(1)
}

func (m *mockMarketDataProvider) ChartSeries(ctx context.Context, coinID string) ([]entity.ChartPoint, error) {
	args := m.Called(ctx, coinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.ChartPoint), args.Error(1)
}

func (m *mockMarketDataProvider) Portfolio(ctx context.Context) (*entity.PortfolioSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PortfolioSnapshot), args.Error(1)
}
