package impl

import (
	"context"
	"testing"

	"cryptoinsight/internal/domain/entity"
	domainerrors "cryptoinsight/internal/domain/errors"
	"cryptoinsight/internal/domain/repository"
	"cryptoinsight/internal/domain/service"
	"cryptoinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type watchlistServiceFixtures struct {
	service       usecase.WatchlistUsecase
	watchlistRepo *mockWatchlistRepository
	provider      *mockMarketDataProvider
}

func createTestWatchlistService(t *testing.T) watchlistServiceFixtures {
	t.Helper()

	watchlistRepo := new(mockWatchlistRepository)
	provider := new(mockMarketDataProvider)

	service := NewWatchlistService(WatchlistServiceParams{
		WatchlistRepo: watchlistRepo,
		Provider:      provider,
		Logger:        newDiscardLogger(),
	})

	return watchlistServiceFixtures{
		service:       service,
		watchlistRepo: watchlistRepo,
		provider:      provider,
	}
}

func TestWatchlistService_List_HydratesCoins(t *testing.T) {
	fx := createTestWatchlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	entries := []*entity.WatchlistEntry{
		{ID: uuid.New(), UserID: userID, CoinID: "bitcoin"},
		{ID: uuid.New(), UserID: userID, CoinID: "solana"},
	}

	fx.watchlistRepo.On("ListByUserID", ctx, userID).Return(entries, nil)
	fx.provider.On("Coin", ctx, "bitcoin").Return(&entity.Coin{ID: "bitcoin", Symbol: "BTC"}, nil)
	fx.provider.On("Coin", ctx, "solana").Return(&entity.Coin{ID: "solana", Symbol: "SOL"}, nil)

	coins, err := fx.service.List(ctx, userID)

	require.NoError(t, err)
	require.Len(t, coins, 2)
	assert.Equal(t, "BTC", coins[0].Symbol)
	assert.Equal(t, "SOL", coins[1].Symbol)
}

func TestWatchlistService_List_SkipsDelistedCoins(t *testing.T) {
	fx := createTestWatchlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	entries := []*entity.WatchlistEntry{
		{ID: uuid.New(), UserID: userID, CoinID: "bitcoin"},
		{ID: uuid.New(), UserID: userID, CoinID: "delisted-coin"},
	}

	fx.watchlistRepo.On("ListByUserID", ctx, userID).Return(entries, nil)
	fx.provider.On("Coin", ctx, "bitcoin").Return(&entity.Coin{ID: "bitcoin"}, nil)
	fx.provider.On("Coin", ctx, "delisted-coin").Return(nil, service.ErrCoinNotFound)

	coins, err := fx.service.List(ctx, userID)

	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.Equal(t, "bitcoin", coins[0].ID)
}

func TestWatchlistService_Add_Success(t *testing.T) {
	fx := createTestWatchlistService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.provider.On("Coin", ctx, "ethereum").Return(&entity.Coin{ID: "ethereum", Name: "Ethereum"}, nil)
	fx.watchlistRepo.On("Add", ctx, mock.AnythingOfType("*entity.WatchlistEntry")).
		Run(func(args mock.Arguments) {
			entry := args.Get(1).(*entity.WatchlistEntry)
			assert.Equal(t, userID, entry.UserID)
			assert.Equal(t, "ethereum", entry.CoinID)
			entry.ID = uuid.New()
		}).
		Return(nil)

	coin, err := fx.service.Add(ctx, userID, "ethereum")

	require.NoError(t, err)
	assert.Equal(t, "Ethereum", coin.Name)
}

func TestWatchlistService_Add_UnknownCoin(t *testing.T) {
	fx := createTestWatchlistService(t)

	ctx := context.Background()
	fx.provider.On("Coin", ctx, "no-such-coin").Return(nil, service.ErrCoinNotFound)

	coin, err := fx.service.Add(ctx, uuid.New(), "no-such-coin")

	require.Error(t, err)
	assert.Nil(t, coin)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	fx.watchlistRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestWatchlistService_Add_Duplicate(t *testing.T) {
	fx := createTestWatchlistService(t)

	ctx := context.Background()
	fx.provider.On("Coin", ctx, "bitcoin").Return(&entity.Coin{ID: "bitcoin"}, nil)
	fx.watchlistRepo.On("Add", ctx, mock.AnythingOfType("*entity.WatchlistEntry")).
		Return(repository.ErrDuplicateWatch)

	coin, err := fx.service.Add(ctx, uuid.New(), "bitcoin")

	require.Error(t, err)
	assert.Nil(t, coin)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyWatched))
}

func TestWatchlistService_Remove_Success(t *testing.T) {
	fx := createTestWatchlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.watchlistRepo.On("Remove", ctx, userID, "bitcoin").Return(nil)

	err := fx.service.Remove(ctx, userID, "bitcoin")

	require.NoError(t, err)
}

func TestWatchlistService_Remove_NotFound(t *testing.T) {
	fx := createTestWatchlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.watchlistRepo.On("Remove", ctx, userID, "bitcoin").Return(repository.ErrWatchNotFound)

	err := fx.service.Remove(ctx, userID, "bitcoin")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
