package impl

import (
	"context"
	"testing"

	"cryptoinsight/internal/domain/entity"
	domainerrors "cryptoinsight/internal/domain/errors"
	"cryptoinsight/internal/domain/repository"
	"cryptoinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service    usecase.SessionUsecase
	userRepo   *mockUserRepository
	hasher     *mockPasswordHasher
	tokenCodec *mockTokenCodec
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	t.Helper()

	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokenCodec := new(mockTokenCodec)

	service := NewSessionService(SessionServiceParams{
		UserRepo:   userRepo,
		Hasher:     hasher,
		TokenCodec: tokenCodec,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		hasher:     hasher,
		tokenCodec: tokenCodec,
	}
}

func TestSessionService_Signup_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:    "test@example.com",
		Password: "password123",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenCodec.On("Mint", mock.AnythingOfType("uuid.UUID"), input.Email).Return("signed.jwt.token", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.UserID)
	assert.Equal(t, "signed.jwt.token", output.Token)

	fx.userRepo.AssertExpectations(t)
	fx.hasher.AssertExpectations(t)
	fx.tokenCodec.AssertExpectations(t)
}

func TestSessionService_Signup_StoresHashNotPassword(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:    "test@example.com",
		Password: "password123",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.NotContains(t, user.PasswordHash, input.Password)
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenCodec.On("Mint", mock.Anything, mock.Anything).Return("signed.jwt.token", nil)

	_, err := fx.service.Signup(ctx, input)
	require.NoError(t, err)
}

func TestSessionService_Signup_EmailTaken(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:    "taken@example.com",
		Password: "password123",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	fx.tokenCodec.AssertNotCalled(t, "Mint", mock.Anything, mock.Anything)
}

func TestSessionService_Signup_PasswordTooShort(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:    "test@example.com",
		Password: "12345",
	}

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "password123",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(user, nil)
	fx.hasher.On("Check", input.Password, user.PasswordHash).Return(true)
	fx.tokenCodec.On("Mint", userID, user.Email).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, userID, output.User.UserID)
	assert.Equal(t, user.Email, output.User.Email)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong_password",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(user, nil)
	fx.hasher.On("Check", input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.tokenCodec.AssertNotCalled(t, "Mint", mock.Anything, mock.Anything)
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "unknown@example.com",
		Password: "password123",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// Unknown emails and wrong passwords must be indistinguishable to callers.
func TestSessionService_Login_UniformFailure(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "known@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.On("FindByEmail", ctx, "known@example.com").Return(user, nil)
	fx.userRepo.On("FindByEmail", ctx, "unknown@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Check", "wrong", user.PasswordHash).Return(false)

	_, errWrongPassword := fx.service.Login(ctx, &usecase.LoginInput{Email: "known@example.com", Password: "wrong"})
	_, errUnknownEmail := fx.service.Login(ctx, &usecase.LoginInput{Email: "unknown@example.com", Password: "wrong"})

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownEmail)
	assert.True(t, errors.Is(errWrongPassword, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(errUnknownEmail, domainerrors.ErrInvalidCredentials))
}
