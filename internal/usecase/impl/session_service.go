// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"cryptoinsight/config"
	deliverycontext "cryptoinsight/internal/delivery/context"
	"cryptoinsight/internal/domain/entity"
	domainerrors "cryptoinsight/internal/domain/errors"
	"cryptoinsight/internal/domain/repository"
	"cryptoinsight/internal/domain/service"
	"cryptoinsight/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPasswordMinLength = 6

// sessionService implements the SessionUsecase interface. Signup and login
// are the only two ways to obtain a session token, and both share the same
// issuance path so their outputs never drift apart.
type sessionService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenCodec        service.TokenCodec
	passwordMinLength int
	logger            *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	TokenCodec service.TokenCodec
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSessionService is the constructor for sessionService. It receives all dependencies as interfaces.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	passwordMinLength := defaultPasswordMinLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.PasswordMinLength > 0 {
		passwordMinLength = params.Config.Auth.PasswordMinLength
	}

	return &sessionService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenCodec:        params.TokenCodec,
		passwordMinLength: passwordMinLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account and opens a session for it. The store's
// unique index on the lowercased email arbitrates concurrent signups, so
// there is no check-then-insert race here.
func (srv *sessionService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	if len(input.Password) < srv.passwordMinLength {
		srv.log(ctx).Warn("Password too short during signup", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password does not meet minimum length")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Signup with taken email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrEmailTaken, "signup failed")
		}
		srv.log(ctx).Error("Failed to create user during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	output, err := srv.openSession(ctx, newUser)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return output, nil
}

// Login verifies credentials and opens a session. Unknown emails and wrong
// passwords produce the same error so callers cannot probe which emails are
// registered.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	output, err := srv.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return output, nil
}

// openSession mints a token for the user. Both signup and login go through
// here so the session contract stays identical on both paths.
func (srv *sessionService) openSession(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenCodec.Mint(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to mint session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to mint session token")
	}

	return &usecase.AuthOutput{
		User: &entity.Principal{
			UserID: user.ID,
			Email:  user.Email,
		},
		Token: token,
	}, nil
}
