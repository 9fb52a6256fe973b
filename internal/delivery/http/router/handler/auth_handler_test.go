package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cryptoinsight/internal/delivery/http/middleware"
	"cryptoinsight/internal/delivery/http/validator"
	"cryptoinsight/internal/domain/entity"
	domainerrors "cryptoinsight/internal/domain/errors"
	"cryptoinsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSessionUsecase lets each test script the usecase outcome.
type stubSessionUsecase struct {
	signup func(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error)
	login  func(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error)
}

func (s *stubSessionUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	return s.signup(ctx, input)
}

func (s *stubSessionUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.login(ctx, input)
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthHandler_Signup_Created(t *testing.T) {
	userID := uuid.New()
	uc := &stubSessionUsecase{
		signup: func(_ context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
			assert.Equal(t, "new@example.com", input.Email)

			return &usecase.AuthOutput{
				User:  &entity.Principal{UserID: userID, Email: input.Email},
				Token: "signed.jwt.token",
			}, nil
		},
	}

	e := newTestEcho(t)
	e.POST("/api/auth/signup", NewAuthHandler(uc, discardLogger()).Signup)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"new@example.com","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body.User.ID)
	assert.Equal(t, "new@example.com", body.User.Email)
	assert.Equal(t, "signed.jwt.token", body.Token)
}

func TestAuthHandler_Signup_EmailTaken(t *testing.T) {
	uc := &stubSessionUsecase{
		signup: func(_ context.Context, _ *usecase.SignupInput) (*usecase.AuthOutput, error) {
			return nil, domainerrors.ErrEmailTaken
		},
	}

	e := newTestEcho(t)
	e.POST("/api/auth/signup", NewAuthHandler(uc, discardLogger()).Signup)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"taken@example.com","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "email already registered", body["message"])
}

func TestAuthHandler_Signup_InvalidEmail(t *testing.T) {
	uc := &stubSessionUsecase{
		signup: func(_ context.Context, _ *usecase.SignupInput) (*usecase.AuthOutput, error) {
			t.Fatal("usecase must not be reached for invalid input")

			return nil, nil
		},
	}

	e := newTestEcho(t)
	e.POST("/api/auth/signup", NewAuthHandler(uc, discardLogger()).Signup)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"not-an-email","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestAuthHandler_Login_OK(t *testing.T) {
	userID := uuid.New()
	uc := &stubSessionUsecase{
		login: func(_ context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
			return &usecase.AuthOutput{
				User:  &entity.Principal{UserID: userID, Email: input.Email},
				Token: "signed.jwt.token",
			}, nil
		},
	}

	e := newTestEcho(t)
	e.POST("/api/auth/login", NewAuthHandler(uc, discardLogger()).Login)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"user@example.com","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed.jwt.token"`)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := &stubSessionUsecase{
		login: func(_ context.Context, _ *usecase.LoginInput) (*usecase.AuthOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials
		},
	}

	e := newTestEcho(t)
	e.POST("/api/auth/login", NewAuthHandler(uc, discardLogger()).Login)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"user@example.com","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid email or password", body["message"])
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho(t)
	e.GET("/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "running")
}
