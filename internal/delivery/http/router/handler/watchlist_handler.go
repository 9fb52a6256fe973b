package handler

import (
	"log/slog"
	"net/http"

	"cryptoinsight/internal/delivery/http/middleware"
	"cryptoinsight/internal/delivery/http/response"
	"cryptoinsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// addWatchRequest is the body of POST /api/watchlist.
type addWatchRequest struct {
	CoinID string `json:"coinId" validate:"required"`
}

// WatchlistHandler holds dependencies for watchlist handlers.
type WatchlistHandler struct {
	uc     usecase.WatchlistUsecase
	logger *slog.Logger
}

// NewWatchlistHandler is the constructor for WatchlistHandler, injected by Fx.
func NewWatchlistHandler(uc usecase.WatchlistUsecase, logger *slog.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /api/watchlist.
func (h *WatchlistHandler) List(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "invalid or expired token")
	}

	coins, err := h.uc.List(c.Request().Context(), principal.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, coins)
}

// Add handles POST /api/watchlist.
func (h *WatchlistHandler) Add(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "invalid or expired token")
	}

	var req addWatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid watchlist input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	coin, err := h.uc.Add(c.Request().Context(), principal.UserID, req.CoinID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, coin)
}

// Remove handles DELETE /api/watchlist/:coinId.
func (h *WatchlistHandler) Remove(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "invalid or expired token")
	}

	coinID := c.Param("coinId")
	if coinID == "" {
		return response.BadRequest(c, "coin id is required")
	}

	if err := h.uc.Remove(c.Request().Context(), principal.UserID, coinID); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.Deleted{ID: coinID})
}
