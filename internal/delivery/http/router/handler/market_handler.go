package handler

import (
	"log/slog"
	"net/http"

	"cryptoinsight/internal/delivery/http/response"
	"cryptoinsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MarketHandler holds dependencies for market-data handlers.
type MarketHandler struct {
	uc     usecase.MarketUsecase
	logger *slog.Logger
}

// NewMarketHandler is the constructor for MarketHandler, injected by Fx.
func NewMarketHandler(uc usecase.MarketUsecase, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCoins handles GET /api/coins.
func (h *MarketHandler) ListCoins(c echo.Context) error {
	coins, err := h.uc.ListCoins(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, coins)
}

// GetChart handles GET /api/coins/:id/chart.
func (h *MarketHandler) GetChart(c echo.Context) error {
	coinID := c.Param("id")
	if coinID == "" {
		return response.BadRequest(c, "coin id is required")
	}

	points, err := h.uc.GetChart(c.Request().Context(), coinID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, points)
}
