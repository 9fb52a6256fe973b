package handler

import (
	"log/slog"
	"net/http"

	"cryptoinsight/internal/delivery/http/response"
	"cryptoinsight/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PortfolioHandler holds dependencies for the portfolio handler.
type PortfolioHandler struct {
	uc     usecase.PortfolioUsecase
	logger *slog.Logger
}

// NewPortfolioHandler is the constructor for PortfolioHandler, injected by Fx.
func NewPortfolioHandler(uc usecase.PortfolioUsecase, logger *slog.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get handles GET /api/portfolio.
func (h *PortfolioHandler) Get(c echo.Context) error {
	snapshot, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, snapshot)
}
