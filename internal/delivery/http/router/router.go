// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cryptoinsight/internal/delivery/http/middleware"
	"cryptoinsight/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	MarketHandler    *handler.MarketHandler
	WatchlistHandler *handler.WatchlistHandler
	PortfolioHandler *handler.PortfolioHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	marketHandler    *handler.MarketHandler
	watchlistHandler *handler.WatchlistHandler
	portfolioHandler *handler.PortfolioHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		marketHandler:    params.MarketHandler,
		watchlistHandler: params.WatchlistHandler,
		portfolioHandler: params.PortfolioHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes are the only public API surface.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Everything else requires a valid session token.
	coinGroup := api.Group("/coins")
	coinGroup.Use(r.authMiddleware.Authenticate)
	{
		coinGroup.GET("", r.marketHandler.ListCoins)
		coinGroup.GET("/:id/chart", r.marketHandler.GetChart)
	}

	watchlistGroup := api.Group("/watchlist")
	watchlistGroup.Use(r.authMiddleware.Authenticate)
	{
		watchlistGroup.GET("", r.watchlistHandler.List)
		watchlistGroup.POST("", r.watchlistHandler.Add)
		watchlistGroup.DELETE("/:coinId", r.watchlistHandler.Remove)
	}

	portfolioGroup := api.Group("/portfolio")
	portfolioGroup.Use(r.authMiddleware.Authenticate)
	{
		portfolioGroup.GET("", r.portfolioHandler.Get)
	}
}
