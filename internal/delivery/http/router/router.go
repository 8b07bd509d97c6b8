// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agrosikkim/internal/delivery/http/middleware"
	"agrosikkim/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/signup", r.accountHandler.SignUp)
	e.POST("/signin", r.accountHandler.SignIn)

	// Dashboard routes. Authentication only kicks in when token issuance
	// is enabled; otherwise the group is open, matching the account-free
	// dashboard.
	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	{
		dashboardGroup.GET("", r.dashboardHandler.Snapshot)
		dashboardGroup.POST("/simulate", r.dashboardHandler.Simulate)
		dashboardGroup.POST("/irrigation", r.dashboardHandler.ToggleIrrigation)
	}
}
