// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"authd/internal/delivery/http/middleware"
	"authd/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/login/google", r.authHandler.GoogleLogin)
		authGroup.POST("/refresh", r.authHandler.Refresh, r.authMiddleware.AuthenticateRefresh)
		authGroup.DELETE("/revoke_access", r.authHandler.Revoke, r.authMiddleware.Authenticate)
		authGroup.DELETE("/revoke_refresh", r.authHandler.Revoke, r.authMiddleware.AuthenticateRefresh)
	}

	// User management routes; everything requires a valid access token.
	userGroup := e.Group("/api/v1/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers, r.authMiddleware.RequireAdmin)
		userGroup.POST("/public", r.userHandler.GetPublicInfo)
		userGroup.GET("/:user_uuid", r.userHandler.GetUser, r.authMiddleware.RequireSelfOrAdmin)
		userGroup.PUT("/:user_uuid", r.userHandler.UpsertUser, r.authMiddleware.RequireAdmin)
		userGroup.DELETE("/:user_uuid", r.userHandler.DeleteUser, r.authMiddleware.RequireAdmin)
		userGroup.PUT("/:user_uuid/password", r.userHandler.ChangePassword, r.authMiddleware.RequireSelfOrAdmin)
	}
}
