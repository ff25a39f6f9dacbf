package http

import (
	"github.com/gin-gonic/gin"

	authhandlers "campusvoice/internal/interfaces/http/handlers/auth"
	"campusvoice/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for account routes.
type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimitMiddleware
}

// SetupAuthRoutes configures registration, login and account routes.
func SetupAuthRoutes(group *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := group.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.RateLimit.LimitLogin(), cfg.AuthHandler.Login)

		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetProfile)
		auth.PUT("/password", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ChangePassword)
	}
}
