package http

import (
	"github.com/gin-gonic/gin"

	adminhandlers "campusvoice/internal/interfaces/http/handlers/admin"
	"campusvoice/internal/interfaces/http/middleware"
	"campusvoice/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for the triage routes.
type AdminRouteConfig struct {
	AdminHandler   *adminhandlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAdminRoutes configures the admin triage routes.
func SetupAdminRoutes(group *gin.RouterGroup, cfg *AdminRouteConfig) {
	admin := group.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())
	{
		admin.GET("/feedbacks",
			cfg.AuthMiddleware.RequirePermission(authorization.ResourceFeedback, authorization.ActionListAll),
			cfg.AdminHandler.ListAllFeedback)
		admin.PATCH("/feedback/:id/status",
			cfg.AuthMiddleware.RequirePermission(authorization.ResourceFeedback, authorization.ActionUpdateStatus),
			cfg.AdminHandler.UpdateStatus)
		admin.GET("/stats",
			cfg.AuthMiddleware.RequirePermission(authorization.ResourceFeedback, authorization.ActionStats),
			cfg.AdminHandler.GetStats)
	}
}
