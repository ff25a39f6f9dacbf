package http

import (
	"github.com/gin-gonic/gin"

	feedbackhandlers "campusvoice/internal/interfaces/http/handlers/feedback"
	"campusvoice/internal/interfaces/http/middleware"
	"campusvoice/internal/shared/authorization"
)

// FeedbackRouteConfig holds dependencies for student-facing feedback routes.
type FeedbackRouteConfig struct {
	FeedbackHandler *feedbackhandlers.FeedbackHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupFeedbackRoutes configures submission and self-service routes.
func SetupFeedbackRoutes(group *gin.RouterGroup, cfg *FeedbackRouteConfig) {
	fb := group.Group("/feedback")
	fb.Use(cfg.AuthMiddleware.RequireAuth())
	{
		fb.POST("",
			cfg.AuthMiddleware.RequirePermission(authorization.ResourceFeedback, authorization.ActionCreate),
			cfg.FeedbackHandler.CreateFeedback)
		fb.GET("/my",
			cfg.AuthMiddleware.RequirePermission(authorization.ResourceFeedback, authorization.ActionListOwn),
			cfg.FeedbackHandler.ListMyFeedback)

		// Parameterized route last so it cannot shadow collection paths.
		fb.GET("/:id", cfg.FeedbackHandler.GetFeedback)
	}
}
