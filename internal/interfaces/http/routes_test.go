package http

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusvoice/internal/infrastructure/auth"
	adminhandlers "campusvoice/internal/interfaces/http/handlers/admin"
	feedbackhandlers "campusvoice/internal/interfaces/http/handlers/feedback"
	"campusvoice/internal/interfaces/http/middleware"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestRouteTable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	gate, err := authorization.NewGate()
	require.NoError(t, err)

	log := noopLogger{}
	jwtService := auth.NewJWTService("route-table-secret", 7, "campusvoice")
	authMW := middleware.NewAuthMiddleware(jwtService, nil, gate, log)

	engine := gin.New()
	api := engine.Group("/api")

	SetupFeedbackRoutes(api, &FeedbackRouteConfig{
		FeedbackHandler: feedbackhandlers.NewFeedbackHandler(nil, nil, nil, log),
		AuthMiddleware:  authMW,
	})
	SetupAdminRoutes(api, &AdminRouteConfig{
		AdminHandler:   adminhandlers.NewAdminHandler(nil, nil, nil, log),
		AuthMiddleware: authMW,
	})

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	// The client-facing paths: feedback self-service plus the triage surface.
	expected := []string{
		"POST /api/feedback",
		"GET /api/feedback/my",
		"GET /api/feedback/:id",
		"GET /api/admin/feedbacks",
		"PATCH /api/admin/feedback/:id/status",
		"GET /api/admin/stats",
	}
	for _, want := range expected {
		assert.True(t, registered[want], "route not registered: %s", want)
	}
}
