// Package http wires the HTTP surface: it builds the repositories, use cases
// and handlers, then mounts them on a Gin engine behind the shared middleware
// chain.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	feedbackusecases "campusvoice/internal/application/feedback/usecases"
	userusecases "campusvoice/internal/application/user/usecases"
	"campusvoice/internal/domain/audit"
	"campusvoice/internal/domain/feedback"
	"campusvoice/internal/domain/user"
	"campusvoice/internal/infrastructure/auth"
	"campusvoice/internal/infrastructure/config"
	"campusvoice/internal/infrastructure/ratelimit"
	"campusvoice/internal/infrastructure/repository"
	"campusvoice/internal/infrastructure/sanitize"
	adminhandlers "campusvoice/internal/interfaces/http/handlers/admin"
	authhandlers "campusvoice/internal/interfaces/http/handlers/auth"
	feedbackhandlers "campusvoice/internal/interfaces/http/handlers/feedback"
	"campusvoice/internal/interfaces/http/middleware"
	"campusvoice/internal/shared/authorization"
	shareddb "campusvoice/internal/shared/db"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

// Router holds the configured Gin engine and the middleware needed to mount
// routes.
type Router struct {
	engine          *gin.Engine
	cfg             *config.Config
	authHandler     *authhandlers.AuthHandler
	feedbackHandler *feedbackhandlers.FeedbackHandler
	adminHandler    *adminhandlers.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimit       *middleware.RateLimitMiddleware
	logger          logger.Interface
}

// NewRouter builds the full dependency graph for the HTTP API.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, gate *authorization.Gate, recorder audit.Recorder, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	txManager := shareddb.NewTransactionManager(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpiryDays, cfg.Auth.JWT.Issuer)
	sanitizer := sanitize.NewSanitizer()
	transitionPolicy := feedback.NewPermissiveTransitionPolicy()
	securityPolicy := &user.SecurityPolicy{
		MaxLoginAttempts:       cfg.Auth.Lockout.MaxAttempts,
		LockoutDurationMinutes: cfg.Auth.Lockout.DurationMinutes,
	}

	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, sanitizer, recorder, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, securityPolicy, jwtService, recorder, log)
	changePasswordUC := userusecases.NewChangePasswordUseCase(userRepo, hasher, securityPolicy, recorder, log)
	getProfileUC := userusecases.NewGetProfileUseCase(userRepo, log)

	createFeedbackUC := feedbackusecases.NewCreateFeedbackUseCase(feedbackRepo, userRepo, sanitizer, recorder, log)
	getFeedbackUC := feedbackusecases.NewGetFeedbackUseCase(feedbackRepo, userRepo, gate, log)
	listMyFeedbackUC := feedbackusecases.NewListMyFeedbackUseCase(feedbackRepo, userRepo, log)
	listAllFeedbackUC := feedbackusecases.NewListAllFeedbackUseCase(feedbackRepo, userRepo, gate, log)
	updateStatusUC := feedbackusecases.NewUpdateStatusUseCase(feedbackRepo, userRepo, transitionPolicy, sanitizer, txManager, recorder, log)
	getStatsUC := feedbackusecases.NewGetStatsUseCase(feedbackRepo, log)

	authHandler := authhandlers.NewAuthHandler(registerUC, loginUC, changePasswordUC, getProfileUC, log)
	feedbackHandler := feedbackhandlers.NewFeedbackHandler(createFeedbackUC, getFeedbackUC, listMyFeedbackUC, log)
	adminHandler := adminhandlers.NewAdminHandler(listAllFeedbackUC, updateStatusUC, getStatsUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo, gate, log)
	limiter := ratelimit.NewRedisRateLimiter(redisClient)
	rateLimit := middleware.NewRateLimitMiddleware(limiter, &cfg.RateLimit, log)

	return &Router{
		engine:          engine,
		cfg:             cfg,
		authHandler:     authHandler,
		feedbackHandler: feedbackHandler,
		adminHandler:    adminHandler,
		authMiddleware:  authMiddleware,
		rateLimit:       rateLimit,
		logger:          log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(r.bodySizeLimit())

	api := r.engine.Group("/api")
	api.Use(r.rateLimit.LimitAPI())
	{
		api.GET("/health", r.healthCheck)

		SetupAuthRoutes(api, &AuthRouteConfig{
			AuthHandler:    r.authHandler,
			AuthMiddleware: r.authMiddleware,
			RateLimit:      r.rateLimit,
		})

		SetupFeedbackRoutes(api, &FeedbackRouteConfig{
			FeedbackHandler: r.feedbackHandler,
			AuthMiddleware:  r.authMiddleware,
		})

		SetupAdminRoutes(api, &AdminRouteConfig{
			AdminHandler:   r.adminHandler,
			AuthMiddleware: r.authMiddleware,
		})
	}

	r.engine.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, "route not found")
	})
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// bodySizeLimit caps request bodies so oversized payloads fail fast instead
// of being buffered by the JSON binder.
func (r *Router) bodySizeLimit() gin.HandlerFunc {
	maxBytes := r.cfg.Server.MaxBodyBytes
	return func(c *gin.Context) {
		if c.Request.Body != nil && maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
