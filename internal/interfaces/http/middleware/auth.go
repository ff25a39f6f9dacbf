package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"campusvoice/internal/domain/user"
	"campusvoice/internal/infrastructure/auth"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/constants"
	apperrors "campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	gate       *authorization.Gate
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, gate *authorization.Gate, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		gate:       gate,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and loads the account, so disabled
// accounts are cut off immediately rather than at token expiry.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				utils.ErrorResponseWithError(c, apperrors.NewTokenExpiredError())
			} else {
				m.logger.Warnw("failed to verify token", "error", err)
				utils.ErrorResponseWithError(c, apperrors.NewTokenInvalidError())
			}
			c.Abort()
			return
		}

		account, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			// A missing account means a stale token; anything else is a
			// storage failure and must not masquerade as 401.
			if apperrors.IsNotFoundError(err) {
				utils.ErrorResponseWithError(c, apperrors.NewAccountInactiveError())
			} else {
				m.logger.Errorw("failed to load account for token", "user_id", claims.UserID, "error", err)
				utils.ErrorResponseWithError(c, apperrors.NewInternalError("Internal server error occurred"))
			}
			c.Abort()
			return
		}
		if !account.IsActive() {
			utils.ErrorResponseWithError(c, apperrors.NewAccountInactiveError())
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, account.ID())
		c.Set(constants.ContextKeyUserRole, string(account.Role()))
		c.Set(constants.ContextKeyUser, account)

		c.Next()
	}
}

// RequirePermission gates a route on the policy, using the role loaded by
// RequireAuth.
func (m *AuthMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)

		if err := m.gate.Authorize(role, resource, action); err != nil {
			m.logger.Warnw("permission denied",
				"role", role, "resource", resource, "action", action, "path", c.Request.URL.Path)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUserID returns the authenticated account ID set by RequireAuth.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentRole returns the authenticated role set by RequireAuth.
func CurrentRole(c *gin.Context) authorization.Role {
	if v, ok := c.Get(constants.ContextKeyUserRole); ok {
		if s, ok := v.(string); ok {
			return authorization.ParseRole(s)
		}
	}
	return authorization.RoleStudent
}

// CurrentUser returns the account aggregate loaded by RequireAuth.
func CurrentUser(c *gin.Context) *user.User {
	if v, ok := c.Get(constants.ContextKeyUser); ok {
		if u, ok := v.(*user.User); ok {
			return u
		}
	}
	return nil
}
