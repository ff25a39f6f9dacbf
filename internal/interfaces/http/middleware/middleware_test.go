package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusvoice/internal/domain/user"
	uservo "campusvoice/internal/domain/user/valueobjects"
	"campusvoice/internal/infrastructure/auth"
	"campusvoice/internal/infrastructure/ratelimit"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/config"
	apperrors "campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

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

type mockUserRepository struct {
	getByIDFn func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) GetByStudentID(ctx context.Context, studentID string) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	return false, nil
}
func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type stubLimiter struct {
	allowed bool
	err     error
	gotKey  string
}

func (s *stubLimiter) Allow(_ context.Context, key string, _ ratelimit.Limit) (bool, error) {
	s.gotKey = key
	return s.allowed, s.err
}

func testUser(t *testing.T, id uint, role authorization.Role) *user.User {
	t.Helper()

	sid, err := uservo.NewStudentID("20230001")
	require.NoError(t, err)
	email, err := uservo.NewEmail("li.ming@example.edu")
	require.NoError(t, err)
	name, err := uservo.NewName("Li Ming")
	require.NoError(t, err)

	u, err := user.NewUser(sid, email, name, nil, role)
	require.NoError(t, err)
	u.SetID(id)
	return u
}

func newTestGate(t *testing.T) *authorization.Gate {
	t.Helper()
	gate, err := authorization.NewGate()
	require.NoError(t, err)
	return gate
}

func performRequest(engine *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 7, "campusvoice")
	account := testUser(t, 1, authorization.RoleStudent)
	repo := &mockUserRepository{
		getByIDFn: func(_ context.Context, id uint) (*user.User, error) {
			return account, nil
		},
	}
	mw := NewAuthMiddleware(jwtService, repo, newTestGate(t), noopLogger{})

	engine := gin.New()
	engine.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})

	t.Run("accepts valid token and sets context", func(t *testing.T) {
		token, err := jwtService.Generate(1, authorization.RoleStudent)
		require.NoError(t, err)

		w := performRequest(engine, http.MethodGet, "/protected", map[string]string{
			"Authorization": "Bearer " + token,
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":1`)
	})

	t.Run("rejects missing header", func(t *testing.T) {
		w := performRequest(engine, http.MethodGet, "/protected", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects malformed header", func(t *testing.T) {
		w := performRequest(engine, http.MethodGet, "/protected", map[string]string{
			"Authorization": "Token abc",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		w := performRequest(engine, http.MethodGet, "/protected", map[string]string{
			"Authorization": "Bearer not-a-jwt",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects deactivated account", func(t *testing.T) {
		deactivated := testUser(t, 2, authorization.RoleStudent)
		deactivated.Deactivate()
		repo := &mockUserRepository{
			getByIDFn: func(_ context.Context, id uint) (*user.User, error) {
				return deactivated, nil
			},
		}
		mw := NewAuthMiddleware(jwtService, repo, newTestGate(t), noopLogger{})

		engine := gin.New()
		engine.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		token, err := jwtService.Generate(2, authorization.RoleStudent)
		require.NoError(t, err)

		w := performRequest(engine, http.MethodGet, "/protected", map[string]string{
			"Authorization": "Bearer " + token,
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown account is unauthorized", func(t *testing.T) {
		repo := &mockUserRepository{
			getByIDFn: func(_ context.Context, id uint) (*user.User, error) {
				return nil, apperrors.NewNotFoundError("user not found")
			},
		}
		mw := NewAuthMiddleware(jwtService, repo, newTestGate(t), noopLogger{})

		engine := gin.New()
		engine.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		token, err := jwtService.Generate(99, authorization.RoleStudent)
		require.NoError(t, err)

		w := performRequest(engine, http.MethodGet, "/protected", map[string]string{
			"Authorization": "Bearer " + token,
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("storage failure is a server error, not 401", func(t *testing.T) {
		repo := &mockUserRepository{
			getByIDFn: func(_ context.Context, id uint) (*user.User, error) {
				return nil, stderrors.New("connection refused")
			},
		}
		mw := NewAuthMiddleware(jwtService, repo, newTestGate(t), noopLogger{})

		engine := gin.New()
		engine.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		token, err := jwtService.Generate(1, authorization.RoleStudent)
		require.NoError(t, err)

		w := performRequest(engine, http.MethodGet, "/protected", map[string]string{
			"Authorization": "Bearer " + token,
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthMiddleware_RequirePermission(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 7, "campusvoice")
	gate := newTestGate(t)

	newEngine := func(account *user.User) *gin.Engine {
		repo := &mockUserRepository{
			getByIDFn: func(_ context.Context, id uint) (*user.User, error) {
				return account, nil
			},
		}
		mw := NewAuthMiddleware(jwtService, repo, gate, noopLogger{})
		engine := gin.New()
		engine.GET("/admin",
			mw.RequireAuth(),
			mw.RequirePermission(authorization.ResourceFeedback, authorization.ActionListAll),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return engine
	}

	t.Run("admin allowed", func(t *testing.T) {
		engine := newEngine(testUser(t, 3, authorization.RoleAdmin))
		token, err := jwtService.Generate(3, authorization.RoleAdmin)
		require.NoError(t, err)

		w := performRequest(engine, http.MethodGet, "/admin", map[string]string{
			"Authorization": "Bearer " + token,
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("student forbidden", func(t *testing.T) {
		engine := newEngine(testUser(t, 4, authorization.RoleStudent))
		token, err := jwtService.Generate(4, authorization.RoleStudent)
		require.NoError(t, err)

		w := performRequest(engine, http.MethodGet, "/admin", map[string]string{
			"Authorization": "Bearer " + token,
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := &config.RateLimitConfig{
		APIRequests:      100,
		APIWindowMinutes: 15,
		LoginRequests:    10,
		LoginWindowHours: 1,
	}

	newEngine := func(limiter ratelimit.RateLimiter) *gin.Engine {
		mw := NewRateLimitMiddleware(limiter, cfg, noopLogger{})
		engine := gin.New()
		engine.GET("/ping", mw.LimitAPI(), func(c *gin.Context) { c.Status(http.StatusOK) })
		engine.POST("/login", mw.LimitLogin(), func(c *gin.Context) { c.Status(http.StatusOK) })
		return engine
	}

	t.Run("allows within limit", func(t *testing.T) {
		limiter := &stubLimiter{allowed: true}
		w := performRequest(newEngine(limiter), http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, limiter.gotKey, "api:ip:")
	})

	t.Run("rejects over limit", func(t *testing.T) {
		limiter := &stubLimiter{allowed: false}
		w := performRequest(newEngine(limiter), http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("login uses its own scope", func(t *testing.T) {
		limiter := &stubLimiter{allowed: true}
		w := performRequest(newEngine(limiter), http.MethodPost, "/login", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, limiter.gotKey, "login:ip:")
	})

	t.Run("fails open when limiter errors", func(t *testing.T) {
		limiter := &stubLimiter{err: context.DeadlineExceeded}
		w := performRequest(newEngine(limiter), http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generates when absent", func(t *testing.T) {
		w := performRequest(engine, http.MethodGet, "/ping", nil)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("echoes client value", func(t *testing.T) {
		w := performRequest(engine, http.MethodGet, "/ping", map[string]string{
			"X-Request-ID": "client-id-42",
		})
		assert.Equal(t, "client-id-42", w.Header().Get("X-Request-ID"))
	})
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"https://portal.example.edu"}))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin echoed", func(t *testing.T) {
		w := performRequest(engine, http.MethodGet, "/ping", map[string]string{
			"Origin": "https://portal.example.edu",
		})
		assert.Equal(t, "https://portal.example.edu", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin rejected", func(t *testing.T) {
		w := performRequest(engine, http.MethodGet, "/ping", map[string]string{
			"Origin": "https://evil.example.com",
		})
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		w := performRequest(engine, http.MethodOptions, "/ping", map[string]string{
			"Origin": "https://portal.example.edu",
		})
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(noopLogger{}))
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	start := time.Now()
	w := performRequest(engine, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error occurred")
	assert.Less(t, time.Since(start), 5*time.Second)
}
