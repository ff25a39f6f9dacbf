package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusvoice/internal/application/user/usecases"
	"campusvoice/internal/interfaces/http/handlers/testutil"
	"campusvoice/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockRegisterUC struct {
	result *usecases.RegisterResult
	err    error
	gotCmd usecases.RegisterCommand
}

func (m *mockRegisterUC) Execute(_ context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(_ context.Context, _ usecases.LoginCommand) (*usecases.LoginResult, error) {
	return m.result, m.err
}

type mockChangePasswordUC struct {
	err    error
	gotCmd usecases.ChangePasswordCommand
}

func (m *mockChangePasswordUC) Execute(_ context.Context, cmd usecases.ChangePasswordCommand) error {
	m.gotCmd = cmd
	return m.err
}

type mockGetProfileUC struct {
	result *usecases.UserSummary
	err    error
}

func (m *mockGetProfileUC) Execute(_ context.Context, _ usecases.GetProfileQuery) (*usecases.UserSummary, error) {
	return m.result, m.err
}

type testDeps struct {
	registerUC       usecases.RegisterExecutor
	loginUC          usecases.LoginExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	getProfileUC     usecases.GetProfileExecutor
}

func newTestAuthHandler(deps testDeps) *AuthHandler {
	return NewAuthHandler(
		deps.registerUC,
		deps.loginUC,
		deps.changePasswordUC,
		deps.getProfileUC,
		testutil.NewMockLogger(),
	)
}

// =====================================================================
// Register
// =====================================================================

func TestAuthHandler_Register_Success(t *testing.T) {
	mockUC := &mockRegisterUC{
		result: &usecases.RegisterResult{UserID: 1, StudentID: "20230001"},
	}
	handler := newTestAuthHandler(testDeps{registerUC: mockUC})

	reqBody := RegisterRequest{
		StudentID: "20230001",
		Password:  "secret1",
		Name:      "Li Ming",
		Email:     "li.ming@example.edu",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "20230001", mockUC.gotCmd.StudentID)
}

func TestAuthHandler_Register_BindError(t *testing.T) {
	handler := newTestAuthHandler(testDeps{})

	// Missing required fields
	reqBody := map[string]string{"student_id": "20230001"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	mockUC := &mockRegisterUC{
		err: errors.NewConflictError("student id already registered"),
	}
	handler := newTestAuthHandler(testDeps{registerUC: mockUC})

	reqBody := RegisterRequest{
		StudentID: "20230001",
		Password:  "secret1",
		Name:      "Li Ming",
		Email:     "li.ming@example.edu",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "student id already registered", resp.Error.Message)
}

// =====================================================================
// Login
// =====================================================================

func TestAuthHandler_Login_Success(t *testing.T) {
	mockUC := &mockLoginUC{
		result: &usecases.LoginResult{
			Token: "token-123",
			User: usecases.UserSummary{
				ID:        1,
				StudentID: "20230001",
				Name:      "Li Ming",
				Email:     "li.ming@example.edu",
				Role:      "student",
			},
		},
	}
	handler := newTestAuthHandler(testDeps{loginUC: mockUC})

	reqBody := LoginRequest{StudentID: "20230001", Password: "secret1"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "token-123")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewInvalidCredentialsError()}
	handler := newTestAuthHandler(testDeps{loginUC: mockUC})

	reqBody := LoginRequest{StudentID: "20230001", Password: "wrong"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestAuthHandler_Login_Locked(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewAccountLockedError()}
	handler := newTestAuthHandler(testDeps{loginUC: mockUC})

	reqBody := LoginRequest{StudentID: "20230001", Password: "secret1"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusLocked, w.Code)
}

// =====================================================================
// ChangePassword
// =====================================================================

func TestAuthHandler_ChangePassword_Success(t *testing.T) {
	mockUC := &mockChangePasswordUC{}
	handler := newTestAuthHandler(testDeps{changePasswordUC: mockUC})

	reqBody := ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "secret2"}
	c, w := testutil.NewTestContext(http.MethodPut, "/auth/password", reqBody)
	testutil.SetAuthContext(c, 7, "student")

	handler.ChangePassword(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.gotCmd.UserID)
}

func TestAuthHandler_ChangePassword_WrongCurrent(t *testing.T) {
	mockUC := &mockChangePasswordUC{err: errors.NewBadRequestError("current password is incorrect")}
	handler := newTestAuthHandler(testDeps{changePasswordUC: mockUC})

	reqBody := ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "secret2"}
	c, w := testutil.NewTestContext(http.MethodPut, "/auth/password", reqBody)
	testutil.SetAuthContext(c, 7, "student")

	handler.ChangePassword(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// GetProfile
// =====================================================================

func TestAuthHandler_GetProfile_Success(t *testing.T) {
	mockUC := &mockGetProfileUC{
		result: &usecases.UserSummary{
			ID:        7,
			StudentID: "20230001",
			Name:      "Li Ming",
			Email:     "li.ming@example.edu",
			Role:      "student",
		},
	}
	handler := newTestAuthHandler(testDeps{getProfileUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/me", nil)
	testutil.SetAuthContext(c, 7, "student")

	handler.GetProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "20230001")
}

func TestAuthHandler_GetProfile_NotFound(t *testing.T) {
	mockUC := &mockGetProfileUC{err: errors.NewNotFoundError("user not found")}
	handler := newTestAuthHandler(testDeps{getProfileUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/me", nil)
	testutil.SetAuthContext(c, 7, "student")

	handler.GetProfile(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
