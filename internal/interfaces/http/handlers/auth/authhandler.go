package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusvoice/internal/application/user/usecases"
	"campusvoice/internal/interfaces/http/middleware"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

type AuthHandler struct {
	registerUC       usecases.RegisterExecutor
	loginUC          usecases.LoginExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	getProfileUC     usecases.GetProfileExecutor
	logger           logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
	getProfileUC usecases.GetProfileExecutor,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC:       registerUC,
		loginUC:          loginUC,
		changePasswordUC: changePasswordUC,
		getProfileUC:     getProfileUC,
		logger:           log,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand(c.ClientIP(), c.Request.UserAgent()))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, RegisterResponse{
		UserID:    result.UserID,
		StudentID: result.StudentID,
	}, "Account registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		StudentID: req.StudentID,
		Password:  req.Password,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		Token: result.Token,
		User:  result.User,
	})
}

// GetProfile handles GET /auth/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{
		UserID: middleware.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangePassword handles PUT /auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          middleware.CurrentUserID(c),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		IP:              c.ClientIP(),
		UserAgent:       c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}
