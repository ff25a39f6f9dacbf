package feedback

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusvoice/internal/application/feedback/usecases"
	"campusvoice/internal/interfaces/http/middleware"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

type FeedbackHandler struct {
	createFeedbackUC usecases.CreateFeedbackExecutor
	getFeedbackUC    usecases.GetFeedbackExecutor
	listMyFeedbackUC usecases.ListMyFeedbackExecutor
	logger           logger.Interface
}

func NewFeedbackHandler(
	createFeedbackUC usecases.CreateFeedbackExecutor,
	getFeedbackUC usecases.GetFeedbackExecutor,
	listMyFeedbackUC usecases.ListMyFeedbackExecutor,
	log logger.Interface,
) *FeedbackHandler {
	return &FeedbackHandler{
		createFeedbackUC: createFeedbackUC,
		getFeedbackUC:    getFeedbackUC,
		listMyFeedbackUC: listMyFeedbackUC,
		logger:           log,
	}
}

// CreateFeedback handles POST /feedback
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create feedback", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := req.ToCommand(middleware.CurrentUserID(c), c.ClientIP(), c.Request.UserAgent())

	result, err := h.createFeedbackUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Feedback submitted successfully")
}

// GetFeedback handles GET /feedback/:id
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	feedbackID, err := parseFeedbackID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getFeedbackUC.Execute(c.Request.Context(), usecases.GetFeedbackQuery{
		FeedbackID: feedbackID,
		ViewerID:   middleware.CurrentUserID(c),
		ViewerRole: middleware.CurrentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMyFeedback handles GET /feedback/my
func (h *FeedbackHandler) ListMyFeedback(c *gin.Context) {
	req := parseListMyFeedbackRequest(c)

	result, err := h.listMyFeedbackUC.Execute(c.Request.Context(), usecases.ListMyFeedbackQuery{
		AuthorID:   middleware.CurrentUserID(c),
		Status:     req.Status,
		Category:   req.Category,
		Pagination: req.Pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, req.Pagination.Page, req.Pagination.PageSize)
}
