package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusvoice/internal/application/feedback/usecases"
	"campusvoice/internal/interfaces/http/middleware"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

// AdminHandler serves the triage surface: the full queue, status updates with
// responses, and aggregate stats.
type AdminHandler struct {
	listAllFeedbackUC usecases.ListAllFeedbackExecutor
	updateStatusUC    usecases.UpdateStatusExecutor
	getStatsUC        usecases.GetStatsExecutor
	logger            logger.Interface
}

func NewAdminHandler(
	listAllFeedbackUC usecases.ListAllFeedbackExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	getStatsUC usecases.GetStatsExecutor,
	log logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		listAllFeedbackUC: listAllFeedbackUC,
		updateStatusUC:    updateStatusUC,
		getStatsUC:        getStatsUC,
		logger:            log,
	}
}

// ListAllFeedback handles GET /admin/feedbacks
func (h *AdminHandler) ListAllFeedback(c *gin.Context) {
	req := parseListAllFeedbackRequest(c)

	result, err := h.listAllFeedbackUC.Execute(c.Request.Context(), req.ToQuery(middleware.CurrentUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, req.Pagination.Page, req.Pagination.PageSize)
}

// UpdateStatus handles PATCH /admin/feedback/:id/status
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	feedbackID, err := parseFeedbackID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		FeedbackID: feedbackID,
		NewStatus:  req.Status,
		Response:   req.Response,
		AdminID:    middleware.CurrentUserID(c),
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback status updated successfully", result)
}

// GetStats handles GET /admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
