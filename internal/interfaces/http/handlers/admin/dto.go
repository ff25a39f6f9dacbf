package admin

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campusvoice/internal/application/feedback/usecases"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/utils"
)

type UpdateStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Response string `json:"response" binding:"max=2000"`
}

type ListAllFeedbackRequest struct {
	Status     string
	Category   string
	Priority   string
	Pagination utils.Pagination
}

func (r *ListAllFeedbackRequest) ToQuery(viewerID uint) usecases.ListAllFeedbackQuery {
	return usecases.ListAllFeedbackQuery{
		Status:     r.Status,
		Category:   r.Category,
		Priority:   r.Priority,
		ViewerID:   viewerID,
		Pagination: r.Pagination,
	}
}

func parseListAllFeedbackRequest(c *gin.Context) *ListAllFeedbackRequest {
	return &ListAllFeedbackRequest{
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		Priority:   c.Query("priority"),
		Pagination: utils.ParsePagination(c),
	}
}

func parseFeedbackID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid feedback id")
	}
	return uint(id), nil
}
