package feedback

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campusvoice/internal/application/feedback/usecases"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/utils"
)

type CreateFeedbackRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Content     string `json:"content" binding:"required,max=2000"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority"`
	IsAnonymous bool   `json:"is_anonymous"`
}

func (r *CreateFeedbackRequest) ToCommand(authorID uint, ip, userAgent string) usecases.CreateFeedbackCommand {
	return usecases.CreateFeedbackCommand{
		Title:       r.Title,
		Content:     r.Content,
		Category:    r.Category,
		Priority:    r.Priority,
		IsAnonymous: r.IsAnonymous,
		AuthorID:    authorID,
		IP:          ip,
		UserAgent:   userAgent,
	}
}

type ListMyFeedbackRequest struct {
	Status     string
	Category   string
	Pagination utils.Pagination
}

func parseListMyFeedbackRequest(c *gin.Context) *ListMyFeedbackRequest {
	return &ListMyFeedbackRequest{
		Status:     c.Query("status"),
		Category:   c.Query("category"),
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
