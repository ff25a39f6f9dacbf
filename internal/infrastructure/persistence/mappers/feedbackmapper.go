package mappers

import (
	"fmt"
	"time"

	"campusvoice/internal/domain/feedback"
	vo "campusvoice/internal/domain/feedback/valueobjects"
	"campusvoice/internal/infrastructure/persistence/models"
)

// FeedbackMapper handles the conversion between Feedback domain entities and persistence models.
type FeedbackMapper interface {
	ToModel(fb *feedback.Feedback) *models.FeedbackModel
	ToDomain(model *models.FeedbackModel, responses []*models.FeedbackResponseModel) (*feedback.Feedback, error)
	ResponseToModel(feedbackID uint, r *feedback.Response) *models.FeedbackResponseModel
}

type FeedbackMapperImpl struct{}

func NewFeedbackMapper() FeedbackMapper {
	return &FeedbackMapperImpl{}
}

func (m *FeedbackMapperImpl) ToModel(fb *feedback.Feedback) *models.FeedbackModel {
	model := &models.FeedbackModel{
		ID:          fb.ID(),
		Title:       fb.Title(),
		Content:     fb.Content(),
		Category:    fb.Category().String(),
		Priority:    fb.Priority().String(),
		Status:      fb.Status().String(),
		IsAnonymous: fb.IsAnonymous(),
		AuthorID:    fb.AuthorID(),
		CreatedAt:   fb.CreatedAt().UnixMilli(),
		UpdatedAt:   fb.UpdatedAt().UnixMilli(),
	}

	if fb.ResolvedAt() != nil {
		ts := fb.ResolvedAt().UnixMilli()
		model.ResolvedAt = &ts
	}

	return model
}

func (m *FeedbackMapperImpl) ToDomain(model *models.FeedbackModel, responseModels []*models.FeedbackResponseModel) (*feedback.Feedback, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to map category (id=%d): %w", model.ID, err)
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to map priority (id=%d): %w", model.ID, err)
	}

	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map status (id=%d): %w", model.ID, err)
	}

	responses := make([]*feedback.Response, 0, len(responseModels))
	for _, rm := range responseModels {
		responses = append(responses, feedback.ReconstructResponse(
			rm.ID, rm.Content, rm.AdminID, rm.AdminName, time.UnixMilli(rm.CreatedAt),
		))
	}

	var resolvedAt *time.Time
	if model.ResolvedAt != nil {
		t := time.UnixMilli(*model.ResolvedAt)
		resolvedAt = &t
	}

	return feedback.ReconstructFeedback(
		model.ID,
		model.Title,
		model.Content,
		category,
		priority,
		status,
		model.IsAnonymous,
		model.AuthorID,
		responses,
		resolvedAt,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *FeedbackMapperImpl) ResponseToModel(feedbackID uint, r *feedback.Response) *models.FeedbackResponseModel {
	return &models.FeedbackResponseModel{
		ID:         r.ID(),
		FeedbackID: feedbackID,
		Content:    r.Content(),
		AdminID:    r.AdminID(),
		AdminName:  r.AdminName(),
		CreatedAt:  r.CreatedAt().UnixMilli(),
	}
}
