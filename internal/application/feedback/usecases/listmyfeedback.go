package usecases

import (
	"context"

	"campusvoice/internal/application/feedback/dto"
	"campusvoice/internal/domain/feedback"
	vo "campusvoice/internal/domain/feedback/valueobjects"
	"campusvoice/internal/domain/user"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

type ListMyFeedbackQuery struct {
	AuthorID   uint
	Status     string
	Category   string
	Pagination utils.Pagination
}

type ListFeedbackResult struct {
	Items []*dto.FeedbackDTO
	Total int64
}

type ListMyFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	userRepo     user.Repository
	logger       logger.Interface
}

func NewListMyFeedbackUseCase(
	feedbackRepo feedback.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListMyFeedbackUseCase {
	return &ListMyFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *ListMyFeedbackUseCase) Execute(ctx context.Context, query ListMyFeedbackQuery) (*ListFeedbackResult, error) {
	pagination := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)

	filter := feedback.Filter{
		AuthorID: &query.AuthorID,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}

	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError("invalid category")
		}
		filter.Category = &category
	}

	items, total, err := uc.feedbackRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list own feedback", "author_id", query.AuthorID, "error", err)
		return nil, err
	}

	author, err := uc.userRepo.GetByID(ctx, query.AuthorID)
	if err != nil {
		return nil, err
	}

	result := &ListFeedbackResult{
		Items: make([]*dto.FeedbackDTO, 0, len(items)),
		Total: total,
	}
	for _, fb := range items {
		// An owner's own listing is never redacted.
		result.Items = append(result.Items, dto.FromFeedback(fb, author, false))
	}

	return result, nil
}
