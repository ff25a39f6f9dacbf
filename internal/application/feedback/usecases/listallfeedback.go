package usecases

import (
	"context"

	"campusvoice/internal/application/feedback/dto"
	"campusvoice/internal/domain/feedback"
	vo "campusvoice/internal/domain/feedback/valueobjects"
	"campusvoice/internal/domain/user"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

type ListAllFeedbackQuery struct {
	Status     string
	Category   string
	Priority   string
	ViewerID   uint
	Pagination utils.Pagination
}

// ListAllFeedbackUseCase serves the admin triage queue: most urgent first,
// newest first within the same priority, anonymous authors redacted.
type ListAllFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	userRepo     user.Repository
	gate         *authorization.Gate
	logger       logger.Interface
}

func NewListAllFeedbackUseCase(
	feedbackRepo feedback.Repository,
	userRepo user.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *ListAllFeedbackUseCase {
	return &ListAllFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		gate:         gate,
		logger:       logger,
	}
}

func (uc *ListAllFeedbackUseCase) Execute(ctx context.Context, query ListAllFeedbackQuery) (*ListFeedbackResult, error) {
	pagination := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)

	filter := feedback.Filter{
		Page:           pagination.Page,
		PageSize:       pagination.PageSize,
		SortByPriority: true,
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

	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority")
		}
		filter.Priority = &priority
	}

	items, total, err := uc.feedbackRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list feedback", "error", err)
		return nil, err
	}

	authors, err := uc.loadAuthors(ctx, items)
	if err != nil {
		return nil, err
	}

	result := &ListFeedbackResult{
		Items: make([]*dto.FeedbackDTO, 0, len(items)),
		Total: total,
	}
	for _, fb := range items {
		redact := uc.gate.ShouldRedact(fb.IsAnonymous(), query.ViewerID, fb.AuthorID())
		result.Items = append(result.Items, dto.FromFeedback(fb, authors[fb.AuthorID()], redact))
	}

	return result, nil
}

func (uc *ListAllFeedbackUseCase) loadAuthors(ctx context.Context, items []*feedback.Feedback) (map[uint]*user.User, error) {
	seen := make(map[uint]bool, len(items))
	ids := make([]uint, 0, len(items))
	for _, fb := range items {
		if !seen[fb.AuthorID()] {
			seen[fb.AuthorID()] = true
			ids = append(ids, fb.AuthorID())
		}
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load feedback authors", "error", err)
		return nil, err
	}

	out := make(map[uint]*user.User, len(users))
	for _, u := range users {
		out[u.ID()] = u
	}
	return out, nil
}
