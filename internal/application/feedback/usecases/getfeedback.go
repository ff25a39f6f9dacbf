package usecases

import (
	"context"

	"campusvoice/internal/application/feedback/dto"
	"campusvoice/internal/domain/feedback"
	"campusvoice/internal/domain/user"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
)

type GetFeedbackQuery struct {
	FeedbackID uint
	ViewerID   uint
	ViewerRole authorization.Role
}

type GetFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	userRepo     user.Repository
	gate         *authorization.Gate
	logger       logger.Interface
}

func NewGetFeedbackUseCase(
	feedbackRepo feedback.Repository,
	userRepo user.Repository,
	gate *authorization.Gate,
	logger logger.Interface,
) *GetFeedbackUseCase {
	return &GetFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		gate:         gate,
		logger:       logger,
	}
}

func (uc *GetFeedbackUseCase) Execute(ctx context.Context, query GetFeedbackQuery) (*dto.FeedbackDTO, error) {
	fb, err := uc.feedbackRepo.GetByID(ctx, query.FeedbackID)
	if err != nil {
		return nil, err
	}

	if !fb.IsOwnedBy(query.ViewerID) {
		if err := uc.gate.Authorize(query.ViewerRole, authorization.ResourceFeedback, authorization.ActionReadAny); err != nil {
			uc.logger.Warnw("feedback access denied",
				"feedback_id", query.FeedbackID, "viewer_id", query.ViewerID, "role", query.ViewerRole)
			return nil, err
		}
	}

	author, err := uc.userRepo.GetByID(ctx, fb.AuthorID())
	if err != nil {
		uc.logger.Errorw("failed to load feedback author", "feedback_id", fb.ID(), "error", err)
		return nil, err
	}

	redact := uc.gate.ShouldRedact(fb.IsAnonymous(), query.ViewerID, fb.AuthorID())
	return dto.FromFeedback(fb, author, redact), nil
}
