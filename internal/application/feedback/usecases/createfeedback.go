package usecases

import (
	"context"

	"campusvoice/internal/application/feedback/dto"
	"campusvoice/internal/domain/audit"
	"campusvoice/internal/domain/feedback"
	vo "campusvoice/internal/domain/feedback/valueobjects"
	"campusvoice/internal/domain/user"
	"campusvoice/internal/shared/constants"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

// Sanitizer strips markup from user-submitted text.
type Sanitizer interface {
	Clean(input string) string
}

type CreateFeedbackCommand struct {
	Title       string
	Content     string
	Category    string
	Priority    string
	IsAnonymous bool
	AuthorID    uint
	IP          string
	UserAgent   string
}

type CreateFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	userRepo     user.Repository
	sanitizer    Sanitizer
	recorder     audit.Recorder
	logger       logger.Interface
}

func NewCreateFeedbackUseCase(
	feedbackRepo feedback.Repository,
	userRepo user.Repository,
	sanitizer Sanitizer,
	recorder audit.Recorder,
	logger logger.Interface,
) *CreateFeedbackUseCase {
	return &CreateFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		sanitizer:    sanitizer,
		recorder:     recorder,
		logger:       logger,
	}
}

func (uc *CreateFeedbackUseCase) Execute(ctx context.Context, cmd CreateFeedbackCommand) (*dto.FeedbackDTO, error) {
	uc.logger.Infow("executing create feedback use case", "author_id", cmd.AuthorID, "category", cmd.Category)

	title := uc.sanitizer.Clean(cmd.Title)
	content := uc.sanitizer.Clean(cmd.Content)

	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError("invalid category")
	}

	priority := vo.PriorityNormal
	if cmd.Priority != "" {
		priority, err = vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority")
		}
	}

	author, err := uc.userRepo.GetByID(ctx, cmd.AuthorID)
	if err != nil {
		uc.logger.Errorw("failed to load author", "author_id", cmd.AuthorID, "error", err)
		return nil, err
	}

	fb, err := feedback.NewFeedback(title, content, category, priority, cmd.IsAnonymous, cmd.AuthorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.feedbackRepo.Save(ctx, fb); err != nil {
		uc.logger.Errorw("failed to save feedback", "error", err)
		return nil, err
	}

	uc.recorder.Record(ctx, audit.NewEntry(
		cmd.AuthorID,
		constants.AuditActionCreateFeedback,
		"feedback",
		fb.ID(),
		map[string]any{"category": category.String(), "anonymous": cmd.IsAnonymous},
		cmd.IP,
		cmd.UserAgent,
	))

	uc.logger.Infow("feedback created", "feedback_id", fb.ID(), "priority", priority.String())

	// The creator always sees their own identity on the ticket.
	return dto.FromFeedback(fb, author, false), nil
}
