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

type UpdateStatusCommand struct {
	FeedbackID uint
	NewStatus  string
	Response   string
	AdminID    uint
	IP         string
	UserAgent  string
}

// TransactionManager runs a function inside a database transaction so the
// repositories called from it share one unit of work.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type UpdateStatusUseCase struct {
	feedbackRepo feedback.Repository
	userRepo     user.Repository
	policy       feedback.TransitionPolicy
	sanitizer    Sanitizer
	txManager    TransactionManager
	recorder     audit.Recorder
	logger       logger.Interface
}

func NewUpdateStatusUseCase(
	feedbackRepo feedback.Repository,
	userRepo user.Repository,
	policy feedback.TransitionPolicy,
	sanitizer Sanitizer,
	txManager TransactionManager,
	recorder audit.Recorder,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		policy:       policy,
		sanitizer:    sanitizer,
		txManager:    txManager,
		recorder:     recorder,
		logger:       logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.FeedbackDTO, error) {
	uc.logger.Infow("executing update status use case",
		"feedback_id", cmd.FeedbackID, "new_status", cmd.NewStatus, "admin_id", cmd.AdminID)

	newStatus, err := vo.NewStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError("invalid status")
	}

	admin, err := uc.userRepo.GetByID(ctx, cmd.AdminID)
	if err != nil {
		uc.logger.Errorw("failed to load acting admin", "admin_id", cmd.AdminID, "error", err)
		return nil, err
	}

	// The ticket is reloaded and rewritten inside one transaction so two
	// admins updating it concurrently cannot interleave.
	var fb *feedback.Feedback
	var oldStatus vo.Status
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		fb, err = uc.feedbackRepo.GetByID(txCtx, cmd.FeedbackID)
		if err != nil {
			return err
		}

		var response *feedback.Response
		if cleaned := uc.sanitizer.Clean(cmd.Response); cleaned != "" {
			response, err = feedback.NewResponse(cleaned, admin.ID(), admin.Name().String())
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		oldStatus = fb.Status()
		if err := fb.ApplyStatusUpdate(newStatus, response, uc.policy); err != nil {
			return errors.NewValidationError(err.Error())
		}

		return uc.feedbackRepo.Update(txCtx, fb)
	})
	if err != nil {
		uc.logger.Errorw("failed to update feedback", "feedback_id", cmd.FeedbackID, "error", err)
		return nil, err
	}

	uc.recorder.Record(ctx, audit.NewEntry(
		cmd.AdminID,
		constants.AuditActionUpdateStatus,
		"feedback",
		fb.ID(),
		map[string]any{"from": oldStatus.String(), "to": newStatus.String()},
		cmd.IP,
		cmd.UserAgent,
	))

	author, err := uc.userRepo.GetByID(ctx, fb.AuthorID())
	if err != nil {
		return nil, err
	}

	// Admins updating a ticket always see the true author.
	return dto.FromFeedback(fb, author, false), nil
}
