package usecases

import (
	"context"

	"campusvoice/internal/domain/audit"
	"campusvoice/internal/domain/user"
	vo "campusvoice/internal/domain/user/valueobjects"
	"campusvoice/internal/shared/constants"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
	IP              string
	UserAgent       string
}

type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	policy   *user.SecurityPolicy
	recorder audit.Recorder
	logger   logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	policy *user.SecurityPolicy,
	recorder audit.Recorder,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		policy:   policy,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	newPassword, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	// A wrong current password is a plain validation failure; it does not
	// count toward the login lockout.
	if err := uc.hasher.Verify(cmd.CurrentPassword, u.PasswordHash()); err != nil {
		return errors.NewBadRequestError("current password is incorrect")
	}

	if err := u.SetPassword(newPassword, uc.hasher); err != nil {
		uc.logger.Errorw("failed to hash new password", "user_id", u.ID(), "error", err)
		return errors.NewInternalError("password change failed")
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist password change", "user_id", u.ID(), "error", err)
		return err
	}

	uc.recorder.Record(ctx, audit.NewEntry(
		u.ID(),
		constants.AuditActionPasswordChange,
		"user",
		u.ID(),
		nil,
		cmd.IP,
		cmd.UserAgent,
	))

	uc.logger.Infow("password changed", "user_id", u.ID())
	return nil
}
