package usecases

import (
	"context"

	"campusvoice/internal/domain/audit"
	"campusvoice/internal/domain/user"
	vo "campusvoice/internal/domain/user/valueobjects"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/constants"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

// Sanitizer strips markup from user-submitted text.
type Sanitizer interface {
	Clean(input string) string
}

type RegisterCommand struct {
	StudentID string
	Password  string
	Name      string
	Email     string
	Phone     string
	IP        string
	UserAgent string
}

type RegisterResult struct {
	UserID    uint
	StudentID string
}

type RegisterUseCase struct {
	userRepo  user.Repository
	hasher    user.PasswordHasher
	sanitizer Sanitizer
	recorder  audit.Recorder
	logger    logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	sanitizer Sanitizer,
	recorder audit.Recorder,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		sanitizer: sanitizer,
		recorder:  recorder,
		logger:    logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	uc.logger.Infow("executing register use case", "student_id", cmd.StudentID)

	studentID, err := vo.NewStudentID(uc.sanitizer.Clean(cmd.StudentID))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	email, err := vo.NewEmail(uc.sanitizer.Clean(cmd.Email))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	name, err := vo.NewName(uc.sanitizer.Clean(cmd.Name))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var phone *vo.Phone
	if cmd.Phone != "" {
		phone, err = vo.NewPhone(uc.sanitizer.Clean(cmd.Phone))
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Report which field collides so the client can show a precise hint.
	if taken, err := uc.userRepo.ExistsByStudentID(ctx, studentID.String()); err != nil {
		return nil, err
	} else if taken {
		return nil, errors.NewConflictError("student id already registered")
	}

	if taken, err := uc.userRepo.ExistsByEmail(ctx, email.String()); err != nil {
		return nil, err
	} else if taken {
		return nil, errors.NewConflictError("email already registered")
	}

	newUser, err := user.NewUser(studentID, email, name, phone, authorization.RoleStudent)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(password, uc.hasher); err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("registration failed")
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "student_id", studentID.String(), "error", err)
		return nil, err
	}

	uc.recorder.Record(ctx, audit.NewEntry(
		newUser.ID(),
		constants.AuditActionRegister,
		"user",
		newUser.ID(),
		map[string]any{"student_id": studentID.String()},
		cmd.IP,
		cmd.UserAgent,
	))

	uc.logger.Infow("user registered", "user_id", newUser.ID())

	return &RegisterResult{
		UserID:    newUser.ID(),
		StudentID: studentID.String(),
	}, nil
}
