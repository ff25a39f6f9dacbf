package usecases

import (
	"context"

	"campusvoice/internal/domain/audit"
	"campusvoice/internal/domain/user"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/constants"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

// TokenIssuer signs an authentication token for a verified account.
type TokenIssuer interface {
	Generate(userID uint, role authorization.Role) (string, error)
}

type LoginCommand struct {
	StudentID string
	Password  string
	IP        string
	UserAgent string
}

type LoginResult struct {
	Token string
	User  UserSummary
}

type UserSummary struct {
	ID        uint   `json:"id"`
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	policy   *user.SecurityPolicy
	issuer   TokenIssuer
	recorder audit.Recorder
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	policy *user.SecurityPolicy,
	issuer TokenIssuer,
	recorder audit.Recorder,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		policy:   policy,
		issuer:   issuer,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.StudentID == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("student id and password are required")
	}

	u, err := uc.userRepo.GetByStudentID(ctx, cmd.StudentID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same message as a wrong password so callers cannot probe for
			// registered student ids.
			return nil, errors.NewInvalidCredentialsError()
		}
		return nil, err
	}

	if u.IsLocked() {
		uc.logger.Warnw("login attempt on locked account", "user_id", u.ID(), "ip", cmd.IP)
		return nil, errors.NewAccountLockedError()
	}

	if !u.IsActive() {
		return nil, errors.NewAccountInactiveError()
	}

	if err := u.VerifyPassword(cmd.Password, uc.hasher, uc.policy); err != nil {
		// Persist the incremented attempt counter and any new lock.
		if saveErr := uc.userRepo.Update(ctx, u); saveErr != nil {
			uc.logger.Errorw("failed to persist failed login attempt", "user_id", u.ID(), "error", saveErr)
		}
		uc.logger.Warnw("failed login attempt",
			"user_id", u.ID(), "attempts", u.FailedLoginAttempts(), "ip", cmd.IP)
		return nil, errors.NewInvalidCredentialsError()
	}

	u.StampLastLogin()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist login state", "user_id", u.ID(), "error", err)
		return nil, err
	}

	token, err := uc.issuer.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("login failed")
	}

	uc.recorder.Record(ctx, audit.NewEntry(
		u.ID(),
		constants.AuditActionLogin,
		"user",
		u.ID(),
		nil,
		cmd.IP,
		cmd.UserAgent,
	))

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())

	return &LoginResult{
		Token: token,
		User: UserSummary{
			ID:        u.ID(),
			StudentID: u.StudentID().String(),
			Name:      u.Name().String(),
			Email:     u.Email().String(),
			Role:      u.Role().String(),
		},
	}, nil
}
