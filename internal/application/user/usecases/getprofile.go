package usecases

import (
	"context"

	"campusvoice/internal/domain/user"
	"campusvoice/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*UserSummary, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	return &UserSummary{
		ID:        u.ID(),
		StudentID: u.StudentID().String(),
		Name:      u.Name().String(),
		Email:     u.Email().String(),
		Role:      u.Role().String(),
	}, nil
}
