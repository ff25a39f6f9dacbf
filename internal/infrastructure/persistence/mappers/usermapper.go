package mappers

import (
	"fmt"
	"time"

	"campusvoice/internal/domain/user"
	vo "campusvoice/internal/domain/user/valueobjects"
	"campusvoice/internal/infrastructure/persistence/models"
	"campusvoice/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:                  u.ID(),
		StudentID:           u.StudentID().String(),
		Email:               u.Email().String(),
		Name:                u.Name().String(),
		PasswordHash:        u.PasswordHash(),
		Role:                u.Role().String(),
		IsActive:            u.IsActive(),
		FailedLoginAttempts: u.FailedLoginAttempts(),
		CreatedAt:           u.CreatedAt().UnixMilli(),
		UpdatedAt:           u.UpdatedAt().UnixMilli(),
	}

	if u.Phone() != nil {
		model.Phone = u.Phone().String()
	}

	if u.LastLoginAt() != nil {
		ts := u.LastLoginAt().UnixMilli()
		model.LastLoginAt = &ts
	}

	if u.LockedUntil() != nil {
		ts := u.LockedUntil().UnixMilli()
		model.LockedUntil = &ts
	}

	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	studentID, err := vo.NewStudentID(model.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to map student id (id=%d): %w", model.ID, err)
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to map email (id=%d): %w", model.ID, err)
	}

	name, err := vo.NewName(model.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to map name (id=%d): %w", model.ID, err)
	}

	var phone *vo.Phone
	if model.Phone != "" {
		phone, err = vo.NewPhone(model.Phone)
		if err != nil {
			return nil, fmt.Errorf("failed to map phone (id=%d): %w", model.ID, err)
		}
	}

	authData := &user.AuthData{
		PasswordHash:        model.PasswordHash,
		FailedLoginAttempts: model.FailedLoginAttempts,
	}
	if model.LastLoginAt != nil {
		t := millisToTime(*model.LastLoginAt)
		authData.LastLoginAt = &t
	}
	if model.LockedUntil != nil {
		t := millisToTime(*model.LockedUntil)
		authData.LockedUntil = &t
	}

	return user.ReconstructUser(
		model.ID,
		studentID,
		email,
		name,
		phone,
		authorization.ParseRole(model.Role),
		model.IsActive,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		authData,
	)
}

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis)
}
