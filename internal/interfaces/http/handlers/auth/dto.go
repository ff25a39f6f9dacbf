package auth

import (
	"campusvoice/internal/application/user/usecases"
)

type RegisterRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
}

func (r *RegisterRequest) ToCommand(ip, userAgent string) usecases.RegisterCommand {
	return usecases.RegisterCommand{
		StudentID: r.StudentID,
		Password:  r.Password,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		IP:        ip,
		UserAgent: userAgent,
	}
}

type LoginRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type RegisterResponse struct {
	UserID    uint   `json:"user_id"`
	StudentID string `json:"student_id"`
}

type LoginResponse struct {
	Token string               `json:"token"`
	User  usecases.UserSummary `json:"user"`
}
