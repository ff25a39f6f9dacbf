package models

type UserModel struct {
	ID                  uint   `gorm:"primaryKey"`
	StudentID           string `gorm:"uniqueIndex;size:12;not null"`
	Email               string `gorm:"uniqueIndex;size:255;not null"`
	Name                string `gorm:"size:50;not null"`
	Phone               string `gorm:"size:20"`
	PasswordHash        string `gorm:"size:255;not null"`
	Role                string `gorm:"size:20;not null;default:student;index"`
	IsActive            bool   `gorm:"not null;default:true"`
	LastLoginAt         *int64
	FailedLoginAttempts int `gorm:"not null;default:0"`
	LockedUntil         *int64
	CreatedAt           int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}
