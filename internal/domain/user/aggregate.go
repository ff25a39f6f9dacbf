package user

import (
	"fmt"
	"time"

	"campusvoice/internal/domain/user/valueobjects"
	"campusvoice/internal/shared/authorization"
)

// User represents the account aggregate root (pure domain model without persistence concerns)
type User struct {
	id                  uint
	studentID           *valueobjects.StudentID
	email               *valueobjects.Email
	name                *valueobjects.Name
	phone               *valueobjects.Phone
	passwordHash        string
	role                authorization.Role
	isActive            bool
	lastLoginAt         *time.Time
	failedLoginAttempts int
	lockedUntil         *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

// NewUser creates a new account with initial values. The password must be
// set separately through SetPassword before the account is persisted.
func NewUser(studentID *valueobjects.StudentID, email *valueobjects.Email, name *valueobjects.Name, phone *valueobjects.Phone, role authorization.Role) (*User, error) {
	if studentID == nil {
		return nil, fmt.Errorf("student id is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		studentID: studentID,
		email:     email,
		name:      name,
		phone:     phone,
		role:      role,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// AuthData carries the authentication state restored from persistence.
type AuthData struct {
	PasswordHash        string
	LastLoginAt         *time.Time
	FailedLoginAttempts int
	LockedUntil         *time.Time
}

// ReconstructUser reconstructs an account from persistence
func ReconstructUser(id uint, studentID *valueobjects.StudentID, email *valueobjects.Email, name *valueobjects.Name, phone *valueobjects.Phone, role authorization.Role, isActive bool, createdAt, updatedAt time.Time, authData *AuthData) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if studentID == nil {
		return nil, fmt.Errorf("student id is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}

	u := &User{
		id:        id,
		studentID: studentID,
		email:     email,
		name:      name,
		phone:     phone,
		role:      role,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}

	if authData != nil {
		u.passwordHash = authData.PasswordHash
		u.lastLoginAt = authData.LastLoginAt
		u.failedLoginAttempts = authData.FailedLoginAttempts
		u.lockedUntil = authData.LockedUntil
	}

	return u, nil
}

func (u *User) ID() uint                           { return u.id }
func (u *User) StudentID() *valueobjects.StudentID { return u.studentID }
func (u *User) Email() *valueobjects.Email         { return u.email }
func (u *User) Name() *valueobjects.Name           { return u.name }
func (u *User) Phone() *valueobjects.Phone         { return u.phone }
func (u *User) PasswordHash() string               { return u.passwordHash }
func (u *User) Role() authorization.Role           { return u.role }
func (u *User) IsActive() bool                     { return u.isActive }
func (u *User) LastLoginAt() *time.Time            { return u.lastLoginAt }
func (u *User) FailedLoginAttempts() int           { return u.failedLoginAttempts }
func (u *User) LockedUntil() *time.Time            { return u.lockedUntil }
func (u *User) CreatedAt() time.Time               { return u.createdAt }
func (u *User) UpdatedAt() time.Time               { return u.updatedAt }

// SetID assigns the persistence-generated identifier after the first save.
func (u *User) SetID(id uint) {
	u.id = id
}

// Deactivate disables the account without deleting it.
func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}

func timePtr(t time.Time) *time.Time {
	return &t
}
