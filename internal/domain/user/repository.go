package user

import "context"

// Repository defines the interface for account data operations
type Repository interface {
	// Create creates a new account
	Create(ctx context.Context, user *User) error

	// Update updates an existing account
	Update(ctx context.Context, user *User) error

	// GetByID retrieves an account by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByIDs retrieves multiple accounts by internal IDs
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)

	// GetByStudentID retrieves an account by student ID
	GetByStudentID(ctx context.Context, studentID string) (*User, error)

	// ExistsByStudentID checks if an account exists with the given student ID
	ExistsByStudentID(ctx context.Context, studentID string) (bool, error)

	// ExistsByEmail checks if an account exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
