package usecases

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"campusvoice/internal/domain/audit"
	"campusvoice/internal/domain/user"
	vo "campusvoice/internal/domain/user/valueobjects"
	"campusvoice/internal/shared/authorization"
)

type mockUserRepository struct {
	CreateFunc            func(ctx context.Context, u *user.User) error
	UpdateFunc            func(ctx context.Context, u *user.User) error
	GetByIDFunc           func(ctx context.Context, id uint) (*user.User, error)
	GetByIDsFunc          func(ctx context.Context, ids []uint) ([]*user.User, error)
	GetByStudentIDFunc    func(ctx context.Context, studentID string) (*user.User, error)
	ExistsByStudentIDFunc func(ctx context.Context, studentID string) (bool, error)
	ExistsByEmailFunc     func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByStudentID(ctx context.Context, studentID string) (*user.User, error) {
	if m.GetByStudentIDFunc != nil {
		return m.GetByStudentIDFunc(ctx, studentID)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	if m.ExistsByStudentIDFunc != nil {
		return m.ExistsByStudentIDFunc(ctx, studentID)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (mockHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type mockIssuer struct {
	GenerateFunc func(userID uint, role authorization.Role) (string, error)
}

func (m *mockIssuer) Generate(userID uint, role authorization.Role) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return "token", nil
}

type mockRecorder struct {
	mu      sync.Mutex
	entries []*audit.Entry
}

func (m *mockRecorder) Record(ctx context.Context, entry *audit.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
}

func (m *mockRecorder) recorded() []*audit.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*audit.Entry(nil), m.entries...)
}

type passthroughSanitizer struct{}

func (passthroughSanitizer) Clean(input string) string { return input }

func registeredUser(t *testing.T, id uint, studentID, password string) *user.User {
	t.Helper()
	sid, err := vo.NewStudentID(studentID)
	require.NoError(t, err)
	email, err := vo.NewEmail(studentID + "@example.com")
	require.NoError(t, err)
	name, err := vo.NewName("Test Student")
	require.NoError(t, err)

	u, err := user.NewUser(sid, email, name, nil, authorization.RoleStudent)
	require.NoError(t, err)
	u.SetID(id)

	pw, err := vo.NewPassword(password)
	require.NoError(t, err)
	require.NoError(t, u.SetPassword(pw, mockHasher{}))

	return u
}
