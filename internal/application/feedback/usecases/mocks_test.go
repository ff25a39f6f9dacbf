package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"campusvoice/internal/domain/audit"
	"campusvoice/internal/domain/feedback"
	"campusvoice/internal/domain/user"
	uservo "campusvoice/internal/domain/user/valueobjects"
	"campusvoice/internal/shared/authorization"
)

type mockFeedbackRepository struct {
	SaveFunc     func(ctx context.Context, fb *feedback.Feedback) error
	UpdateFunc   func(ctx context.Context, fb *feedback.Feedback) error
	GetByIDFunc  func(ctx context.Context, id uint) (*feedback.Feedback, error)
	ListFunc     func(ctx context.Context, filter feedback.Filter) ([]*feedback.Feedback, int64, error)
	GetStatsFunc func(ctx context.Context) (*feedback.Stats, error)
}

func (m *mockFeedbackRepository) Save(ctx context.Context, fb *feedback.Feedback) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, fb)
	}
	return nil
}

func (m *mockFeedbackRepository) Update(ctx context.Context, fb *feedback.Feedback) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, fb)
	}
	return nil
}

func (m *mockFeedbackRepository) GetByID(ctx context.Context, id uint) (*feedback.Feedback, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) List(ctx context.Context, filter feedback.Filter) ([]*feedback.Feedback, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockFeedbackRepository) GetStats(ctx context.Context) (*feedback.Stats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx)
	}
	return nil, nil
}

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

// mockRecorder captures audit entries synchronously for assertions.
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

// passthroughSanitizer trims nothing and strips nothing.
type passthroughSanitizer struct{}

func (passthroughSanitizer) Clean(input string) string { return input }

// passthroughTxManager runs the function without a real transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testGate(t *testing.T) *authorization.Gate {
	t.Helper()
	gate, err := authorization.NewGate()
	require.NoError(t, err)
	return gate
}

func testUser(t *testing.T, id uint, studentID, name string, role authorization.Role) *user.User {
	t.Helper()
	sid, err := uservo.NewStudentID(studentID)
	require.NoError(t, err)
	email, err := uservo.NewEmail(studentID + "@example.com")
	require.NoError(t, err)
	n, err := uservo.NewName(name)
	require.NoError(t, err)

	u, err := user.NewUser(sid, email, n, nil, role)
	require.NoError(t, err)
	u.SetID(id)
	return u
}
