package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusvoice/internal/domain/feedback"
	vo "campusvoice/internal/domain/feedback/valueobjects"
	"campusvoice/internal/domain/user"
	"campusvoice/internal/infrastructure/sanitize"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/constants"
	apperrors "campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

func pendingFeedback(t *testing.T, id, authorID uint, anonymous bool) *feedback.Feedback {
	t.Helper()
	fb, err := feedback.NewFeedback("title", "content", vo.CategoryAcademic, vo.PriorityNormal, anonymous, authorID)
	require.NoError(t, err)
	fb.SetID(id)
	return fb
}

func TestUpdateStatusUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()
	policy := feedback.NewPermissiveTransitionPolicy()
	admin := testUser(t, 2, "20230002", "Admin Chen", authorization.RoleAdmin)
	author := testUser(t, 7, "20230007", "Li Ming", authorization.RoleStudent)

	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if id == 2 {
				return admin, nil
			}
			return author, nil
		},
	}

	t.Run("updates status and appends sanitized response", func(t *testing.T) {
		fb := pendingFeedback(t, 10, 7, false)
		var updated *feedback.Feedback
		feedbackRepo := &mockFeedbackRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*feedback.Feedback, error) {
				return fb, nil
			},
			UpdateFunc: func(ctx context.Context, f *feedback.Feedback) error {
				updated = f
				return nil
			},
		}
		recorder := &mockRecorder{}

		uc := NewUpdateStatusUseCase(feedbackRepo, userRepo, policy, sanitize.NewSanitizer(), passthroughTxManager{}, recorder, log)
		result, err := uc.Execute(context.Background(), UpdateStatusCommand{
			FeedbackID: 10,
			NewStatus:  "processing",
			Response:   "<b>We are on it.</b>",
			AdminID:    2,
			IP:         "10.0.0.2",
			UserAgent:  "go-test",
		})
		require.NoError(t, err)

		assert.Equal(t, "processing", result.Status)
		require.Len(t, result.Responses, 1)
		assert.Equal(t, "We are on it.", result.Responses[0].Content)
		assert.Equal(t, "Admin Chen", result.Responses[0].AdminName)
		require.NotNil(t, updated)

		entries := recorder.recorded()
		require.Len(t, entries, 1)
		assert.Equal(t, constants.AuditActionUpdateStatus, entries[0].Action)
		assert.Equal(t, "pending", entries[0].Details["from"])
		assert.Equal(t, "processing", entries[0].Details["to"])
	})

	t.Run("resolving stamps resolvedAt", func(t *testing.T) {
		fb := pendingFeedback(t, 11, 7, false)
		feedbackRepo := &mockFeedbackRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*feedback.Feedback, error) {
				return fb, nil
			},
		}

		uc := NewUpdateStatusUseCase(feedbackRepo, userRepo, policy, sanitize.NewSanitizer(), passthroughTxManager{}, &mockRecorder{}, log)
		result, err := uc.Execute(context.Background(), UpdateStatusCommand{
			FeedbackID: 11,
			NewStatus:  "resolved",
			AdminID:    2,
		})
		require.NoError(t, err)

		assert.Equal(t, "resolved", result.Status)
		assert.NotNil(t, result.ResolvedAt)
	})

	t.Run("anonymous author stays visible to acting admin", func(t *testing.T) {
		fb := pendingFeedback(t, 12, 7, true)
		feedbackRepo := &mockFeedbackRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*feedback.Feedback, error) {
				return fb, nil
			},
		}

		uc := NewUpdateStatusUseCase(feedbackRepo, userRepo, policy, sanitize.NewSanitizer(), passthroughTxManager{}, &mockRecorder{}, log)
		result, err := uc.Execute(context.Background(), UpdateStatusCommand{
			FeedbackID: 12,
			NewStatus:  "rejected",
			AdminID:    2,
		})
		require.NoError(t, err)

		assert.True(t, result.IsAnonymous)
		assert.Equal(t, "20230007", result.Author.StudentID)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		uc := NewUpdateStatusUseCase(&mockFeedbackRepository{}, userRepo, policy, sanitize.NewSanitizer(), passthroughTxManager{}, &mockRecorder{}, log)

		_, err := uc.Execute(context.Background(), UpdateStatusCommand{
			FeedbackID: 13,
			NewStatus:  "archived",
			AdminID:    2,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("missing feedback propagates not found", func(t *testing.T) {
		feedbackRepo := &mockFeedbackRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*feedback.Feedback, error) {
				return nil, apperrors.NewNotFoundError("feedback not found")
			},
		}
		uc := NewUpdateStatusUseCase(feedbackRepo, userRepo, policy, sanitize.NewSanitizer(), passthroughTxManager{}, &mockRecorder{}, log)

		_, err := uc.Execute(context.Background(), UpdateStatusCommand{
			FeedbackID: 999,
			NewStatus:  "processing",
			AdminID:    2,
		})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
