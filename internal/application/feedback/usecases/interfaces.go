package usecases

import (
	"context"

	"campusvoice/internal/application/feedback/dto"
)

type CreateFeedbackExecutor interface {
	Execute(ctx context.Context, cmd CreateFeedbackCommand) (*dto.FeedbackDTO, error)
}

type GetFeedbackExecutor interface {
	Execute(ctx context.Context, query GetFeedbackQuery) (*dto.FeedbackDTO, error)
}

type ListMyFeedbackExecutor interface {
	Execute(ctx context.Context, query ListMyFeedbackQuery) (*ListFeedbackResult, error)
}

type ListAllFeedbackExecutor interface {
	Execute(ctx context.Context, query ListAllFeedbackQuery) (*ListFeedbackResult, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.FeedbackDTO, error)
}

type GetStatsExecutor interface {
	Execute(ctx context.Context) (*StatsResult, error)
}
