package usecases

import (
	"context"

	"campusvoice/internal/domain/feedback"
	vo "campusvoice/internal/domain/feedback/valueobjects"
	"campusvoice/internal/shared/logger"
)

type StatsResult struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByCategory map[string]int64 `json:"by_category"`
}

type GetStatsUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewGetStatsUseCase(feedbackRepo feedback.Repository, logger logger.Interface) *GetStatsUseCase {
	return &GetStatsUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// Execute returns dashboard counts. Every status and category appears in the
// result, zero-filled when no tickets match.
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*StatsResult, error) {
	stats, err := uc.feedbackRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load feedback stats", "error", err)
		return nil, err
	}

	result := &StatsResult{
		Total:      stats.Total,
		ByStatus:   make(map[string]int64, len(vo.AllStatuses())),
		ByCategory: make(map[string]int64, len(vo.AllCategories())),
	}

	for _, s := range vo.AllStatuses() {
		result.ByStatus[s.String()] = stats.ByStatus[s]
	}
	for _, c := range vo.AllCategories() {
		result.ByCategory[c.String()] = stats.ByCategory[c]
	}

	return result, nil
}
