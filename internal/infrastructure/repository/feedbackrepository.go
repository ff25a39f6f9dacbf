package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campusvoice/internal/domain/feedback"
	vo "campusvoice/internal/domain/feedback/valueobjects"
	"campusvoice/internal/infrastructure/persistence/mappers"
	"campusvoice/internal/infrastructure/persistence/models"
	"campusvoice/internal/shared/db"
	apperrors "campusvoice/internal/shared/errors"
)

// priorityOrderExpr orders by semantic urgency rather than the string value.
// A CASE expression keeps the ordering portable across MySQL and SQLite.
const priorityOrderExpr = "CASE priority " +
	"WHEN 'urgent' THEN 4 " +
	"WHEN 'high' THEN 3 " +
	"WHEN 'normal' THEN 2 " +
	"WHEN 'low' THEN 1 " +
	"ELSE 0 END DESC"

type FeedbackRepository struct {
	db     *gorm.DB
	mapper mappers.FeedbackMapper
}

func NewFeedbackRepository(database *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		db:     database,
		mapper: mappers.NewFeedbackMapper(),
	}
}

func (r *FeedbackRepository) Save(ctx context.Context, fb *feedback.Feedback) error {
	model := r.mapper.ToModel(fb)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	fb.SetID(model.ID)
	return nil
}

// Update persists the current aggregate state and appends any responses not
// yet stored. Both writes run in one transaction.
func (r *FeedbackRepository) Update(ctx context.Context, fb *feedback.Feedback) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(inner *gorm.DB) error {
		model := r.mapper.ToModel(fb)

		result := inner.
			Model(&models.FeedbackModel{}).
			Where("id = ?", model.ID).
			Select("status", "resolved_at", "updated_at").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update feedback: %w", result.Error)
		}

		for _, resp := range fb.Responses() {
			if resp.ID() != 0 {
				continue
			}
			respModel := r.mapper.ResponseToModel(fb.ID(), resp)
			if err := inner.Create(respModel).Error; err != nil {
				return fmt.Errorf("failed to save feedback response: %w", err)
			}
			resp.SetID(respModel.ID)
		}

		return nil
	})
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id uint) (*feedback.Feedback, error) {
	var model models.FeedbackModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("feedback not found")
		}
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}

	responses, err := r.loadResponses(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, responses)
}

func (r *FeedbackRepository) List(ctx context.Context, filter feedback.Filter) ([]*feedback.Feedback, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.FeedbackModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	// The trailing id sort keeps page boundaries stable when many rows
	// share one timestamp.
	if filter.SortByPriority {
		query = query.Order(priorityOrderExpr).Order("created_at DESC").Order("id DESC")
	} else {
		query = query.Order("created_at DESC").Order("id DESC")
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var rows []models.FeedbackModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list feedback: %w", err)
	}

	out := make([]*feedback.Feedback, 0, len(rows))
	for i := range rows {
		responses, err := r.loadResponses(ctx, rows[i].ID)
		if err != nil {
			return nil, 0, err
		}
		fb, err := r.mapper.ToDomain(&rows[i], responses)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, fb)
	}

	return out, total, nil
}

func (r *FeedbackRepository) GetStats(ctx context.Context) (*feedback.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	stats := &feedback.Stats{
		ByStatus:   make(map[vo.Status]int64),
		ByCategory: make(map[vo.Category]int64),
	}

	if err := tx.Model(&models.FeedbackModel{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count feedback: %w", err)
	}

	type bucket struct {
		Bucket string
		Cnt    int64
	}

	var statusBuckets []bucket
	if err := tx.Model(&models.FeedbackModel{}).
		Select("status AS bucket, COUNT(*) AS cnt").
		Group("status").
		Scan(&statusBuckets).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate by status: %w", err)
	}
	for _, b := range statusBuckets {
		stats.ByStatus[vo.Status(b.Bucket)] = b.Cnt
	}

	var categoryBuckets []bucket
	if err := tx.Model(&models.FeedbackModel{}).
		Select("category AS bucket, COUNT(*) AS cnt").
		Group("category").
		Scan(&categoryBuckets).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate by category: %w", err)
	}
	for _, b := range categoryBuckets {
		stats.ByCategory[vo.Category(b.Bucket)] = b.Cnt
	}

	return stats, nil
}

func (r *FeedbackRepository) loadResponses(ctx context.Context, feedbackID uint) ([]*models.FeedbackResponseModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []*models.FeedbackResponseModel
	if err := tx.
		Where("feedback_id = ?", feedbackID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load feedback responses: %w", err)
	}

	return rows, nil
}
