package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"campusvoice/internal/domain/audit"
	"campusvoice/internal/infrastructure/persistence/models"
	"campusvoice/internal/shared/db"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(database *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: database}
}

func (r *AuditLogRepository) Create(ctx context.Context, entry *audit.Entry) error {
	model := &models.AuditLogModel{
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		Resource:   entry.Resource,
		ResourceID: entry.ResourceID,
		IP:         entry.IP,
		UserAgent:  entry.UserAgent,
		CreatedAt:  entry.CreatedAt.UnixMilli(),
	}

	if len(entry.Details) > 0 {
		detailsJSON, err := json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal audit details: %w", err)
		}
		model.Details = string(detailsJSON)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}

	entry.ID = model.ID
	return nil
}
