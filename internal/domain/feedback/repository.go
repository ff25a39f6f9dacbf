package feedback

import (
	"context"

	vo "campusvoice/internal/domain/feedback/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, fb *Feedback) error
	Update(ctx context.Context, fb *Feedback) error
	GetByID(ctx context.Context, id uint) (*Feedback, error)

	// List returns a page of feedback matching the filter plus the total
	// match count before pagination.
	List(ctx context.Context, filter Filter) ([]*Feedback, int64, error)

	// GetStats aggregates ticket counts for the triage dashboard.
	GetStats(ctx context.Context) (*Stats, error)
}

// Filter represents filtering and pagination options for feedback listings.
type Filter struct {
	Status   *vo.Status
	Category *vo.Category
	Priority *vo.Priority
	AuthorID *uint
	Page     int
	PageSize int

	// SortByPriority orders by priority weight descending before recency;
	// otherwise the listing is newest first.
	SortByPriority bool
}

// Stats holds aggregate counts for the admin dashboard.
type Stats struct {
	Total      int64
	ByStatus   map[vo.Status]int64
	ByCategory map[vo.Category]int64
}
