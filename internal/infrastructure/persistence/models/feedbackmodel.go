package models

type FeedbackModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:100;not null"`
	Content     string `gorm:"type:text;not null"`
	Category    string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	IsAnonymous bool   `gorm:"not null;default:false"`
	AuthorID    uint   `gorm:"not null;index"`
	ResolvedAt  *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (FeedbackModel) TableName() string {
	return "feedbacks"
}

type FeedbackResponseModel struct {
	ID         uint   `gorm:"primaryKey"`
	FeedbackID uint   `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	AdminID    uint   `gorm:"not null;index"`
	AdminName  string `gorm:"size:50;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (FeedbackResponseModel) TableName() string {
	return "feedback_responses"
}
