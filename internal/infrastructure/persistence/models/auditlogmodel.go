package models

type AuditLogModel struct {
	ID         uint   `gorm:"primaryKey"`
	ActorID    uint   `gorm:"not null;index"`
	Action     string `gorm:"size:50;not null;index"`
	Resource   string `gorm:"size:50;not null"`
	ResourceID uint   `gorm:"index"`
	Details    string `gorm:"type:json"`
	IP         string `gorm:"size:45"`
	UserAgent  string `gorm:"size:255"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
