package audit

import "time"

// Entry is a single append-only audit record. Entries are never updated or
// deleted once written.
type Entry struct {
	ID         uint
	ActorID    uint
	Action     string
	Resource   string
	ResourceID uint
	Details    map[string]any
	IP         string
	UserAgent  string
	CreatedAt  time.Time
}

// NewEntry builds an audit entry stamped with the current time.
func NewEntry(actorID uint, action, resource string, resourceID uint, details map[string]any, ip, userAgent string) *Entry {
	return &Entry{
		ActorID:    actorID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    details,
		IP:         ip,
		UserAgent:  userAgent,
		CreatedAt:  time.Now(),
	}
}
