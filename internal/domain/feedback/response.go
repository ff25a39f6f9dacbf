package feedback

import (
	"fmt"
	"time"
)

const maxResponseLength = 2000

// Response is an immutable reply appended to a feedback ticket during a
// status update. The admin name is snapshotted at write time so the thread
// stays readable even if the account is later renamed or removed.
type Response struct {
	id        uint
	content   string
	adminID   uint
	adminName string
	createdAt time.Time
}

func NewResponse(content string, adminID uint, adminName string) (*Response, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("response content is required")
	}
	if len(content) > maxResponseLength {
		return nil, fmt.Errorf("response exceeds maximum length of %d characters", maxResponseLength)
	}
	if adminID == 0 {
		return nil, fmt.Errorf("admin ID is required")
	}

	return &Response{
		content:   content,
		adminID:   adminID,
		adminName: adminName,
		createdAt: time.Now(),
	}, nil
}

func ReconstructResponse(id uint, content string, adminID uint, adminName string, createdAt time.Time) *Response {
	return &Response{
		id:        id,
		content:   content,
		adminID:   adminID,
		adminName: adminName,
		createdAt: createdAt,
	}
}

// SetID assigns the persistence-generated identifier after the first save.
func (r *Response) SetID(id uint) {
	r.id = id
}

func (r *Response) ID() uint             { return r.id }
func (r *Response) Content() string      { return r.content }
func (r *Response) AdminID() uint        { return r.adminID }
func (r *Response) AdminName() string    { return r.adminName }
func (r *Response) CreatedAt() time.Time { return r.createdAt }
