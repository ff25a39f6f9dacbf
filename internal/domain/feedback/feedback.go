package feedback

import (
	"fmt"
	"time"

	vo "campusvoice/internal/domain/feedback/valueobjects"
)

const (
	maxTitleLength   = 100
	maxContentLength = 2000
)

// Feedback is the aggregate root for a submitted feedback ticket. Ownership
// is always recorded even for anonymous submissions; anonymity only affects
// how the ticket is presented to other viewers.
type Feedback struct {
	id          uint
	title       string
	content     string
	category    vo.Category
	priority    vo.Priority
	status      vo.Status
	isAnonymous bool
	authorID    uint
	responses   []*Response
	resolvedAt  *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewFeedback(
	title string,
	content string,
	category vo.Category,
	priority vo.Priority,
	isAnonymous bool,
	authorID uint,
) (*Feedback, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > maxContentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	now := time.Now()
	return &Feedback{
		title:       title,
		content:     content,
		category:    category,
		priority:    priority,
		status:      vo.StatusPending,
		isAnonymous: isAnonymous,
		authorID:    authorID,
		responses:   []*Response{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructFeedback(
	id uint,
	title string,
	content string,
	category vo.Category,
	priority vo.Priority,
	status vo.Status,
	isAnonymous bool,
	authorID uint,
	responses []*Response,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Feedback, error) {
	if id == 0 {
		return nil, fmt.Errorf("feedback ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	if responses == nil {
		responses = []*Response{}
	}

	return &Feedback{
		id:          id,
		title:       title,
		content:     content,
		category:    category,
		priority:    priority,
		status:      status,
		isAnonymous: isAnonymous,
		authorID:    authorID,
		responses:   responses,
		resolvedAt:  resolvedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (f *Feedback) ID() uint              { return f.id }
func (f *Feedback) Title() string         { return f.title }
func (f *Feedback) Content() string       { return f.content }
func (f *Feedback) Category() vo.Category { return f.category }
func (f *Feedback) Priority() vo.Priority { return f.priority }
func (f *Feedback) Status() vo.Status     { return f.status }
func (f *Feedback) IsAnonymous() bool     { return f.isAnonymous }
func (f *Feedback) AuthorID() uint        { return f.authorID }
func (f *Feedback) ResolvedAt() *time.Time {
	return f.resolvedAt
}
func (f *Feedback) CreatedAt() time.Time { return f.createdAt }
func (f *Feedback) UpdatedAt() time.Time { return f.updatedAt }

// Responses returns a copy of the response thread in insertion order.
func (f *Feedback) Responses() []*Response {
	out := make([]*Response, len(f.responses))
	copy(out, f.responses)
	return out
}

// SetID assigns the persistence-generated identifier after the first save.
func (f *Feedback) SetID(id uint) {
	f.id = id
}

// IsOwnedBy reports whether the given user authored this feedback.
func (f *Feedback) IsOwnedBy(userID uint) bool {
	return f.authorID == userID
}

// ApplyStatusUpdate moves the feedback to newStatus and optionally appends a
// response from the acting admin. Entering resolved stamps resolvedAt with
// the current time, overwriting any earlier resolution timestamp.
func (f *Feedback) ApplyStatusUpdate(newStatus vo.Status, response *Response, policy TransitionPolicy) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if err := policy.Validate(f.status, newStatus); err != nil {
		return err
	}

	now := time.Now()
	f.status = newStatus
	f.updatedAt = now

	if newStatus == vo.StatusResolved {
		f.resolvedAt = &now
	}

	if response != nil {
		f.responses = append(f.responses, response)
	}

	return nil
}
