// Package dto shapes feedback aggregates for API responses, applying the
// anonymity redaction rules for the requesting viewer.
package dto

import (
	"time"

	"campusvoice/internal/domain/feedback"
	"campusvoice/internal/domain/user"
	"campusvoice/internal/shared/constants"
)

type AuthorDTO struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
}

type ResponseDTO struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	AdminName string    `json:"admin_name"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedbackDTO struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	Category    string        `json:"category"`
	Priority    string        `json:"priority"`
	Status      string        `json:"status"`
	IsAnonymous bool          `json:"is_anonymous"`
	Author      AuthorDTO     `json:"author"`
	Responses   []ResponseDTO `json:"responses"`
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// FromFeedback builds a DTO for the given viewer. When redact is true the
// author identity is replaced with the anonymous placeholder.
func FromFeedback(fb *feedback.Feedback, author *user.User, redact bool) *FeedbackDTO {
	out := &FeedbackDTO{
		ID:          fb.ID(),
		Title:       fb.Title(),
		Content:     fb.Content(),
		Category:    fb.Category().String(),
		Priority:    fb.Priority().String(),
		Status:      fb.Status().String(),
		IsAnonymous: fb.IsAnonymous(),
		Responses:   make([]ResponseDTO, 0, len(fb.Responses())),
		ResolvedAt:  fb.ResolvedAt(),
		CreatedAt:   fb.CreatedAt(),
		UpdatedAt:   fb.UpdatedAt(),
	}

	if redact {
		out.Author = AuthorDTO{
			StudentID: constants.AnonymousStudentID,
			Name:      constants.AnonymousName,
		}
	} else if author != nil {
		out.Author = AuthorDTO{
			StudentID: author.StudentID().String(),
			Name:      author.Name().String(),
		}
	}

	for _, r := range fb.Responses() {
		out.Responses = append(out.Responses, ResponseDTO{
			ID:        r.ID(),
			Content:   r.Content(),
			AdminName: r.AdminName(),
			CreatedAt: r.CreatedAt(),
		})
	}

	return out
}
