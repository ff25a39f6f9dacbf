package feedback

import (
	vo "campusvoice/internal/domain/feedback/valueobjects"
)

// TransitionPolicy decides which status changes the triage workflow allows.
// The default policy permits any transition between valid statuses, including
// reopening a resolved ticket.
type TransitionPolicy interface {
	Validate(from, to vo.Status) error
}

type PermissiveTransitionPolicy struct{}

func NewPermissiveTransitionPolicy() *PermissiveTransitionPolicy {
	return &PermissiveTransitionPolicy{}
}

func (p *PermissiveTransitionPolicy) Validate(from, to vo.Status) error {
	return nil
}
