package valueobjects

import "fmt"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusResolved   Status = "resolved"
	StatusRejected   Status = "rejected"
)

var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusResolved:   true,
	StatusRejected:   true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// IsTerminal reports whether the status ends the triage workflow.
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// NewStatus parses and validates a status string
func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid status: %s", value)
	}
	return s, nil
}

// AllStatuses returns every valid status in workflow order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusResolved, StatusRejected}
}
