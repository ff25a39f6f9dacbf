package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var priorityWeights = map[Priority]int{
	PriorityLow:    1,
	PriorityNormal: 2,
	PriorityHigh:   3,
	PriorityUrgent: 4,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	_, ok := priorityWeights[p]
	return ok
}

// Weight returns the ordering weight used for triage sorting; higher means
// more urgent.
func (p Priority) Weight() int {
	return priorityWeights[p]
}

// NewPriority parses and validates a priority string
func NewPriority(value string) (Priority, error) {
	p := Priority(value)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", value)
	}
	return p, nil
}

// AllPriorities returns every valid priority from least to most urgent.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}
}
