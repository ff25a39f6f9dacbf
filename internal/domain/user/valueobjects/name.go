package valueobjects

import (
	"fmt"
	"strings"
)

// Name represents a user's display name
type Name struct {
	value string
}

// NewName creates a new Name value object with validation
func NewName(value string) (*Name, error) {
	normalized := strings.TrimSpace(value)

	if normalized == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	if len(normalized) > 50 {
		return nil, fmt.Errorf("name cannot exceed 50 characters")
	}

	return &Name{value: normalized}, nil
}

// String returns the string representation of the name
func (n *Name) String() string {
	return n.value
}
