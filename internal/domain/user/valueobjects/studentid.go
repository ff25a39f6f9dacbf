package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

// studentIDRegex matches the campus student number format: 8 to 12 digits.
var studentIDRegex = regexp.MustCompile(`^\d{8,12}$`)

// StudentID represents the unique campus identifier used for login.
type StudentID struct {
	value string
}

// NewStudentID creates a new StudentID value object with validation
func NewStudentID(value string) (*StudentID, error) {
	normalized := strings.TrimSpace(value)

	if normalized == "" {
		return nil, fmt.Errorf("student id cannot be empty")
	}

	if !studentIDRegex.MatchString(normalized) {
		return nil, fmt.Errorf("student id must be 8 to 12 digits")
	}

	return &StudentID{value: normalized}, nil
}

// String returns the string representation of the student id
func (s *StudentID) String() string {
	return s.value
}

// Equals checks if two student ids are equal
func (s *StudentID) Equals(other *StudentID) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.value == other.value
}
