package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

// phoneRegex matches mainland mobile numbers, the only format the campus
// directory accepts.
var phoneRegex = regexp.MustCompile(`^1[3-9]\d{9}$`)

// Phone represents an optional contact phone number.
type Phone struct {
	value string
}

// NewPhone creates a new Phone value object with validation
func NewPhone(value string) (*Phone, error) {
	normalized := strings.TrimSpace(value)

	if normalized == "" {
		return nil, fmt.Errorf("phone cannot be empty")
	}

	if !phoneRegex.MatchString(normalized) {
		return nil, fmt.Errorf("invalid phone format")
	}

	return &Phone{value: normalized}, nil
}

// String returns the string representation of the phone number
func (p *Phone) String() string {
	return p.value
}
