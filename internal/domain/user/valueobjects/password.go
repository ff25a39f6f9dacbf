package valueobjects

import "fmt"

const minPasswordLength = 6

// Password represents a plaintext password being validated before hashing.
// It never leaves the application layer; only its hash is persisted.
type Password struct {
	value string
}

// NewPassword creates a new Password value object with validation
func NewPassword(value string) (*Password, error) {
	if len(value) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	return &Password{value: value}, nil
}

// String returns the raw password value
func (p *Password) String() string {
	return p.value
}
