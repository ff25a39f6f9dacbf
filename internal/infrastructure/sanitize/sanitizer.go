package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup from user-submitted text before it reaches the
// domain layer or persistence.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a sanitizer that removes all HTML tags, keeping only
// the text content.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean strips tags and trims surrounding whitespace.
func (s *Sanitizer) Clean(input string) string {
	return strings.TrimSpace(s.policy.Sanitize(input))
}
