package cli

import (
	"strings"
	"time"

	"github.com/pkordes/travel-journal/internal/domain"
)

// ParseDate converts a YYYY-MM-DD string into a calendar date.
// A blank string is a valid "no date" and returns (nil, true).
// Malformed input returns (nil, false); it never panics or errors.
func ParseDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return nil, false
	}
	return &t, true
}
