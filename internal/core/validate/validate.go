// Package validate holds the field-level and cross-field validation rules
// that are business rules rather than request-shape checks: email and
// username formats, and calendar date range logic. Request-shape validation
// (required fields, numeric types) stays at the HTTP boundary.
package validate

import (
	"fmt"
	"regexp"
	"time"

	"github.com/planventure/planventure-api/internal/core/domain"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// usernamePattern covers the character rules; length and the no-second-
// underscore rule are enforced separately because RE2 has no lookahead.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Email reports whether s has the conventional local@domain.tld shape with an
// alphabetic top-level segment of at least two characters.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Username reports whether s is a valid username: 3-16 characters, starting
// with a letter or a single underscore, with the second character never an
// underscore, and the rest alphanumeric or underscore.
func Username(s string) bool {
	if len(s) < 3 || len(s) > 16 {
		return false
	}
	if !usernamePattern.MatchString(s) {
		return false
	}
	return s[1] != '_'
}

// ParseDate parses a calendar date in the fixed YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return t, nil
}

// DateRange parses both dates and checks that start strictly precedes end.
func DateRange(start, end string) (time.Time, time.Time, error) {
	s, err := ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !s.Before(e) {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateRange
	}
	return s, e, nil
}
