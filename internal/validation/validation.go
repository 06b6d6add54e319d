// Package validation holds the field rules shared by the booking and people
// write paths. Request-shape validation is handled by gin binding tags; these
// cover the rules that need specific messages or date arithmetic.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Permissive phone shape: optional leading +, then digits, spaces,
	// hyphens, dots and parentheses, at least 10 characters of it.
	phoneRe = regexp.MustCompile(`^\+?[\d\s\-().]{10,}$`)
	timeRe  = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)
)

func ValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

func ValidPhone(phone string) bool {
	return phoneRe.MatchString(strings.TrimSpace(phone))
}

// ValidTime accepts 24-hour "HH:MM" with hour 0-23 and minute 0-59.
func ValidTime(t string) bool {
	return timeRe.MatchString(t)
}

// MaskPhone hides all but the last four characters of a phone number for log
// output.
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}

// ParseFutureDate parses an ISO date and rejects dates earlier than today.
// Time-of-day is ignored; both sides are compared at midnight.
func ParseFutureDate(date string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected YYYY-MM-DD")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.Before(today) {
		return time.Time{}, fmt.Errorf("date cannot be in the past")
	}
	return parsed, nil
}
