// Package dates provides canonical date parsing and validation helpers.
//
// Property values classified as dates are stored as plain YYYY-MM-DD
// strings, so every component that needs to recognize or format a date
// goes through this package.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the canonical date format for property values.
const DateLayout = "2006-01-02"

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// MatchesDateShape reports whether a string has the YYYY-MM-DD shape.
// It does not check calendar validity; use IsValidDate for that.
func MatchesDateShape(s string) bool {
	return dateRegex.MatchString(s)
}

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.Parse(DateLayout, s)
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
