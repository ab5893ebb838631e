package validation

import (
	"regexp"
	"strings"
)

// Validator provides common validation utilities
type Validator struct {
	dateRegex  *regexp.Regexp
	clockRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		dateRegex:  regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		clockRegex: regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidDate checks if a string is a calendar day in YYYY-MM-DD form
func (v *Validator) IsValidDate(s string) bool {
	return v.dateRegex.MatchString(s)
}

// IsValidClock checks if a string is a wall-clock time of day in HH:MM form
func (v *Validator) IsValidClock(s string) bool {
	return v.clockRegex.MatchString(s)
}

// IsValidKey checks if an entry key is valid (positive)
func (v *Validator) IsValidKey(key int64) bool {
	return key > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
