// utils/validation.go
package utils

import (
	"regexp"
	"time"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate checks that a string is a real calendar date in ISO
// form (YYYY-MM-DD)
func ValidateDate(date string) bool {
	if !dateRegex.MatchString(date) {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
