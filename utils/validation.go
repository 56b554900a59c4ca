// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// ValidatePhone checks a phone number after stripping common formatting
// characters. Accepts an optional + prefix and 7-15 digits.
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phoneRe.MatchString(cleaned)
}
