package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	PasswordMinLength = 8

	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// ValidEmail reports whether the value looks like an email address.
func ValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// ValidPassword reports whether the value satisfies the password policy.
func ValidPassword(value string) bool {
	return len(value) >= PasswordMinLength
}

// ValidName reports whether the value satisfies name length limits.
func ValidName(value string) bool {
	return len(value) >= NameMinLength && len(value) <= NameMaxLength
}
