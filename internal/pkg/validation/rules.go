package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Person/entity names allow Latin and Cyrillic letters, apostrophes,
	// hyphens and spaces. The admin form applies the same allow-list.
	NamePattern = `^[a-zA-Z\x{0400}-\x{04FF}' \-]+$`

	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Name  *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Name:  regexp.MustCompile(NamePattern),
}

// ValidEmail reports whether the value looks like an email address.
func ValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(strings.TrimSpace(value))
}

// ValidName reports whether the value fits the name allow-list and
// length bounds.
func ValidName(value string) bool {
	v := strings.TrimSpace(value)
	if len([]rune(v)) < NameMinLength || len([]rune(v)) > NameMaxLength {
		return false
	}
	return CompiledPatterns.Name.MatchString(v)
}

// CleanName removes characters outside the name allow-list. The admin
// modal performs the same shaping before submit; doing it server side
// keeps the stored value consistent regardless of client.
func CleanName(value string) string {
	var b strings.Builder
	for _, r := range value {
		if isNameRune(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 0x0400 && r <= 0x04FF: // Cyrillic block
		return true
	case r == ' ', r == '\'', r == '-':
		return true
	}
	return false
}
