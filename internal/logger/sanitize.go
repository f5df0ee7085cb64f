package logger

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxTitleLength bounds user-supplied titles (tasks, habits, notes) in logs
	MaxTitleLength = 200
	// MaxErrorMessageLength bounds error messages in logs
	MaxErrorMessageLength = 1000
)

// SanitizeString removes control characters, validates UTF-8, and truncates
// to maxLength so user-supplied text is safe to place in log fields.
func SanitizeString(s string, maxLength int) string {
	if s == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = MaxTitleLength
	}
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}

	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsPrint(r) || r == ' ' || r == '\t' {
			builder.WriteRune(r)
		}
	}
	s = builder.String()

	if len(s) > maxLength {
		s = s[:maxLength] + "..."
	}
	return s
}

// SanitizeTitle sanitizes a task, habit, or note title for logging.
func SanitizeTitle(title string) string {
	return SanitizeString(title, MaxTitleLength)
}

// SanitizeError sanitizes an error message for logging.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeString(err.Error(), MaxErrorMessageLength)
}
