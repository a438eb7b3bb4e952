package domain

import (
	"regexp"
	"strings"
)

// NormalizeText prepares multi-line text for persistence:
//   - each line has whitespace runs collapsed to one space and is trimmed
//   - line breaks are preserved in number and order
//
// Case, diacritics and punctuation are preserved.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}

// FirstLine returns the first line of text that is not blank, trimmed.
// Returns "" when every line is blank.
func FirstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugDashRuns     = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe identifier: lowercase, only [a-z0-9-], words
// joined by single hyphens, no leading or trailing hyphen. Text without any
// latin letters or digits yields "".
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugDashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsSlug reports whether s is already in slug form.
func IsSlug(s string) bool {
	return s != "" && Slugify(s) == s
}
