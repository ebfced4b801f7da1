package utils

import (
	"regexp"
	"strings"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9 -]+`)
	slugSpaces     = regexp.MustCompile(`\s+`)
	slugHyphens    = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe slug from a post title.
// "Getting Started: A Student's Journey!" -> "getting-started-a-students-journey"
func GenerateSlug(input string) string {
	slug := strings.ToLower(input)

	// Strip everything outside [a-z0-9 -] before touching whitespace,
	// so punctuation never turns into a stray hyphen.
	slug = slugDisallowed.ReplaceAllString(slug, "")

	slug = slugSpaces.ReplaceAllString(slug, "-")
	slug = slugHyphens.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}
