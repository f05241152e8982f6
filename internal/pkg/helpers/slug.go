package helpers

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugDashes       = regexp.MustCompile(`-+`)
	slugPattern      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// GenerateSlug lowercases s, drops everything outside [a-z0-9 -], turns whitespace
// runs into dashes and collapses repeated dashes. Leading and trailing dashes are trimmed.
func GenerateSlug(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugDashes.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// IsValidSlug reports whether s is already in canonical slug form
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// AssetKeyFor builds the media asset key convention "<prefix>_<name>" where name is
// lowercased and has whitespace runs replaced by a dash. Punctuation is kept, so
// "C++ Programming" maps to "<prefix>_c++-programming".
func AssetKeyFor(prefix, name string) string {
	return prefix + "_" + slugWhitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
