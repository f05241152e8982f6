package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Asset keys are free-form apart from whitespace, control characters and a
	// leading slash, e.g. "navbar_logo" or "specialization_c++-programming".
	// Sections are lowercase identifiers.
	AssetKeyPattern = `^[^\s\p{Z}\p{Cc}/][^\s\p{Z}\p{Cc}]*$`
	SectionPattern  = `^[a-z0-9][a-z0-9_\-]*$`

	AssetKeyMaxLength = 200
	SectionMaxLength  = 64
	NameMaxLength     = 200
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	AssetKey *regexp.Regexp
	Section  *regexp.Regexp
}{
	AssetKey: regexp.MustCompile(AssetKeyPattern),
	Section:  regexp.MustCompile(SectionPattern),
}

// StringValidation is a small chainable string check
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}
	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}
	return true
}

// IsAssetKey reports whether key is a usable media asset key
func IsAssetKey(key string) bool {
	if strings.Contains(key, "..") {
		return false
	}
	return NewStringValidation(key).
		WithMaxLength(AssetKeyMaxLength).
		WithPattern(CompiledPatterns.AssetKey).
		Validate()
}

// IsSection reports whether section is a usable media section name
func IsSection(section string) bool {
	return NewStringValidation(section).
		WithMaxLength(SectionMaxLength).
		WithPattern(CompiledPatterns.Section).
		Validate()
}

// IsImageMimeType reports whether mimeType declares an image
func IsImageMimeType(mimeType string) bool {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return strings.HasPrefix(mt, "image/") && len(mt) > len("image/")
}
