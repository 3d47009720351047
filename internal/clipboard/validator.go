package clipboard

import (
	"net/url"
	"strings"
)

// Validator checks whether text is a well-formed absolute URL.
type Validator struct {
	// nil accepts any scheme
	allowedSchemes map[string]bool
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithSchemes restricts the validator to the given URL schemes. An empty list
// leaves every scheme allowed.
func WithSchemes(schemes ...string) ValidatorOption {
	return func(v *Validator) {
		if len(schemes) == 0 {
			v.allowedSchemes = nil
			return
		}
		v.allowedSchemes = make(map[string]bool, len(schemes))
		for _, s := range schemes {
			v.allowedSchemes[strings.ToLower(s)] = true
		}
	}
}

// NewValidator creates a validator that accepts any scheme unless restricted.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ExtractURL validates and returns a clean URL, or empty string if invalid
func (v *Validator) ExtractURL(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	parsed, err := url.Parse(text)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ""
	}
	if v.allowedSchemes != nil && !v.allowedSchemes[strings.ToLower(parsed.Scheme)] {
		return ""
	}

	return parsed.String()
}

// Valid reports whether text parses as an absolute URL with scheme and host.
func (v *Validator) Valid(text string) bool {
	return v.ExtractURL(text) != ""
}

var defaultValidator = NewValidator()

// IsValidURL reports whether input is an absolute URL. It never panics.
func IsValidURL(input string) bool {
	return defaultValidator.Valid(input)
}
