package clipboard

import (
	"strings"
	"testing"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()
	if v == nil {
		t.Fatal("NewValidator() returned nil")
	}
	if v.allowedSchemes != nil {
		t.Fatal("NewValidator() should accept any scheme by default")
	}

	restricted := NewValidator(WithSchemes("HTTP", "https"))
	if !restricted.allowedSchemes["http"] || !restricted.allowedSchemes["https"] {
		t.Errorf("WithSchemes did not register schemes: %v", restricted.allowedSchemes)
	}
}

func TestValidator_ExtractURL(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Valid cases
		{
			name:     "Simple HTTPS",
			input:    "https://example.com",
			expected: "https://example.com",
		},
		{
			name:     "URL with path",
			input:    "https://a.b/c",
			expected: "https://a.b/c",
		},
		{
			name:     "URL with query params",
			input:    "https://example.com?q=search&lang=en",
			expected: "https://example.com?q=search&lang=en",
		},
		{
			name:     "URL with port",
			input:    "http://localhost:8080",
			expected: "http://localhost:8080",
		},
		{
			name:     "Other scheme with host",
			input:    "ftp://example.com/pub",
			expected: "ftp://example.com/pub",
		},

		// Trimming
		{
			name:     "Leading/Trailing spaces",
			input:    "  https://example.com/archive/a.tar.gz  ",
			expected: "https://example.com/archive/a.tar.gz",
		},

		// Invalid cases
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "Just whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "Plain words",
			input:    "not a url",
			expected: "",
		},
		{
			name:     "No scheme",
			input:    "example.com/archive/x",
			expected: "",
		},
		{
			name:     "Relative path",
			input:    "/archive/x/archive/y",
			expected: "",
		},
		{
			name:     "Just scheme",
			input:    "https://",
			expected: "",
		},
		{
			name:     "Opaque URL",
			input:    "mailto:someone",
			expected: "",
		},
		{
			name:     "Malformed URL parse error",
			input:    "https://example.com/%zz",
			expected: "",
		},
		{
			name:     "Space in host",
			input:    "https://exa mple.com",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ExtractURL(tt.input)
			if got != tt.expected {
				t.Errorf("ExtractURL(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidator_DisallowedSchemeByConfig(t *testing.T) {
	v := NewValidator(WithSchemes("https"))

	if got := v.ExtractURL("ftp://example.com"); got != "" {
		t.Fatalf("ExtractURL() = %q, want empty string", got)
	}
	if !v.Valid("HTTPS://example.com") {
		t.Fatal("scheme match should be case-insensitive")
	}
}

func TestValidator_EmptySchemeListAllowsAny(t *testing.T) {
	v := NewValidator(WithSchemes())
	if v.allowedSchemes != nil {
		t.Fatalf("WithSchemes() with no schemes should leave the allow-list unset, got %v", v.allowedSchemes)
	}
	if !v.Valid("ftp://example.com/archive/a.tar.gz") {
		t.Fatal("empty scheme list should accept any scheme")
	}
}

func TestIsValidURL(t *testing.T) {
	if IsValidURL("not a url") {
		t.Error(`IsValidURL("not a url") = true`)
	}
	if !IsValidURL("https://a.b/c") {
		t.Error(`IsValidURL("https://a.b/c") = false`)
	}
	if IsValidURL("") {
		t.Error(`IsValidURL("") = true`)
	}
	if IsValidURL("https://" + strings.Repeat("%", 3)) {
		t.Error("IsValidURL accepted a bad escape")
	}
}
