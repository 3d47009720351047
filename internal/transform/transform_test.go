package transform

import "testing"

func TestURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"archive and suffix", "https://x.com/archive/a.tar.gz", "https://x.com/tree/a"},
		{"trims whitespace", " https://example.com/archive/pkg-1.2.tar.gz ", "https://example.com/tree/pkg-1.2"},
		{"first occurrence only", "/archive/x/archive/y", "/tree/x/archive/y"},
		{"uppercase suffix", "u.TAR.GZ", "u"},
		{"mixed case suffix", "https://h/archive/v1.Tar.Gz", "https://h/tree/v1"},
		{"case sensitive segment", "https://h/ARCHIVE/v1", "https://h/ARCHIVE/v1"},
		{"suffix not at end", "https://h/a.tar.gz/readme", "https://h/a.tar.gz/readme"},
		{"only suffix stripped once", "https://h/a.tar.gz.tar.gz", "https://h/a.tar.gz"},
		{"no match", "https://example.com/tree/main", "https://example.com/tree/main"},
		{"tgz untouched", "https://h/archive/a.tgz", "https://h/tree/a.tgz"},
		{"bare suffix", ".tar.gz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URL(tt.input); got != tt.want {
				t.Errorf("URL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestURL_Idempotent(t *testing.T) {
	inputs := []string{
		"https://x.com/archive/a.tar.gz",
		"https://github.com/org/repo/archive/refs/tags/v1.0.0.tar.gz",
		"https://example.com/tree/main",
		"  https://example.com/archive/pkg-1.2.TAR.GZ\n",
	}

	for _, in := range inputs {
		once := URL(in)
		if twice := URL(once); twice != once {
			t.Errorf("URL(URL(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestHasArchiveSuffix(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a.tar.gz", true},
		{"a.TAR.gz", true},
		{"tar.gz", false},
		{"", false},
		{"a.tar.gzip", false},
	}
	for _, tt := range tests {
		if got := HasArchiveSuffix(tt.in); got != tt.want {
			t.Errorf("HasArchiveSuffix(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
