// Package transform rewrites source-host archive URLs into their browsable tree form.
package transform

import "strings"

const (
	archiveSegment = "/archive/"
	treeSegment    = "/tree/"

	// ArchiveSuffix is stripped from the end of a URL, matched case-insensitively.
	ArchiveSuffix = ".tar.gz"
)

// URL converts an archive download URL into its tree view URL.
// Only the first "/archive/" is replaced; a trailing ".tar.gz" in any case is removed.
func URL(input string) string {
	if input == "" {
		return ""
	}

	out := strings.TrimSpace(input)
	out = strings.Replace(out, archiveSegment, treeSegment, 1)

	if HasArchiveSuffix(out) {
		out = out[:len(out)-len(ArchiveSuffix)]
	}
	return out
}

// HasArchiveSuffix reports whether s ends with ".tar.gz", ignoring case.
func HasArchiveSuffix(s string) bool {
	if len(s) < len(ArchiveSuffix) {
		return false
	}
	return strings.EqualFold(s[len(s)-len(ArchiveSuffix):], ArchiveSuffix)
}
