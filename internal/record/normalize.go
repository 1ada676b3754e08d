package record

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeGroup returns the NFC normal form of a group name.
// Group names arrive from mail headers and folder paths that may encode
// the same visible name with different code point sequences.
func NormalizeGroup(s string) string {
	return norm.NFC.String(s)
}

// FoldEqual reports whether two strings are equal after NFC
// normalization and ASCII-compatible case folding. Used for group
// matching where "inbox" and "INBOX" name the same container.
func FoldEqual(a, b string) bool {
	return strings.EqualFold(norm.NFC.String(a), norm.NFC.String(b))
}
