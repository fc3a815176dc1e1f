// SPDX-License-Identifier: MPL-2.0

package validate

import "strings"

// maxEntryName caps display names at the same limit boot-entry plugins use.
const maxEntryName = 127

// isLegalPath reports whether s uses only the characters firmware path
// handling tolerates: 0-9, A-Z, a-z, '_', '-', '.', '/', and '\'.
func isLegalPath(s string) bool {
	for _, c := range []byte(s) {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c == '_' || c == '-' || c == '.' || c == '/' || c == '\\':
		default:
			return false
		}
	}
	return true
}

// isPrintableASCII reports whether s consists solely of printable ASCII.
// The empty string is fine.
func isPrintableASCII(s string) bool {
	for _, c := range []byte(s) {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

// hasEFISuffix reports whether s ends in ".efi", case-insensitively.
func hasEFISuffix(s string) bool {
	return len(s) > 4 && strings.EqualFold(s[len(s)-4:], ".efi")
}

// isGUID reports whether s is a canonical 8-4-4-4-12 hex GUID. Case is not
// significant.
func isGUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i, c := range []byte(s) {
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		default:
			if !isHex(c) {
				return false
			}
		}
	}
	return true
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// findDuplicates runs a pairwise scan over items and calls report(i, j) for
// every later element j equal to an earlier element i under eq. Each j is
// reported at most once, against its first match.
func findDuplicates[T any](items []T, eq func(a, b T) bool, report func(i, j int)) {
	for j := 1; j < len(items); j++ {
		for i := 0; i < j; i++ {
			if eq(items[i], items[j]) {
				report(i, j)
				break
			}
		}
	}
}
