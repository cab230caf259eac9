package store

import "strings"

// NormalizeEmail returns the canonical form of an email address used for
// storage and lookup: surrounding whitespace removed, lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
