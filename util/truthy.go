package util

import "strings"

// Truthy reports whether s spells a true value, e.g. "1" or "yes".
func Truthy(s string) bool {
	normalized := strings.ToLower(strings.TrimSpace(s))
	return normalized == "true" || normalized == "1" || normalized == "yes"
}
