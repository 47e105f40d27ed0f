package util

import "strings"

// Truthy reports whether s spells an affirmative value, such as
// "true", "1", "yes" or "on".
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on":
		return true
	}

	return false
}
