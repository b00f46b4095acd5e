package common

import "strings"

// IsPlaceholder reports whether a credential is missing or still holds the
// "your_actual..." sample value shipped in example env files.
func IsPlaceholder(key string) bool {
	key = strings.TrimSpace(key)
	return key == "" || strings.HasPrefix(key, "your_actual")
}
