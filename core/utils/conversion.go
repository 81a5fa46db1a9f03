package utils

import (
	"strings"
)

// ToBool converts form and query values to bool. "1", "true", "yes" and
// "on" (case-insensitive) are true; everything else is false.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true
		}
		return false
	case []byte:
		return ToBool(string(v))
	default:
		return false
	}
}
