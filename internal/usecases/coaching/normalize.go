package coaching

import (
	"strconv"
	"strings"
)

// normalizeValue converts a raw trait value of unknown type to a float.
// Numbers pass through, percent-suffixed strings are parsed, everything else
// is absent. Absence is the only failure signal; this never errors.
func normalizeValue(val any) *float64 {
	switch v := val.(type) {
	case nil:
		return nil
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		if v == "" {
			return nil
		}

		cleaned := strings.TrimSpace(strings.ReplaceAll(v, "%", ""))
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}
