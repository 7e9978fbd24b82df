package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// String converts a raw form value into a string. Nil becomes "".
func String(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []string:
		if len(s) == 0 {
			return ""
		}
		return s[0]
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

// Float converts a raw form value into a float64.
// The second result is false when the value is not numeric.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		f, err := strconv.ParseFloat(strings.TrimSpace(String(v)), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
}
