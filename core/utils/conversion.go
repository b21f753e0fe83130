package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, floats, strings, and byte slices.
// Text that does not parse as a base-10 32-bit integer yields 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int16:
		return int(v)
	case int8:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case uint16:
		return int(v)
	case uint8:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		return atoiOrZero(v)
	case []byte:
		return atoiOrZero(string(v))
	case nil:
		return 0
	default:
		return atoiOrZero(fmt.Sprintf("%v", v))
	}
}

// atoiOrZero parses s as a signed 32-bit integer. Surrounding whitespace is
// not accepted, and out-of-range values yield 0 rather than a clamped bound.
func atoiOrZero(s string) int {
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0
	}
	return int(i)
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true" in any case).
// Every other value, including the empty string, is false.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return ToInt(v) == 1
	case string:
		return IsTruthy(v)
	case []byte:
		return IsTruthy(string(v))
	default:
		return false
	}
}

// IsTruthy reports whether s is exactly "1" or case-insensitively "true".
func IsTruthy(s string) bool {
	return s == "1" || strings.EqualFold(s, "true")
}

// ToFloat converts various types to float64. Unparseable text yields 0.
func ToFloat(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	case []byte:
		return ToFloat(string(v))
	case nil:
		return 0
	default:
		return float64(ToInt(v))
	}
}
