package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToFloat converts loosely typed JSON values to a float64.
// It handles numeric types, json.Number and numeric strings with thousands separators.
// ok is false when no number can be read.
func ToFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case nil:
		return 0, false
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case []byte:
		return ToFloat(string(v))
	default:
		return ToFloat(fmt.Sprintf("%v", v))
	}
}

// ToFloatPtr is ToFloat returning nil when the value is missing or malformed.
func ToFloatPtr(val any) *float64 {
	f, ok := ToFloat(val)
	if !ok {
		return nil
	}
	return &f
}

// ToInt64Ptr converts loosely typed JSON values to an *int64, truncating fractions.
func ToInt64Ptr(val any) *int64 {
	f, ok := ToFloat(val)
	if !ok {
		return nil
	}
	i := int64(f)
	return &i
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// StringPtr trims s and returns nil when it is empty.
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// IsPositive reports whether val holds a number greater than zero.
func IsPositive(val any) bool {
	f, ok := ToFloat(val)
	return ok && f > 0
}
