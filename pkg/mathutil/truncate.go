// Package mathutil provides common mathematical utility functions.
package mathutil

import "math"

// TruncateInt64 truncates toward zero, saturating at the int64 range.
// NaN truncates to zero.
func TruncateInt64(val float64) int64 {
	switch {
	case math.IsNaN(val):
		return 0
	case val >= math.MaxInt64:
		return math.MaxInt64
	case val <= math.MinInt64:
		return math.MinInt64
	}
	return int64(val)
}

// TruncateInt32 truncates toward zero, saturating at the int32 range.
// NaN truncates to zero.
func TruncateInt32(val float32) int32 {
	switch {
	case math.IsNaN(float64(val)):
		return 0
	case val >= math.MaxInt32:
		return math.MaxInt32
	case val <= math.MinInt32:
		return math.MinInt32
	}
	return int32(val)
}

// IsSubUnity reports whether the magnitude of val is strictly below one.
func IsSubUnity(val float64) bool {
	return math.Abs(val) < 1
}
