// Package format renders floating point amounts as grouped, locale-flavored
// strings such as "1.234.567,45" or "1,234,567.45".
package format

import (
	"strconv"
	"strings"

	"github.com/iwvelando/endinero/pkg/mathutil"
)

// IntegerPart returns the truncated integer portion of amount with thousands
// inserted every three digits from the right (e.g., "-1.234.567"). The sign is
// taken from amount itself, so -0.0001 yields "-0" while -0.0 yields "0".
// Magnitudes beyond the int64 range saturate at math.MaxInt64.
func IntegerPart(amount float64, thousands rune) string {
	magnitude := uint64(mathutil.TruncateInt64(abs64(amount)))
	return withSign(amount < 0, groupInteger(magnitude, thousands))
}

// IntegerPart32 is IntegerPart for float32 amounts, saturating at math.MaxInt32.
func IntegerPart32(amount float32, thousands rune) string {
	magnitude := uint64(mathutil.TruncateInt32(abs32(amount)))
	return withSign(amount < 0, groupInteger(magnitude, thousands))
}

func groupInteger(magnitude uint64, thousands rune) string {
	digits := strconv.FormatUint(magnitude, 10)
	if len(digits) <= 3 {
		return digits
	}

	var builder strings.Builder
	builder.Grow(len(digits) + len(digits)/3*4)
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			builder.WriteRune(thousands)
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}

func withSign(negative bool, digits string) string {
	if negative {
		return "-" + digits
	}
	return digits
}
