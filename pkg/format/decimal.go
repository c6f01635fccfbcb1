package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/endinero/pkg/constants"
)

// DecimalPart returns up to totalDecimals fractional digits of amount, grouped
// in triples from the left with group and stripped of trailing zeros and
// separators. Digits are truncated, not rounded. A zero budget yields "".
//
// The digits come from a fixed 17-place rendering of |amount|; a budget above
// that is capped.
func DecimalPart(amount float64, totalDecimals uint16, group rune) string {
	if totalDecimals == 0 {
		return ""
	}
	digits := fractionDigits(abs64(amount), constants.SafePrecision64, 64)
	return groupFraction(digits, int(totalDecimals), group)
}

// DecimalPart32 is DecimalPart for float32 amounts, rendered at 7 places.
func DecimalPart32(amount float32, totalDecimals uint16, group rune) string {
	if totalDecimals == 0 {
		return ""
	}
	digits := fractionDigits(float64(abs32(amount)), constants.SafePrecision32, 32)
	return groupFraction(digits, int(totalDecimals), group)
}

// fractionDigits renders magnitude with exactly precision fractional digits
// and returns the part after the decimal point.
func fractionDigits(magnitude float64, precision, bitSize int) string {
	rendered := strconv.FormatFloat(magnitude, 'f', precision, bitSize)
	_, frac, found := strings.Cut(rendered, ".")
	if !found {
		return strings.Repeat("0", precision)
	}
	return frac
}

func groupFraction(digits string, totalDecimals int, group rune) string {
	out := make([]rune, 0, totalDecimals+totalDecimals/3)
	for i, digit := range digits {
		if i == totalDecimals {
			break
		}
		if i > 0 && i%3 == 0 {
			out = append(out, group)
		}
		out = append(out, digit)
	}

	for len(out) > 1 {
		last := out[len(out)-1]
		if last != '0' && last != group {
			break
		}
		out = out[:len(out)-1]
	}
	return string(out)
}

func abs64(v float64) float64 {
	return math.Abs(v)
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
