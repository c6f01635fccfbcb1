package format

import (
	"math"

	"github.com/iwvelando/endinero/pkg/constants"
)

// Amount formats amount as integer part, radix and decimal part.
//
// Amounts with a magnitude below one keep zeroCommaDecimalPlaces fractional
// digits, all others keep maxDecimalPlaces. Separators are written literally
// and are not checked for collisions.
//
// NaN renders as "NaN" and the infinities as "inf" and "-inf".
func Amount(amount float64, maxDecimalPlaces, zeroCommaDecimalPlaces uint16, thousands, radix, group rune) string {
	if s, ok := nonFinite(amount); ok {
		return s
	}

	totalDecimals := maxDecimalPlaces
	if math.Abs(amount) < 1 {
		totalDecimals = zeroCommaDecimalPlaces
	}
	return IntegerPart(amount, thousands) + string(radix) + DecimalPart(amount, totalDecimals, group)
}

// Amount32 is Amount for float32 amounts.
func Amount32(amount float32, maxDecimalPlaces, zeroCommaDecimalPlaces uint16, thousands, radix, group rune) string {
	if s, ok := nonFinite(float64(amount)); ok {
		return s
	}

	totalDecimals := maxDecimalPlaces
	if abs32(amount) < 1 {
		totalDecimals = zeroCommaDecimalPlaces
	}
	return IntegerPart32(amount, thousands) + string(radix) + DecimalPart32(amount, totalDecimals, group)
}

func nonFinite(amount float64) (string, bool) {
	switch {
	case math.IsNaN(amount):
		return constants.NaNString, true
	case math.IsInf(amount, 1):
		return constants.PosInfinityString, true
	case math.IsInf(amount, -1):
		return constants.NegInfinityString, true
	}
	return "", false
}
