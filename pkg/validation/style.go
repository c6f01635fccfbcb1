package validation

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/iwvelando/endinero/pkg/constants"
)

// ValidateSeparator checks that a configured separator is exactly one
// character and returns it.
func ValidateSeparator(field, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("separator %s must be exactly one character, got %q", field, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("separator %s is not valid UTF-8: %q", field, value)
	}
	return r, nil
}

// SeparatorWarnings reports separator choices that make the output ambiguous.
// Such choices are allowed; the caller decides whether to surface them.
func SeparatorWarnings(thousands, radix, group rune) []string {
	var warnings []string

	if thousands == radix {
		warnings = append(warnings, fmt.Sprintf("thousands separator and radix are both %q", thousands))
	}
	if group == radix {
		warnings = append(warnings, fmt.Sprintf("decimal group separator and radix are both %q", group))
	}
	separators := []struct {
		name string
		r    rune
	}{{"thousands", thousands}, {"radix", radix}, {"group", group}}
	for _, sep := range separators {
		if unicode.IsDigit(sep.r) {
			warnings = append(warnings, fmt.Sprintf("%s separator %q is a digit", sep.name, sep.r))
		}
	}

	return warnings
}

// PrecisionWarnings reports decimal budgets beyond the safe precision of the
// given floating point width. Extra digits are returned as noise, not errors.
func PrecisionWarnings(width int, maxDecimalPlaces, subUnityDecimalPlaces uint16) []string {
	safe := constants.SafePrecision64
	if width == constants.Width32 {
		safe = constants.SafePrecision32
	}

	var warnings []string
	if int(maxDecimalPlaces) > safe {
		warnings = append(warnings, fmt.Sprintf("maxDecimalPlaces %d exceeds the %d digits float%d can render", maxDecimalPlaces, safe, width))
	}
	if int(subUnityDecimalPlaces) > safe {
		warnings = append(warnings, fmt.Sprintf("subUnityDecimalPlaces %d exceeds the %d digits float%d can render", subUnityDecimalPlaces, safe, width))
	}
	return warnings
}
