package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/endinero/pkg/constants"
	"golang.org/x/text/language"
)

// ErrUnknownStyle is returned by LookupStyle for names it cannot resolve.
var ErrUnknownStyle = errors.New("unknown style")

// Separators holds the characters written between digit groups.
type Separators struct {
	Thousands rune // between integer triples
	Radix     rune // between integer and decimal parts
	Group     rune // between decimal triples
}

// Precision holds the decimal budgets for one floating point width.
type Precision struct {
	MaxDecimalPlaces      uint16 // |amount| >= 1
	SubUnityDecimalPlaces uint16 // |amount| < 1
}

// Style is a named set of separators with a precision policy per width.
type Style struct {
	Name string
	Separators
	Precision64 Precision
	Precision32 Precision
}

// Format renders a float64 amount in this style.
func (s Style) Format(amount float64) string {
	return Amount(amount, s.Precision64.MaxDecimalPlaces, s.Precision64.SubUnityDecimalPlaces,
		s.Thousands, s.Radix, s.Group)
}

// Format32 renders a float32 amount in this style.
func (s Style) Format32(amount float32) string {
	return Amount32(amount, s.Precision32.MaxDecimalPlaces, s.Precision32.SubUnityDecimalPlaces,
		s.Thousands, s.Radix, s.Group)
}

var defaultPrecision64 = Precision{
	MaxDecimalPlaces:      constants.DefaultMaxDecimalPlaces,
	SubUnityDecimalPlaces: constants.DefaultSubUnityDecimalPlaces64,
}

var defaultPrecision32 = Precision{
	MaxDecimalPlaces:      constants.DefaultMaxDecimalPlaces,
	SubUnityDecimalPlaces: constants.DefaultSubUnityDecimalPlaces32,
}

// Spanish is the Spanish/European style: "1.234.567,12".
var Spanish = Style{
	Name:        "spanish",
	Separators:  Separators{Thousands: '.', Radix: ',', Group: ' '},
	Precision64: defaultPrecision64,
	Precision32: defaultPrecision32,
}

// US is the US/English style: "1,234,567.12".
var US = Style{
	Name:        "us",
	Separators:  Separators{Thousands: ',', Radix: '.', Group: ' '},
	Precision64: defaultPrecision64,
	Precision32: defaultPrecision32,
}

// Dinero formats a float64 amount in the Spanish style.
func Dinero(amount float64) string { return Spanish.Format(amount) }

// Dinero32 formats a float32 amount in the Spanish style.
func Dinero32(amount float32) string { return Spanish.Format32(amount) }

// Money formats a float64 amount in the US style.
func Money(amount float64) string { return US.Format(amount) }

// Money32 formats a float32 amount in the US style.
func Money32(amount float32) string { return US.Format32(amount) }

var styleAliases = map[string]Style{
	"spanish":  Spanish,
	"dinero":   Spanish,
	"european": Spanish,
	"us":       US,
	"money":    US,
	"english":  US,
}

// Base languages that group thousands with '.' and use ',' as radix map to
// Spanish; English maps to US.
var styleByBase = map[string]Style{
	"es": Spanish,
	"de": Spanish,
	"it": Spanish,
	"nl": Spanish,
	"pt": Spanish,
	"en": US,
}

// LookupStyle resolves a preset alias ("spanish", "us", ...) or a BCP 47
// language tag ("es-ES", "en-US") to a Style.
func LookupStyle(name string) (Style, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if style, ok := styleAliases[key]; ok {
		return style, nil
	}

	tag, err := language.Parse(key)
	if err != nil {
		return Style{}, fmt.Errorf("%w %q: %v", ErrUnknownStyle, name, err)
	}
	base, confidence := tag.Base()
	if confidence != language.Exact {
		return Style{}, fmt.Errorf("%w %q", ErrUnknownStyle, name)
	}
	style, ok := styleByBase[base.String()]
	if !ok {
		return Style{}, fmt.Errorf("%w %q: no preset for language %s", ErrUnknownStyle, name, base)
	}
	return style, nil
}
