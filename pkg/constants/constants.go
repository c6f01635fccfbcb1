// Package constants provides shared constants for the endinero module.
package constants

// Safe precision is the number of fractional digits rendered from a floating
// point value before grouping. Digits past this point are rendering noise.
const (
	// SafePrecision64 is the fractional digit count rendered for float64 amounts
	SafePrecision64 = 17

	// SafePrecision32 is the fractional digit count rendered for float32 amounts
	SafePrecision32 = 7
)

// Precision defaults used by the preset styles
const (
	// DefaultMaxDecimalPlaces is the decimal budget for amounts of magnitude >= 1
	DefaultMaxDecimalPlaces = 2

	// DefaultSubUnityDecimalPlaces64 is the decimal budget for float64 amounts below one
	DefaultSubUnityDecimalPlaces64 = SafePrecision64

	// DefaultSubUnityDecimalPlaces32 is the decimal budget for float32 amounts below one
	DefaultSubUnityDecimalPlaces32 = SafePrecision32
)

// Non-finite renderings
const (
	NaNString         = "NaN"
	PosInfinityString = "inf"
	NegInfinityString = "-inf"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable table output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatPlain prints one formatted amount per line
	OutputFormatPlain = "plain"
)

// Configuration constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "endinero.yaml"

	// EnvPrefix prefixes environment variable overrides (ENDINERO_STYLE_PRESET)
	EnvPrefix = "ENDINERO"

	// DefaultStylePreset is used when no style is configured
	DefaultStylePreset = "spanish"

	// Width64 and Width32 select the floating point width used by the CLI
	Width64 = 64
	Width32 = 32
)
