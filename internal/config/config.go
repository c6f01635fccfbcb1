// Package config defines the data structures related to configuration and
// includes functions for loading it and resolving the configured style.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/endinero/pkg/constants"
	"github.com/iwvelando/endinero/pkg/format"
	"github.com/iwvelando/endinero/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for endinero.
type Configuration struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Style   StyleConfig   `mapstructure:"style"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format"` // pretty, csv, plain
}

// StyleConfig selects a preset style and optionally overrides its parts.
// Empty separators and nil decimal places keep the preset's values.
type StyleConfig struct {
	Preset                string  `mapstructure:"preset"`
	Width                 int     `mapstructure:"width"` // 64 or 32
	Thousands             string  `mapstructure:"thousands"`
	Radix                 string  `mapstructure:"radix"`
	Group                 string  `mapstructure:"group"`
	MaxDecimalPlaces      *uint16 `mapstructure:"maxDecimalPlaces"`
	SubUnityDecimalPlaces *uint16 `mapstructure:"subUnityDecimalPlaces"`
}

// Keys that may be overridden from the environment, e.g. ENDINERO_STYLE_PRESET.
var envKeys = []string{
	"logging.level",
	"logging.format",
	"logging.outputFile",
	"output.format",
	"style.preset",
	"style.width",
	"style.thousands",
	"style.radix",
	"style.group",
	"style.maxDecimalPlaces",
	"style.subUnityDecimalPlaces",
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path or a missing file yields the defaults,
// still subject to environment overrides.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetDefault("output.format", constants.OutputFormatPlain)
	v.SetDefault("style.preset", constants.DefaultStylePreset)
	v.SetDefault("style.width", constants.Width64)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	if configPath != "" {
		_, err := os.Stat(configPath)
		switch {
		case err == nil:
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}

// WidthOrDefault returns the configured floating point width, defaulting to 64.
func (s StyleConfig) WidthOrDefault() int {
	if s.Width == 0 {
		return constants.Width64
	}
	return s.Width
}

// ResolveStyle looks up the configured preset and applies the overrides.
func (c *Configuration) ResolveStyle() (format.Style, error) {
	preset := c.Style.Preset
	if preset == "" {
		preset = constants.DefaultStylePreset
	}
	style, err := format.LookupStyle(preset)
	if err != nil {
		return format.Style{}, fmt.Errorf("invalid style preset: %w", err)
	}

	width := c.Style.WidthOrDefault()
	if width != constants.Width64 && width != constants.Width32 {
		return format.Style{}, fmt.Errorf("style width must be %d or %d, got %d",
			constants.Width64, constants.Width32, width)
	}

	overrides := []struct {
		field string
		value string
		dst   *rune
	}{
		{"thousands", c.Style.Thousands, &style.Thousands},
		{"radix", c.Style.Radix, &style.Radix},
		{"group", c.Style.Group, &style.Group},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		r, err := validation.ValidateSeparator(o.field, o.value)
		if err != nil {
			return format.Style{}, err
		}
		*o.dst = r
	}

	precision := &style.Precision64
	if width == constants.Width32 {
		precision = &style.Precision32
	}
	if c.Style.MaxDecimalPlaces != nil {
		precision.MaxDecimalPlaces = *c.Style.MaxDecimalPlaces
	}
	if c.Style.SubUnityDecimalPlaces != nil {
		precision.SubUnityDecimalPlaces = *c.Style.SubUnityDecimalPlaces
	}

	return style, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Problems that prevent formatting are reported by
// ResolveStyle instead.
func (c *Configuration) ValidateConfiguration() []string {
	style, err := c.ResolveStyle()
	if err != nil {
		return nil
	}

	warnings := validation.SeparatorWarnings(style.Thousands, style.Radix, style.Group)

	width := c.Style.WidthOrDefault()
	precision := style.Precision64
	if width == constants.Width32 {
		precision = style.Precision32
	}
	warnings = append(warnings, validation.PrecisionWarnings(width, precision.MaxDecimalPlaces, precision.SubUnityDecimalPlaces)...)

	return warnings
}
