package config

import (
	"path/filepath"
	"testing"

	"github.com/iwvelando/endinero/pkg/constants"
	"github.com/iwvelando/endinero/pkg/format"
	"github.com/iwvelando/endinero/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigurationDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		conf, err := LoadConfiguration(path)
		require.NoError(t, err)

		assert.Equal(t, constants.OutputFormatPlain, conf.Output.Format)
		assert.Equal(t, constants.DefaultStylePreset, conf.Style.Preset)
		assert.Equal(t, constants.Width64, conf.Style.Width)
		assert.Nil(t, conf.Style.MaxDecimalPlaces)
		assert.Nil(t, conf.Style.SubUnityDecimalPlaces)
		assert.Empty(t, conf.Logging.Level)
	}
}

func TestLoadConfigurationOverrides(t *testing.T) {
	path := testutil.WriteConfig(t, "endinero.yaml", `logging:
  level: debug
  format: console
  outputFile: /tmp/endinero.log
output:
  format: csv
style:
  preset: us
  width: 32
  thousands: "'"
  group: "_"
  maxDecimalPlaces: 3
  subUnityDecimalPlaces: 5
`)

	conf, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", conf.Logging.Level)
	assert.Equal(t, "console", conf.Logging.Format)
	assert.Equal(t, "/tmp/endinero.log", conf.Logging.OutputFile)
	assert.Equal(t, "csv", conf.Output.Format)
	assert.Equal(t, "us", conf.Style.Preset)
	assert.Equal(t, 32, conf.Style.Width)
	assert.Equal(t, "'", conf.Style.Thousands)
	assert.Equal(t, "_", conf.Style.Group)
	require.NotNil(t, conf.Style.MaxDecimalPlaces)
	assert.Equal(t, uint16(3), *conf.Style.MaxDecimalPlaces)
	require.NotNil(t, conf.Style.SubUnityDecimalPlaces)
	assert.Equal(t, uint16(5), *conf.Style.SubUnityDecimalPlaces)
}

func TestLoadConfigurationEnvironment(t *testing.T) {
	path := testutil.WriteConfig(t, "endinero.yaml", "style:\n  preset: spanish\n")
	t.Setenv("ENDINERO_STYLE_PRESET", "us")
	t.Setenv("ENDINERO_OUTPUT_FORMAT", "pretty")

	conf, err := LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, "us", conf.Style.Preset)
	assert.Equal(t, "pretty", conf.Output.Format)
}

func TestLoadConfigurationInvalidYaml(t *testing.T) {
	path := testutil.WriteConfig(t, "bad.yaml", "style: [unclosed\n")

	_, err := LoadConfiguration(path)
	assert.Error(t, err)
}

func TestResolveStylePresets(t *testing.T) {
	tests := []struct {
		name     string
		preset   string
		expected format.Style
	}{
		{"Default", "", format.Spanish},
		{"Spanish", "spanish", format.Spanish},
		{"US", "us", format.US},
		{"Language tag", "en-US", format.US},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Configuration{Style: StyleConfig{Preset: tt.preset}}
			style, err := conf.ResolveStyle()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, style)
		})
	}
}

func TestResolveStyleOverrides(t *testing.T) {
	maxPlaces, subUnityPlaces := uint16(3), uint16(4)
	conf := &Configuration{Style: StyleConfig{
		Preset:                "us",
		Width:                 32,
		Thousands:             "'",
		Group:                 "_",
		MaxDecimalPlaces:      &maxPlaces,
		SubUnityDecimalPlaces: &subUnityPlaces,
	}}

	style, err := conf.ResolveStyle()
	require.NoError(t, err)

	assert.Equal(t, '\'', style.Thousands)
	assert.Equal(t, '.', style.Radix)
	assert.Equal(t, '_', style.Group)
	assert.Equal(t, format.Precision{MaxDecimalPlaces: 3, SubUnityDecimalPlaces: 4}, style.Precision32)
	assert.Equal(t, format.US.Precision64, style.Precision64)
	assert.Equal(t, "0.123_4", style.Format32(0.123456))

	// The package presets are values and must not be touched by overrides.
	assert.Equal(t, ',', format.US.Thousands)
}

func TestResolveStyleErrors(t *testing.T) {
	tests := []struct {
		name  string
		style StyleConfig
	}{
		{"Unknown preset", StyleConfig{Preset: "klingon"}},
		{"Bad width", StyleConfig{Preset: "us", Width: 16}},
		{"Multi-character separator", StyleConfig{Preset: "us", Radix: ".."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Configuration{Style: tt.style}
			_, err := conf.ResolveStyle()
			assert.Error(t, err)
		})
	}
}

func TestValidateConfiguration(t *testing.T) {
	deep := uint16(25)
	tests := []struct {
		name  string
		style StyleConfig
		count int
	}{
		{"Clean preset", StyleConfig{Preset: "spanish"}, 0},
		{"Colliding radix", StyleConfig{Preset: "spanish", Thousands: ","}, 1},
		{"Too many decimals", StyleConfig{Preset: "us", SubUnityDecimalPlaces: &deep}, 1},
		{"Too many decimals for float32", StyleConfig{Preset: "us", Width: 32, MaxDecimalPlaces: &deep}, 1},
		{"Unresolvable style reports no warnings", StyleConfig{Preset: "klingon"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Configuration{Style: tt.style}
			warnings := conf.ValidateConfiguration()
			assert.Len(t, warnings, tt.count, "warnings: %v", warnings)
		})
	}
}
