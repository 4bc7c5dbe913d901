package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"codeinject/pkg/lexer"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Valid config file", func(t *testing.T) {
		configFile, err := LoadConfig("_testdata/test_config.yaml")
		require.NoError(t, err)
		require.Equal(t, EngineRegexp, configFile.Engine, "Read value different from expected")
		require.True(t, configFile.SkipInvalid, "Read value different from expected")
		require.True(t, configFile.Names, "Read value different from expected")
		require.Equal(t, "warn", configFile.LogLevel, "Read value different from expected")
	})

	t.Run("Partial config file keeps defaults", func(t *testing.T) {
		configFile, err := LoadConfig("_testdata/test_config_partial.yaml")
		require.NoError(t, err)
		require.Equal(t, EngineLiteral, configFile.Engine)
		require.Equal(t, "info", configFile.LogLevel)
		require.True(t, configFile.Names)
		require.False(t, configFile.SkipInvalid)
	})

	t.Run("No config file", func(t *testing.T) {
		configFile, err := LoadConfig("")
		require.NoError(t, err)
		require.Equal(t, Default(), configFile)
	})

	t.Run("Invalid config file name", func(t *testing.T) {
		_, err := LoadConfig("_testdata/invalid_file_name.yaml")
		require.Error(t, err)
	})

	t.Run("Invalid config file", func(t *testing.T) {
		_, err := LoadConfig("_testdata/test_config_malformed.yaml")
		require.Error(t, err)
	})

	t.Run("Unknown engine", func(t *testing.T) {
		_, err := LoadConfig("_testdata/test_config_bad_engine.yaml")
		require.EqualError(t, err, `invalid engine "pcre"`)
	})
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		require.NoError(t, ValidateLogLevel(level))
	}
	require.EqualError(t, ValidateLogLevel("verbose"), `invalid log level "verbose"`)
}

func TestSlogLevel(t *testing.T) {
	c := Default()
	require.Equal(t, slog.LevelInfo, c.SlogLevel())

	c.LogLevel = "debug"
	require.Equal(t, slog.LevelDebug, c.SlogLevel())

	c.LogLevel = "error"
	require.Equal(t, slog.LevelError, c.SlogLevel())
}

func TestScanOptions(t *testing.T) {
	opts := Default().ScanOptions()
	require.Nil(t, opts.Matcher)
	require.False(t, opts.SkipInvalid)

	c := Config{Engine: EngineRegexp, SkipInvalid: true, LogLevel: "info"}
	opts = c.ScanOptions()
	require.IsType(t, &lexer.RegexpMatcher{}, opts.Matcher)
	require.True(t, opts.SkipInvalid)
	require.Equal(t, []int{0x41}, lexer.ScanWith("0x0 0x41", opts).Codes)
}
