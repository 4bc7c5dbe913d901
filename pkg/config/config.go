package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"codeinject/pkg/lexer"
)

const (
	EngineLiteral = "literal"
	EngineRegexp  = "regexp"
)

type Config struct {
	Engine      string `yaml:"engine"`
	SkipInvalid bool   `yaml:"skipInvalid"`
	Names       bool   `yaml:"names"`
	LogLevel    string `yaml:"logLevel"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Engine:   EngineLiteral,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// default values. An empty file name yields Default().
func LoadConfig(file string) (Config, error) {
	config := Default()
	if file == "" {
		return config, nil
	}

	yfile, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read file %q: %w", file, err)
	}

	err = yaml.Unmarshal(yfile, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	switch c.Engine {
	case EngineLiteral, EngineRegexp:
	default:
		return fmt.Errorf("invalid engine %q", c.Engine)
	}
	return ValidateLogLevel(c.LogLevel)
}

func ValidateLogLevel(value string) error {
	switch value {
	case "debug":
	case "info":
	case "warn":
	case "error":
	default:
		return fmt.Errorf("invalid log level %q", value)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level. Unknown values map to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ScanOptions builds the scanner options the config describes.
func (c Config) ScanOptions() lexer.Options {
	opts := lexer.Options{SkipInvalid: c.SkipInvalid}
	if c.Engine == EngineRegexp {
		opts.Matcher = lexer.NewRegexpMatcher()
	}
	return opts
}
