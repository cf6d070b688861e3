package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var (
	ErrInvalidColorMode = errors.New("invalid color mode, valid modes are auto, always and never")
)

// A UserConfig is the content of the user configuration file, every field is optional.
type UserConfig struct {
	LogLevel    string    `yaml:"log-level"`
	Color       ColorMode `yaml:"color"`
	HistoryFile string    `yaml:"history-file"` //empty for the default location
	Prompt      string    `yaml:"prompt"`
}

func DefaultUserConfig() UserConfig {
	return UserConfig{
		LogLevel: DEFAULT_LOG_LEVEL,
		Color:    ColorAuto,
		Prompt:   DEFAULT_PROMPT,
	}
}

// LoadUserConfig reads the user configuration file located in the XDG config directories,
// the default configuration is returned if there is no such file.
func LoadUserConfig() (UserConfig, error) {
	path, found := ConfigFilePath()
	if !found {
		return DefaultUserConfig(), nil
	}
	return ReadUserConfigFile(path)
}

// ReadUserConfigFile reads and validates a configuration file, missing fields keep their default value.
func ReadUserConfigFile(path string) (UserConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return UserConfig{}, err
	}

	config, err := ParseUserConfig(content)
	if err != nil {
		return UserConfig{}, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}
	return config, nil
}

func ParseUserConfig(content []byte) (UserConfig, error) {
	config := DefaultUserConfig()

	if err := yaml.UnmarshalWithOptions(content, &config, yaml.Strict()); err != nil {
		return UserConfig{}, err
	}

	if err := config.Validate(); err != nil {
		return UserConfig{}, err
	}
	return config, nil
}

func (c UserConfig) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, c.Color)
	}

	if _, err := c.ZerologLevel(); err != nil {
		return err
	}
	return nil
}

func (c UserConfig) ZerologLevel() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}

// ShouldColorize resolves the color mode, auto relies on the environment.
func (c UserConfig) ShouldColorize() bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return SHOULD_COLORIZE
	}
}

// HistoryFilePath returns the configured history file or the default one.
func (c UserConfig) HistoryFilePath() (string, error) {
	if c.HistoryFile != "" {
		return ExpandHome(c.HistoryFile), nil
	}
	return DefaultHistoryFilePath()
}
