package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/hasbyte1/go-macro-collections/collections"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "collsh"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
	// EnvPrefix prefixes every environment variable read by [Load].
	EnvPrefix = "COLLSH"
)

// ColorMode controls styled output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var (
	// ErrConfigNotFound is returned when an explicit config file is missing.
	ErrConfigNotFound = errors.New("config: file not found")

	// ErrInvalidConfig is returned when a setting has an unsupported value.
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config holds the collsh settings.
type Config struct {
	// Delimiter is the item delimiter of lists declared in a session.
	Delimiter string `mapstructure:"delimiter"`
	// LogLevel is a charm log level name: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// Prompt is printed before each line in an interactive REPL.
	Prompt string `mapstructure:"prompt"`
	// Color selects styled output.
	Color ColorMode `mapstructure:"color"`

	// Source is the config file that was read, or empty.
	Source string `mapstructure:"-"`
}

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Delimiter: collections.DefaultDelimiter,
		LogLevel:  "warn",
		Prompt:    "> ",
		Color:     ColorAuto,
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/collsh, falling back to ~/.config.
//
//nolint:revive // ConfigDir reads better than Dir at call sites
func ConfigDir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName), nil
}

// Load reads the configuration from defaults, the config file and the
// environment.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("delimiter", defaults.Delimiter)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("prompt", defaults.Prompt)
	v.SetDefault("color", string(defaults.Color))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, opts.ConfigFilePath)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", opts.ConfigFilePath, err)
		}
	} else {
		dir := opts.ConfigDirPath
		if dir == "" {
			var err error
			if dir, err = ConfigDir(); err != nil {
				return nil, err
			}
		}
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that Viper cannot type-check.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q (want auto, always or never)", ErrInvalidConfig, c.Color)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q: %w", ErrInvalidConfig, c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level, or warn when LogLevel is invalid.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
