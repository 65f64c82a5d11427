package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chris-regnier/ansicolor/internal/ansi"
	"github.com/spf13/viper"
)

// ThemeConfig holds terminal theme configuration.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Muted         string `mapstructure:"muted"`
	Accent        string `mapstructure:"accent"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// ViewConfig holds preview configuration.
type ViewConfig struct {
	TitlePrefix string `mapstructure:"title_prefix"`
}

// Config holds the application configuration.
type Config struct {
	Grammar       string      `mapstructure:"grammar"`
	LogLevel      string      `mapstructure:"log_level"`
	NotifyTimeout string      `mapstructure:"notify_timeout"`
	MaxWidth      int         `mapstructure:"max_width"`
	Theme         ThemeConfig `mapstructure:"theme"`
	View          ViewConfig  `mapstructure:"view"`
}

// DefaultConfigDir returns the fallback config directory (~/.ansicolor/).
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".ansicolor")
	}
	return filepath.Join(home, ".ansicolor")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("grammar", "strict")
	v.SetDefault("log_level", "warn")
	v.SetDefault("notify_timeout", "2s")
	v.SetDefault("max_width", 100)
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.primary", "")
	v.SetDefault("theme.muted", "")
	v.SetDefault("theme.accent", "")
	v.SetDefault("theme.background", "")
	v.SetDefault("theme.markdown_style", "")
	v.SetDefault("view.title_prefix", "Preview ")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "ansicolor"))
		}
		v.AddConfigPath(DefaultConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: ANSICOLOR_GRAMMAR, ANSICOLOR_LOG_LEVEL, etc.
	v.SetEnvPrefix("ANSICOLOR")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have a closed set of legal forms.
func (c *Config) Validate() error {
	if _, err := ansi.ParseGrammar(c.Grammar); err != nil {
		return fmt.Errorf("config grammar: %w", err)
	}
	if _, err := c.NotifyDuration(); err != nil {
		return err
	}
	if c.MaxWidth < 0 {
		return fmt.Errorf("config max_width must not be negative, got %d", c.MaxWidth)
	}
	return nil
}

// EscapeGrammar returns the parsed grammar, strict when unset.
func (c *Config) EscapeGrammar() ansi.Grammar {
	g, _ := ansi.ParseGrammar(c.Grammar)
	return g
}

// NotifyDuration parses NotifyTimeout. An empty value means 2s.
func (c *Config) NotifyDuration() (time.Duration, error) {
	if c.NotifyTimeout == "" {
		return 2 * time.Second, nil
	}
	d, err := time.ParseDuration(c.NotifyTimeout)
	if err != nil {
		return 0, fmt.Errorf("config notify_timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config notify_timeout must not be negative, got %s", d)
	}
	return d, nil
}
