package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"navtitle/internal/config"
)

// EnvPrefix is the prefix for environment overrides, e.g. NAVTITLE_HIDE_AFTER=5s.
const EnvPrefix = "NAVTITLE"

// Config holds title view and host settings
type Config struct {
	// Title view
	Title        string `mapstructure:"title"`
	ShowDropdown bool   `mapstructure:"show_dropdown"`

	// Subtitle timing
	AnimationsEnabled bool          `mapstructure:"animations_enabled"`
	AnimationDuration time.Duration `mapstructure:"animation_duration"`
	HideAfter         time.Duration `mapstructure:"hide_after"`

	// Feedback: send a desktop notification when a failure is shown
	NotifyOnFailure bool `mapstructure:"notify_on_failure"`

	// Ambient
	LogLevel    string `mapstructure:"log_level"`
	MetricsAddr string `mapstructure:"metrics_addr"` // empty disables the /metrics endpoint
}

func DefaultConfig() *Config {
	return &Config{
		Title:             "Inbox",
		ShowDropdown:      true,
		AnimationsEnabled: true,
		AnimationDuration: config.DefaultAnimationDuration,
		HideAfter:         config.DefaultHideAfter,
		NotifyOnFailure:   false,
		LogLevel:          "info",
		MetricsAddr:       "",
	}
}

// ConfigPath returns the config file location: $NAVTITLE_CONFIG or
// ~/.config/navtitle/config.toml.
func ConfigPath() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "navtitle", "config.toml")
}

func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetDefault("title", defaults.Title)
	v.SetDefault("show_dropdown", defaults.ShowDropdown)
	v.SetDefault("animations_enabled", defaults.AnimationsEnabled)
	v.SetDefault("animation_duration", defaults.AnimationDuration)
	v.SetDefault("hide_after", defaults.HideAfter)
	v.SetDefault("notify_on_failure", defaults.NotifyOnFailure)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("metrics_addr", defaults.MetricsAddr)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads path (or ConfigPath() when empty). A missing file yields
// defaults plus environment overrides.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	v := newViper(DefaultConfig())
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the config as TOML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("title", c.Title)
	v.Set("show_dropdown", c.ShowDropdown)
	v.Set("animations_enabled", c.AnimationsEnabled)
	v.Set("animation_duration", c.AnimationDuration.String())
	v.Set("hide_after", c.HideAfter.String())
	v.Set("notify_on_failure", c.NotifyOnFailure)
	v.Set("log_level", c.LogLevel)
	v.Set("metrics_addr", c.MetricsAddr)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	c.AnimationDuration = config.ClampAnimationDuration(c.AnimationDuration)
	c.HideAfter = config.ClampHideAfter(c.HideAfter)
}

// EffectiveAnimationDuration is the transition duration actually used,
// honouring AnimationsEnabled.
func (c *Config) EffectiveAnimationDuration() time.Duration {
	if !c.AnimationsEnabled {
		return config.InstantAnimation
	}
	return config.ClampAnimationDuration(c.AnimationDuration)
}
