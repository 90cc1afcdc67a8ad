package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/marcus/wingsfly/internal/models"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// configName is the file looked up in the working and home directories (.yaml implied)
const configName = ".wingsfly"

// EnvPrefix prefixes environment overrides, e.g. WINGSFLY_DRAWER_OPEN_MS
const EnvPrefix = "WINGSFLY"

// Defaults returns the stock configuration
func Defaults() *models.Config {
	return &models.Config{
		Drawer: models.DrawerConfig{
			HeightFraction:  0.6,
			DragThreshold:   10,
			DismissFraction: 0.3,
			OpenMillis:      300,
			CloseMillis:     300,
			SpringTension:   120,
			SpringFriction:  8,
		},
		Screen: models.ScreenConfig{
			RowHeight: 16,
			FPS:       60,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("drawer.height_fraction", d.Drawer.HeightFraction)
	v.SetDefault("drawer.drag_threshold", d.Drawer.DragThreshold)
	v.SetDefault("drawer.dismiss_fraction", d.Drawer.DismissFraction)
	v.SetDefault("drawer.open_ms", d.Drawer.OpenMillis)
	v.SetDefault("drawer.close_ms", d.Drawer.CloseMillis)
	v.SetDefault("drawer.spring_tension", d.Drawer.SpringTension)
	v.SetDefault("drawer.spring_friction", d.Drawer.SpringFriction)
	v.SetDefault("screen.row_height", d.Screen.RowHeight)
	v.SetDefault("screen.fps", d.Screen.FPS)
}

// Load reads the config. explicitPath, when set, must exist; otherwise
// .wingsfly.yaml is looked up in baseDir then the home directory, and a
// missing file yields the defaults. Environment variables override both.
func Load(baseDir, explicitPath string) (*models.Config, error) {
	cfg, _, err := Resolve(baseDir, explicitPath)
	return cfg, err
}

// Resolve is Load that also returns the file that was read, or "" when
// only defaults and the environment applied
func Resolve(baseDir, explicitPath string) (*models.Config, string, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicitPath != "" {
		path, err := homedir.Expand(explicitPath)
		if err != nil {
			return nil, "", fmt.Errorf("expand config path: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		if baseDir != "" {
			v.AddConfigPath(baseDir)
		}
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("read config: %w", err)
		}
	}

	var cfg models.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, "", err
	}
	return &cfg, v.ConfigFileUsed(), nil
}

// ValidationError names the offending key
type ValidationError struct {
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Key, e.Reason)
}

// Validate checks ranges
func Validate(cfg *models.Config) error {
	d := cfg.Drawer
	switch {
	case d.HeightFraction <= 0 || d.HeightFraction > 1:
		return &ValidationError{Key: "drawer.height_fraction", Reason: "must be in (0, 1]"}
	case d.DismissFraction <= 0 || d.DismissFraction > 1:
		return &ValidationError{Key: "drawer.dismiss_fraction", Reason: "must be in (0, 1]"}
	case d.DragThreshold < 0:
		return &ValidationError{Key: "drawer.drag_threshold", Reason: "must not be negative"}
	case d.OpenMillis <= 0:
		return &ValidationError{Key: "drawer.open_ms", Reason: "must be positive"}
	case d.CloseMillis <= 0:
		return &ValidationError{Key: "drawer.close_ms", Reason: "must be positive"}
	case d.SpringTension <= 0:
		return &ValidationError{Key: "drawer.spring_tension", Reason: "must be positive"}
	case d.SpringFriction <= 0:
		return &ValidationError{Key: "drawer.spring_friction", Reason: "must be positive"}
	}

	s := cfg.Screen
	switch {
	case s.RowHeight <= 0:
		return &ValidationError{Key: "screen.row_height", Reason: "must be positive"}
	case s.FPS <= 0 || s.FPS > 240:
		return &ValidationError{Key: "screen.fps", Reason: "must be in 1..240"}
	}
	return nil
}
