package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Validation errors returned by Load.
var (
	// ErrZoomFactor indicates render.zoom_factor is not greater than 1.
	ErrZoomFactor = errors.New("render.zoom_factor must be greater than 1")
	// ErrRingSamples indicates render.ring_samples is too small to draw a ring.
	ErrRingSamples = errors.New("render.ring_samples must be at least 8")
	// ErrReferenceTime indicates the at value is not an RFC 3339 timestamp.
	ErrReferenceTime = errors.New("at must be an RFC 3339 timestamp")
)

// RenderConfig holds the optional renderer features.
type RenderConfig struct {
	ShowTable      bool    `mapstructure:"show_table"`
	ShowOrbitRings bool    `mapstructure:"show_orbit_rings"`
	EnableHover    bool    `mapstructure:"enable_hover"`
	EnableZoom     bool    `mapstructure:"enable_zoom"`
	ZoomFactor     float64 `mapstructure:"zoom_factor"`
	RingSamples    int     `mapstructure:"ring_samples"`
}

// Config holds all runtime configuration for an orrery session.
// Values are populated from .orrery.yaml, ORRERY_* env vars, and CLI flags.
type Config struct {
	Ephemeris     string       `mapstructure:"ephemeris"`
	ElementsFile  string       `mapstructure:"elements_file"`
	At            string       `mapstructure:"at"`
	Static        bool         `mapstructure:"static"`
	TelemetryPath string       `mapstructure:"telemetry_path"`
	LogLevel      string       `mapstructure:"log_level"`
	LogJSON       bool         `mapstructure:"log_json"`
	LogFile       string       `mapstructure:"log_file"`
	Verbose       bool         `mapstructure:"verbose"`
	Render        RenderConfig `mapstructure:"render"`

	// ReferenceTime is At parsed; zero means "now".
	ReferenceTime time.Time `mapstructure:"-"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("ephemeris", "builtin")
	viper.SetDefault("elements_file", "")
	viper.SetDefault("at", "")
	viper.SetDefault("static", false)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_json", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("render.show_table", true)
	viper.SetDefault("render.show_orbit_rings", true)
	viper.SetDefault("render.enable_hover", true)
	viper.SetDefault("render.enable_zoom", true)
	viper.SetDefault("render.zoom_factor", 1.2)
	viper.SetDefault("render.ring_samples", 72)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Render.ZoomFactor <= 1 {
		return fmt.Errorf("%w (got %g)", ErrZoomFactor, c.Render.ZoomFactor)
	}
	if c.Render.RingSamples < 8 {
		return fmt.Errorf("%w (got %d)", ErrRingSamples, c.Render.RingSamples)
	}
	if c.At != "" {
		t, err := time.Parse(time.RFC3339, c.At)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReferenceTime, err)
		}
		c.ReferenceTime = t.UTC()
	}
	return nil
}
