package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/ytget/map-viewer/internal/model"
	"github.com/ytget/map-viewer/internal/navigation"
	"github.com/ytget/map-viewer/internal/tiles"
)

// EnvPrefix is prepended to every override variable: MAPVIEWER_VIEW_ZOOM → view.zoom
const EnvPrefix = "MAPVIEWER"

// Config holds all application configuration.
type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	View    ViewConfig    `mapstructure:"view"`
	Pan     PanConfig     `mapstructure:"pan"`
	Image   ImageConfig   `mapstructure:"image"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type ServiceConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Layer   string        `mapstructure:"layer"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ViewConfig struct {
	Latitude         float64           `mapstructure:"latitude"`
	Longitude        float64           `mapstructure:"longitude"`
	Zoom             int               `mapstructure:"zoom"`
	MinZoom          int               `mapstructure:"min_zoom"`
	MaxZoom          int               `mapstructure:"max_zoom"`
	ClampCoordinates bool              `mapstructure:"clamp_coordinates"`
	Bounds           navigation.Bounds `mapstructure:"bounds"`
}

type PanConfig struct {
	InitialStep float64 `mapstructure:"initial_step"`
	FinalStep   float64 `mapstructure:"final_step"`
}

type ImageConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Dir    string `mapstructure:"dir"`
	File   string `mapstructure:"file"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Policy returns the navigation limits described by the config
func (c *Config) Policy() navigation.Policy {
	return navigation.Policy{
		MinZoom:          c.View.MinZoom,
		MaxZoom:          c.View.MaxZoom,
		Bounds:           c.View.Bounds,
		ClampCoordinates: c.View.ClampCoordinates,
		InitialStep:      c.Pan.InitialStep,
		FinalStep:        c.Pan.FinalStep,
	}
}

// InitialState returns the configured starting view, brought into range
func (c *Config) InitialState() model.ViewState {
	return c.Policy().Normalize(model.ViewState{
		Latitude:  c.View.Latitude,
		Longitude: c.View.Longitude,
		Zoom:      c.View.Zoom,
	})
}

// ImageSize returns the requested image dimensions
func (c *Config) ImageSize() tiles.Size {
	return tiles.Size{Width: c.Image.Width, Height: c.Image.Height}
}

// LogLevel parses logging.level, falling back to info
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Load reads configuration from file and environment variables.
// configPaths are searched for config.yaml in order; "." and "./configs"
// are used when none are given.
func Load(configPaths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{".", "./configs"}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: MAPVIEWER_SERVICE_LAYER → service.layer
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("service.api_key", EnvPrefix+"_SERVICE_API_KEY", EnvAPIKey); err != nil {
		return nil, fmt.Errorf("bind api key: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	bounds := navigation.DefaultBounds()

	v.SetDefault("service.base_url", tiles.DefaultBaseURL)
	v.SetDefault("service.api_key", "")
	v.SetDefault("service.layer", tiles.LayerMap)
	v.SetDefault("service.timeout", time.Duration(0))

	v.SetDefault("view.latitude", 55.751244)
	v.SetDefault("view.longitude", 37.618423)
	v.SetDefault("view.zoom", 10)
	v.SetDefault("view.min_zoom", navigation.DefaultMinZoom)
	v.SetDefault("view.max_zoom", navigation.DefaultMaxZoom)
	v.SetDefault("view.clamp_coordinates", true)
	v.SetDefault("view.bounds.min_lat", bounds.MinLat)
	v.SetDefault("view.bounds.max_lat", bounds.MaxLat)
	v.SetDefault("view.bounds.min_lon", bounds.MinLon)
	v.SetDefault("view.bounds.max_lon", bounds.MaxLon)

	v.SetDefault("pan.initial_step", navigation.DefaultInitialStep)
	v.SetDefault("pan.final_step", navigation.DefaultFinalStep)

	v.SetDefault("image.width", 600)
	v.SetDefault("image.height", 400)
	v.SetDefault("image.dir", "")
	v.SetDefault("image.file", "map.png")

	v.SetDefault("logging.level", "info")
	v.SetDefault("metrics.addr", "")
}

// Validate checks that required configuration fields are present and sane.
// A missing API key is allowed: fetches will fail and the UI says so.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Service.BaseURL) == "" {
		errs = append(errs, "service.base_url is required")
	}
	if !tiles.IsValidLayer(c.Service.Layer) {
		errs = append(errs, fmt.Sprintf("service.layer must be one of %v, got %q", tiles.Layers(), c.Service.Layer))
	}
	if c.Service.Timeout < 0 {
		errs = append(errs, "service.timeout must not be negative")
	}
	if c.Image.Width <= 0 || c.Image.Width > 650 {
		errs = append(errs, fmt.Sprintf("image.width must be 1-650, got %d", c.Image.Width))
	}
	if c.Image.Height <= 0 || c.Image.Height > 450 {
		errs = append(errs, fmt.Sprintf("image.height must be 1-450, got %d", c.Image.Height))
	}
	if err := c.Policy().Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
