package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/map-viewer/internal/model"
	"github.com/ytget/map-viewer/internal/navigation"
	"github.com/ytget/map-viewer/internal/tiles"
)

// isolate points Load at an empty directory and clears overriding env vars
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv(EnvAPIKey, "")
	t.Setenv("MAPVIEWER_SERVICE_API_KEY", "")
	return t.TempDir()
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Service.BaseURL != tiles.DefaultBaseURL {
		t.Errorf("Expected base URL %s, got %s", tiles.DefaultBaseURL, cfg.Service.BaseURL)
	}
	if cfg.Service.Layer != tiles.LayerMap {
		t.Errorf("Expected layer %s, got %s", tiles.LayerMap, cfg.Service.Layer)
	}
	if cfg.Service.Timeout != 0 {
		t.Errorf("Expected no timeout by default, got %v", cfg.Service.Timeout)
	}
	if cfg.Service.APIKey != "" {
		t.Errorf("Expected empty API key, got %q", cfg.Service.APIKey)
	}

	expectedState := model.ViewState{Latitude: 55.751244, Longitude: 37.618423, Zoom: 10}
	if got := cfg.InitialState(); got != expectedState {
		t.Errorf("Expected initial state %+v, got %+v", expectedState, got)
	}

	if got := cfg.Policy(); got != navigation.DefaultPolicy() {
		t.Errorf("Expected default policy %+v, got %+v", navigation.DefaultPolicy(), got)
	}

	if size := cfg.ImageSize(); size.Width != 600 || size.Height != 400 {
		t.Errorf("Expected 600x400 image, got %dx%d", size.Width, size.Height)
	}
	if cfg.Image.File != "map.png" {
		t.Errorf("Expected image file map.png, got %s", cfg.Image.File)
	}
	if cfg.LogLevel() != zerolog.InfoLevel {
		t.Errorf("Expected info log level, got %v", cfg.LogLevel())
	}
	if cfg.Metrics.Addr != "" {
		t.Errorf("Expected metrics disabled, got %q", cfg.Metrics.Addr)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
service:
  base_url: https://static-maps.yandex.ru/v1
  layer: sat
  timeout: 3s
view:
  latitude: 59.93
  longitude: 30.31
  zoom: 5
  min_zoom: 0
  clamp_coordinates: false
pan:
  initial_step: 20
image:
  width: 650
  height: 450
logging:
  level: debug
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Service.BaseURL != tiles.VersionedBaseURL {
		t.Errorf("Expected versioned base URL, got %s", cfg.Service.BaseURL)
	}
	if cfg.Service.Layer != tiles.LayerSatellite {
		t.Errorf("Expected sat layer, got %s", cfg.Service.Layer)
	}
	if cfg.Service.Timeout != 3*time.Second {
		t.Errorf("Expected 3s timeout, got %v", cfg.Service.Timeout)
	}

	policy := cfg.Policy()
	if policy.MinZoom != 0 || policy.MaxZoom != navigation.DefaultMaxZoom {
		t.Errorf("Expected zoom range [0, %d], got [%d, %d]", navigation.DefaultMaxZoom, policy.MinZoom, policy.MaxZoom)
	}
	if policy.ClampCoordinates {
		t.Error("Expected coordinate clamping to be disabled")
	}
	if policy.InitialStep != 20 || policy.FinalStep != navigation.DefaultFinalStep {
		t.Errorf("Unexpected steps %v / %v", policy.InitialStep, policy.FinalStep)
	}
	if cfg.LogLevel() != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %v", cfg.LogLevel())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	t.Setenv("MAPVIEWER_VIEW_ZOOM", "15")
	t.Setenv("MAPVIEWER_SERVICE_LAYER", "sat,skl")
	t.Setenv(EnvAPIKey, "from-env")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.View.Zoom != 15 {
		t.Errorf("Expected zoom 15 from env, got %d", cfg.View.Zoom)
	}
	if cfg.Service.Layer != tiles.LayerHybrid {
		t.Errorf("Expected hybrid layer from env, got %s", cfg.Service.Layer)
	}
	if cfg.Service.APIKey != "from-env" {
		t.Errorf("Expected API key from API_KEY, got %q", cfg.Service.APIKey)
	}
}

func TestLoad_InitialStateIsClamped(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
view:
  latitude: 89.5
  zoom: 30
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	state := cfg.InitialState()
	if state.Latitude != 85 || state.Zoom != navigation.DefaultMaxZoom {
		t.Errorf("Expected clamped state, got %+v", state)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		substr string
	}{
		{"bad layer", "service:\n  layer: traffic\n", "service.layer"},
		{"image too wide", "image:\n  width: 1000\n", "image.width"},
		{"image zero height", "image:\n  height: 0\n", "image.height"},
		{"zoom inverted", "view:\n  min_zoom: 15\n  max_zoom: 5\n", "exceeds max zoom"},
		{"negative step", "pan:\n  final_step: -1\n", "final step"},
		{"empty base", "service:\n  base_url: \"\"\n", "service.base_url"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := isolate(t)
			writeConfig(t, dir, test.yaml)

			_, err := Load(dir)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), test.substr) {
				t.Errorf("Error %q should mention %q", err, test.substr)
			}
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "view: [unclosed\n")

	if _, err := Load(dir); err == nil {
		t.Error("Expected error for malformed config file")
	}
}

func TestLogLevel_Fallback(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "chatty"}}
	if cfg.LogLevel() != zerolog.InfoLevel {
		t.Errorf("Expected info fallback, got %v", cfg.LogLevel())
	}

	cfg.Logging.Level = "WARN"
	if cfg.LogLevel() != zerolog.WarnLevel {
		t.Errorf("Expected warn level, got %v", cfg.LogLevel())
	}
}
