package main

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ytget/map-viewer/internal/config"
	"github.com/ytget/map-viewer/internal/logging"
	"github.com/ytget/map-viewer/internal/metrics"
	"github.com/ytget/map-viewer/internal/ui"
	"github.com/ytget/map-viewer/internal/viewer"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.map-viewer"

	metricsShutdownTimeout = 2 * time.Second
)

func main() {
	logging.Setup(zerolog.InfoLevel, nil)

	if err := config.LoadEnv(config.DefaultEnvPaths()...); err != nil {
		log.Fatal().Err(err).Msg("Failed to load .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logging.Setup(cfg.LogLevel(), nil)

	log.Info().Str("version", version).Msg("Map viewer starting")
	if cfg.Service.APIKey == "" {
		log.Warn().Msg("API_KEY is not set; the map service will likely refuse requests")
	}

	var recorder *metrics.Recorder
	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		recorder, err = metrics.NewRecorder(reg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to register metrics")
		}
		srv := metrics.Serve(cfg.Metrics.Addr, reg, func(err error) {
			log.Error().Err(err).Str("addr", cfg.Metrics.Addr).Msg("Metrics listener stopped")
		})
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("Serving metrics")
	}

	svc := viewer.NewServiceFromConfig(cfg, recorder)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow("")
	size := cfg.ImageSize()
	myWindow.Resize(fyne.NewSize(
		float32(size.Width)+2*ui.DefaultWindowPadding,
		float32(size.Height)+ui.StatusBarHeight+2*ui.DefaultWindowPadding,
	))

	mapUI := ui.NewMapUI(myWindow, myApp, svc, size)
	mapUI.Start()

	myWindow.ShowAndRun()
	log.Info().Msg("Map viewer stopped")
}
