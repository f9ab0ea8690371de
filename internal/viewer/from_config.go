package viewer

import (
	"github.com/ytget/map-viewer/internal/config"
	"github.com/ytget/map-viewer/internal/metrics"
	"github.com/ytget/map-viewer/internal/platform"
	"github.com/ytget/map-viewer/internal/tiles"
)

// NewServiceFromConfig wires a Service with the HTTP tile client and the
// on-disk image store described by cfg. rec may be nil.
func NewServiceFromConfig(cfg *config.Config, rec *metrics.Recorder) *Service {
	return NewService(Options{
		Policy:    cfg.Policy(),
		Initial:   cfg.InitialState(),
		Fetcher:   tiles.NewClient(cfg.Service.BaseURL, cfg.Service.Timeout),
		Store:     platform.NewImageStore(cfg.Image.Dir, cfg.Image.File),
		ImageSize: cfg.ImageSize(),
		Layer:     cfg.Service.Layer,
		APIKey:    cfg.Service.APIKey,
		Metrics:   rec,
	})
}
