package viewer

import (
	"context"

	"github.com/ytget/map-viewer/internal/model"
)

// Navigator defines the interface the UI uses to drive the map view.
type Navigator interface {
	SetUpdateCallback(func(Snapshot))
	State() model.ViewState
	PanStep() float64
	Apply(ctx context.Context, action model.Action) Snapshot
	Refresh(ctx context.Context) Snapshot

	// Layer returns the current map layer (map/sat/sat,skl)
	Layer() string

	// SetLayer switches the map layer for subsequent fetches
	SetLayer(layer string) error

	// ImagePath returns where fetched images are written
	ImagePath() string
}

// ImageWriter stores fetched image bytes and returns the file path
type ImageWriter interface {
	Write(data []byte) (string, error)
	Path() string
}
