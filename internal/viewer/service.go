package viewer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/map-viewer/internal/logging"
	"github.com/ytget/map-viewer/internal/metrics"
	"github.com/ytget/map-viewer/internal/model"
	"github.com/ytget/map-viewer/internal/navigation"
	"github.com/ytget/map-viewer/internal/tiles"
)

// ErrStoreFailed wraps failures to write the fetched image to disk
var ErrStoreFailed = errors.New("store failed")

// Options configure a Service
type Options struct {
	Policy    navigation.Policy
	Initial   model.ViewState
	Fetcher   tiles.Fetcher
	Store     ImageWriter
	ImageSize tiles.Size
	Layer     string
	APIKey    string
	Metrics   *metrics.Recorder // optional
}

// Service handles view updates and image fetches
type Service struct {
	policy    navigation.Policy
	state     model.ViewState
	fetcher   tiles.Fetcher
	store     ImageWriter
	imageSize tiles.Size
	layer     string
	apiKey    string
	metrics   *metrics.Recorder
	onUpdate  func(Snapshot) // callback for UI updates
	log       zerolog.Logger
	now       func() time.Time
}

// NewService creates a new viewer service
func NewService(opts Options) *Service {
	layer := opts.Layer
	if layer == "" {
		layer = tiles.LayerMap
	}

	s := &Service{
		policy:    opts.Policy,
		state:     opts.Policy.Normalize(opts.Initial),
		fetcher:   opts.Fetcher,
		store:     opts.Store,
		imageSize: opts.ImageSize,
		layer:     layer,
		apiKey:    opts.APIKey,
		metrics:   opts.Metrics,
		log:       logging.Module("viewer"),
		now:       time.Now,
	}
	s.metrics.SetZoom(s.state.Zoom)
	return s
}

// SetUpdateCallback sets the callback function for snapshot updates
func (s *Service) SetUpdateCallback(callback func(Snapshot)) {
	s.onUpdate = callback
}

// State returns the current view state
func (s *Service) State() model.ViewState {
	return s.state
}

// Policy returns the navigation limits in use
func (s *Service) Policy() navigation.Policy {
	return s.policy
}

// PanStep returns the pan distance for the current zoom level
func (s *Service) PanStep() float64 {
	return s.policy.PanStep(s.state.Zoom)
}

// Layer returns the current map layer
func (s *Service) Layer() string {
	return s.layer
}

// SetLayer switches the map layer used by later fetches
func (s *Service) SetLayer(layer string) error {
	if !tiles.IsValidLayer(layer) {
		return fmt.Errorf("unknown map layer: %q", layer)
	}
	s.layer = layer
	return nil
}

// ImagePath returns where fetched images are written
func (s *Service) ImagePath() string {
	return s.store.Path()
}

// CurrentRequest returns the request that Refresh would send now
func (s *Service) CurrentRequest() tiles.Request {
	return tiles.NewRequest(s.state, s.imageSize, s.layer, s.apiKey)
}

// Apply updates the view with action and fetches the new image. A clamped
// action that leaves the state unchanged still refetches.
func (s *Service) Apply(ctx context.Context, action model.Action) Snapshot {
	s.Move(action)
	return s.refresh(ctx, action)
}

// Move updates the view with action without fetching
func (s *Service) Move(action model.Action) model.ViewState {
	prev := s.state
	s.state = s.policy.Apply(s.state, action)
	s.metrics.ObserveAction(action.String(), s.state.Zoom)

	s.log.Debug().
		Str("action", action.String()).
		Str("from", prev.String()).
		Str("to", s.state.String()).
		Float64("step", s.PanStep()).
		Msg("View updated")

	return s.state
}

// Refresh fetches the image for the current view without changing it
func (s *Service) Refresh(ctx context.Context) Snapshot {
	return s.refresh(ctx, model.ActionRefresh)
}

func (s *Service) refresh(ctx context.Context, action model.Action) Snapshot {
	req := s.CurrentRequest()
	snap := Snapshot{
		RequestID: uuid.NewString(),
		State:     s.state,
		Action:    action,
		Layer:     s.layer,
	}

	start := s.now()
	data, err := s.fetcher.Fetch(ctx, req)
	snap.Duration = s.now().Sub(start)
	snap.FetchedAt = start

	switch {
	case err != nil:
		snap.Err = err
		s.metrics.ObserveFetch(metrics.ResultFetchFailed, snap.Duration, 0)
		s.log.Warn().
			Err(err).
			Str("request_id", snap.RequestID).
			Str("view", s.state.String()).
			Msg("Map fetch failed")
	default:
		path, werr := s.store.Write(data)
		if werr != nil {
			snap.Err = fmt.Errorf("%w: %w", ErrStoreFailed, werr)
			s.metrics.ObserveFetch(metrics.ResultStoreFailed, snap.Duration, len(data))
			s.log.Error().
				Err(werr).
				Str("request_id", snap.RequestID).
				Msg("Failed to store map image")
			break
		}
		snap.ImagePath = path
		s.metrics.ObserveFetch(metrics.ResultSuccess, snap.Duration, len(data))
		s.log.Info().
			Str("request_id", snap.RequestID).
			Str("view", s.state.String()).
			Str("layer", s.layer).
			Int("bytes", len(data)).
			Dur("took", snap.Duration).
			Msg("Map updated")
	}

	s.notifyUpdate(snap)
	return snap
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(snap Snapshot) {
	if s.onUpdate != nil {
		s.onUpdate(snap)
	}
}

var _ Navigator = (*Service)(nil)
