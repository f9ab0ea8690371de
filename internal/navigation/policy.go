package navigation

import (
	"fmt"
	"math"
	"strings"

	"github.com/ytget/map-viewer/internal/model"
)

// Default limits and steps
const (
	DefaultMinZoom     = 1
	DefaultMaxZoom     = 21
	DefaultInitialStep = 10.0
	DefaultFinalStep   = 0.00001
)

// Bounds is the valid coordinate rectangle in degrees
type Bounds struct {
	MinLat float64 `mapstructure:"min_lat"`
	MaxLat float64 `mapstructure:"max_lat"`
	MinLon float64 `mapstructure:"min_lon"`
	MaxLon float64 `mapstructure:"max_lon"`
}

// DefaultBounds covers the Web Mercator latitude band and the full longitude range
func DefaultBounds() Bounds {
	return Bounds{MinLat: -85, MaxLat: 85, MinLon: -180, MaxLon: 180}
}

// Range returns the bounds of one axis
func (b Bounds) Range(axis model.Axis) (lo, hi float64) {
	if axis == model.AxisLongitude {
		return b.MinLon, b.MaxLon
	}
	return b.MinLat, b.MaxLat
}

// Contains reports whether the state's coordinates lie inside the bounds
func (b Bounds) Contains(vs model.ViewState) bool {
	return vs.Latitude >= b.MinLat && vs.Latitude <= b.MaxLat &&
		vs.Longitude >= b.MinLon && vs.Longitude <= b.MaxLon
}

// Policy holds the limits that govern every view update
type Policy struct {
	MinZoom          int
	MaxZoom          int
	Bounds           Bounds
	ClampCoordinates bool
	InitialStep      float64 // pan distance in degrees at zoom 1
	FinalStep        float64 // pan distance in degrees at MaxZoom
}

// DefaultPolicy returns the limits of the desktop viewer
func DefaultPolicy() Policy {
	return Policy{
		MinZoom:          DefaultMinZoom,
		MaxZoom:          DefaultMaxZoom,
		Bounds:           DefaultBounds(),
		ClampCoordinates: true,
		InitialStep:      DefaultInitialStep,
		FinalStep:        DefaultFinalStep,
	}
}

// Validate checks that the policy can produce in-range states
func (p Policy) Validate() error {
	var errs []string

	if p.MinZoom < 0 {
		errs = append(errs, fmt.Sprintf("min zoom must be >= 0, got %d", p.MinZoom))
	}
	if p.MinZoom > p.MaxZoom {
		errs = append(errs, fmt.Sprintf("min zoom %d exceeds max zoom %d", p.MinZoom, p.MaxZoom))
	}
	if !(p.InitialStep > 0) {
		errs = append(errs, fmt.Sprintf("initial step must be positive, got %v", p.InitialStep))
	}
	if !(p.FinalStep > 0) {
		errs = append(errs, fmt.Sprintf("final step must be positive, got %v", p.FinalStep))
	}
	if p.ClampCoordinates {
		if p.Bounds.MinLat > p.Bounds.MaxLat {
			errs = append(errs, fmt.Sprintf("latitude bounds inverted: [%v, %v]", p.Bounds.MinLat, p.Bounds.MaxLat))
		}
		if p.Bounds.MinLon > p.Bounds.MaxLon {
			errs = append(errs, fmt.Sprintf("longitude bounds inverted: [%v, %v]", p.Bounds.MinLon, p.Bounds.MaxLon))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid navigation policy: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Ratio returns the common ratio of the pan step progression
func (p Policy) Ratio() float64 {
	if p.MaxZoom <= 1 {
		return 1
	}
	return math.Pow(p.FinalStep/p.InitialStep, 1/float64(p.MaxZoom-1))
}

// PanStep returns the pan distance in degrees for a zoom level.
// The step is InitialStep at zoom 1 and FinalStep at MaxZoom.
func (p Policy) PanStep(zoom int) float64 {
	return p.InitialStep * math.Pow(p.Ratio(), float64(zoom-1))
}

// ClampZoom limits zoom to [MinZoom, MaxZoom]
func (p Policy) ClampZoom(zoom int) int {
	return max(p.MinZoom, min(zoom, p.MaxZoom))
}

// ApplyZoomDelta adds delta to the zoom level and saturates at the limits
func (p Policy) ApplyZoomDelta(vs model.ViewState, delta int) model.ViewState {
	vs.Zoom = p.ClampZoom(vs.Zoom + delta)
	return vs
}

// ApplyPanDelta moves the state one pan step along axis in direction dir
func (p Policy) ApplyPanDelta(vs model.ViewState, axis model.Axis, dir model.Direction) model.ViewState {
	value := vs.Coordinate(axis) + dir.Sign()*p.PanStep(vs.Zoom)
	return vs.WithCoordinate(axis, p.clampAxis(axis, value))
}

// Apply dispatches a navigation action. Actions that do not move the view
// return the state unchanged.
func (p Policy) Apply(vs model.ViewState, action model.Action) model.ViewState {
	if action.IsZoom() {
		return p.ApplyZoomDelta(vs, action.ZoomDelta())
	}
	if axis, dir, ok := action.PanVector(); ok {
		return p.ApplyPanDelta(vs, axis, dir)
	}
	return vs
}

// Normalize brings an externally supplied state into range
func (p Policy) Normalize(vs model.ViewState) model.ViewState {
	vs.Zoom = p.ClampZoom(vs.Zoom)
	vs.Latitude = p.clampAxis(model.AxisLatitude, vs.Latitude)
	vs.Longitude = p.clampAxis(model.AxisLongitude, vs.Longitude)
	return vs
}

// InRange reports whether every field of the state satisfies the policy
func (p Policy) InRange(vs model.ViewState) bool {
	if vs.Zoom < p.MinZoom || vs.Zoom > p.MaxZoom {
		return false
	}
	if p.ClampCoordinates {
		return p.Bounds.Contains(vs)
	}
	return true
}

func (p Policy) clampAxis(axis model.Axis, value float64) float64 {
	if !p.ClampCoordinates {
		return value
	}
	lo, hi := p.Bounds.Range(axis)
	return max(lo, min(value, hi))
}
