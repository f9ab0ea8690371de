package model

import "fmt"

// ViewState is the current centre and zoom of the displayed map
type ViewState struct {
	Latitude  float64 `json:"latitude" mapstructure:"latitude"`
	Longitude float64 `json:"longitude" mapstructure:"longitude"`
	Zoom      int     `json:"zoom" mapstructure:"zoom"`
}

// Coordinate returns the value of the state on the given axis
func (vs ViewState) Coordinate(axis Axis) float64 {
	if axis == AxisLongitude {
		return vs.Longitude
	}
	return vs.Latitude
}

// WithCoordinate returns a copy of the state with the axis value replaced
func (vs ViewState) WithCoordinate(axis Axis, value float64) ViewState {
	if axis == AxisLongitude {
		vs.Longitude = value
	} else {
		vs.Latitude = value
	}
	return vs
}

// String returns "lat, lon @ zoom" with six decimals, the precision the UI shows
func (vs ViewState) String() string {
	return fmt.Sprintf("%.6f, %.6f @ z%d", vs.Latitude, vs.Longitude, vs.Zoom)
}

// Axis selects which coordinate a pan moves
type Axis int

const (
	AxisLatitude Axis = iota
	AxisLongitude
)

// String returns the string representation of Axis
func (a Axis) String() string {
	switch a {
	case AxisLatitude:
		return "latitude"
	case AxisLongitude:
		return "longitude"
	default:
		return "unknown"
	}
}

// Direction is the sign of a pan along an axis
type Direction int

const (
	Negative Direction = -1
	Positive Direction = 1
)

// Sign returns +1 or -1 as a float multiplier
func (d Direction) Sign() float64 {
	if d < 0 {
		return -1
	}
	return 1
}
