package model

// Action represents a discrete navigation command produced by a key press
type Action string

const (
	// ActionZoomIn increases the zoom level by one
	ActionZoomIn Action = "ZoomIn"

	// ActionZoomOut decreases the zoom level by one
	ActionZoomOut Action = "ZoomOut"

	// ActionPanNorth moves the centre up (latitude grows)
	ActionPanNorth Action = "PanNorth"

	// ActionPanSouth moves the centre down
	ActionPanSouth Action = "PanSouth"

	// ActionPanWest moves the centre left (longitude shrinks)
	ActionPanWest Action = "PanWest"

	// ActionPanEast moves the centre right
	ActionPanEast Action = "PanEast"

	// ActionRefresh refetches the current view without changing it
	ActionRefresh Action = "Refresh"
)

// String returns the string representation of Action
func (a Action) String() string {
	return string(a)
}

// IsZoom returns true for the two zoom actions
func (a Action) IsZoom() bool {
	return a == ActionZoomIn || a == ActionZoomOut
}

// IsPan returns true for the four pan actions
func (a Action) IsPan() bool {
	_, _, ok := a.PanVector()
	return ok
}

// ZoomDelta returns the zoom change for a zoom action and 0 otherwise
func (a Action) ZoomDelta() int {
	switch a {
	case ActionZoomIn:
		return 1
	case ActionZoomOut:
		return -1
	default:
		return 0
	}
}

// PanVector returns the axis and direction of a pan action.
// ok is false when the action does not pan.
func (a Action) PanVector() (axis Axis, dir Direction, ok bool) {
	switch a {
	case ActionPanNorth:
		return AxisLatitude, Positive, true
	case ActionPanSouth:
		return AxisLatitude, Negative, true
	case ActionPanWest:
		return AxisLongitude, Negative, true
	case ActionPanEast:
		return AxisLongitude, Positive, true
	default:
		return AxisLatitude, Positive, false
	}
}

// AllActions returns every action in a stable order
func AllActions() []Action {
	return []Action{
		ActionZoomIn, ActionZoomOut,
		ActionPanNorth, ActionPanSouth, ActionPanWest, ActionPanEast,
		ActionRefresh,
	}
}
