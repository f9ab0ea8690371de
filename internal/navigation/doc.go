package navigation

// Package navigation turns navigation actions into new view states. Every
// operation is a pure function of a Policy and a ViewState: zoom saturates at
// the configured limits, coordinates are clamped to their bounds, and the pan
// step shrinks geometrically from InitialStep at zoom 1 to FinalStep at MaxZoom.
