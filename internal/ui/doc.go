package ui

// Package ui contains the Fyne-based desktop window for the map viewer. It
// maps key presses and pointer gestures to navigation actions, hands them to
// the viewer service and shows either the fetched map image or a localized
// error text in its place.
