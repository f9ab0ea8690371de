package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window defaults
const (
	DefaultWindowPadding float32 = 16
	StatusBarHeight      float32 = 24
)

// Text fragments
const (
	DegreeSign         = "°"
	CoordinatesFormat  = "%.6f, %.6f"
	MiddleDotSeparator = " · "
)

// Gesture thresholds
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// Language codes
const (
	LangEnglish = "en"
	LangRussian = "ru"
	LangSystem  = "system"
)
