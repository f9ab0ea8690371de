package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/map-viewer/internal/model"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// Action returns the navigation action for a gesture. Swipes drag the map,
// so swiping left reveals what lies east.
func (g GestureType) Action() (model.Action, bool) {
	switch g {
	case GestureSwipeLeft:
		return model.ActionPanEast, true
	case GestureSwipeRight:
		return model.ActionPanWest, true
	case GestureSwipeUp:
		return model.ActionPanSouth, true
	case GestureSwipeDown:
		return model.ActionPanNorth, true
	case GestureLongPress:
		return model.ActionRefresh, true
	default:
		return "", false
	}
}

// GestureHandler classifies touches and drags into gestures
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Drag tracking (desktop pointer)
	dragging bool
	dragDX   float32
	dragDY   float32

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration

	now func() time.Time
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
		now:               time.Now,
	}
}

// Classify returns the gesture for a movement of (dx, dy) lasting duration
func (gh *GestureHandler) Classify(dx, dy float32, duration time.Duration) GestureType {
	distanceSq := dx*dx + dy*dy
	thresholdSq := gh.swipeThreshold * gh.swipeThreshold

	switch {
	case distanceSq >= thresholdSq:
		return swipeDirection(dx, dy)
	case duration >= gh.longPressDuration:
		return GestureLongPress
	default:
		return GestureTap
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	duration := gh.now().Sub(gh.touchStartTime)
	gh.touchStartTime = time.Time{}

	gh.triggerGesture(gh.Classify(dx, dy, duration))
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// Drag accumulates pointer movement of a drag in progress
func (gh *GestureHandler) Drag(dx, dy float32) {
	if !gh.dragging {
		gh.dragging = true
		gh.dragDX, gh.dragDY = 0, 0
	}
	gh.dragDX += dx
	gh.dragDY += dy
}

// DragEnd emits a swipe if the finished drag was long enough
func (gh *GestureHandler) DragEnd() {
	if !gh.dragging {
		return
	}
	gh.dragging = false

	gesture := gh.Classify(gh.dragDX, gh.dragDY, 0)
	if gesture != GestureTap {
		gh.triggerGesture(gesture)
	}
}

// swipeDirection determines the direction of a swipe gesture
func swipeDirection(dx, dy float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// MapSurface wraps the map display and turns drags, touches and scroll
// wheel movement into navigation actions.
type MapSurface struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	gestures *GestureHandler
	onAction func(model.Action)
}

// NewMapSurface creates a surface around content that reports actions to onAction
func NewMapSurface(content fyne.CanvasObject, onAction func(model.Action)) *MapSurface {
	s := &MapSurface{
		content:  content,
		onAction: onAction,
	}
	s.gestures = NewGestureHandler(s.handleGesture)
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *MapSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// Dragged implements fyne.Draggable
func (s *MapSurface) Dragged(event *fyne.DragEvent) {
	s.gestures.Drag(event.Dragged.DX, event.Dragged.DY)
}

// DragEnd implements fyne.Draggable
func (s *MapSurface) DragEnd() {
	s.gestures.DragEnd()
}

// Scrolled implements fyne.Scrollable: wheel up zooms in, wheel down zooms out
func (s *MapSurface) Scrolled(event *fyne.ScrollEvent) {
	switch {
	case event.Scrolled.DY > 0:
		s.emit(model.ActionZoomIn)
	case event.Scrolled.DY < 0:
		s.emit(model.ActionZoomOut)
	}
}

// TouchDown implements mobile.Touchable
func (s *MapSurface) TouchDown(event *mobile.TouchEvent) {
	s.gestures.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (s *MapSurface) TouchUp(event *mobile.TouchEvent) {
	s.gestures.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (s *MapSurface) TouchCancel(event *mobile.TouchEvent) {
	s.gestures.TouchCancel(event)
}

func (s *MapSurface) handleGesture(gesture GestureType) {
	if action, ok := gesture.Action(); ok {
		s.emit(action)
	}
}

func (s *MapSurface) emit(action model.Action) {
	if s.onAction != nil {
		s.onAction(action)
	}
}

var (
	_ fyne.Draggable   = (*MapSurface)(nil)
	_ fyne.Scrollable  = (*MapSurface)(nil)
	_ mobile.Touchable = (*MapSurface)(nil)
)
