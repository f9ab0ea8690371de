package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/map-viewer/internal/model"
)

func TestGestureHandler_Classify(t *testing.T) {
	gh := NewGestureHandler(nil)

	tests := []struct {
		name     string
		dx, dy   float32
		duration time.Duration
		want     GestureType
	}{
		{"short tap", 2, 3, 100 * time.Millisecond, GestureTap},
		{"long press", 1, 1, time.Second, GestureLongPress},
		{"swipe left", -80, 10, 100 * time.Millisecond, GestureSwipeLeft},
		{"swipe right", 80, -10, 100 * time.Millisecond, GestureSwipeRight},
		{"swipe up", 5, -70, 100 * time.Millisecond, GestureSwipeUp},
		{"swipe down", -5, 70, 100 * time.Millisecond, GestureSwipeDown},
		{"diagonal just under threshold", 30, 30, 0, GestureTap},
		{"slow swipe is still a swipe", 0, 90, 2 * time.Second, GestureSwipeDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gh.Classify(tt.dx, tt.dy, tt.duration); got != tt.want {
				t.Errorf("Classify(%v, %v, %v) = %v, want %v", tt.dx, tt.dy, tt.duration, got, tt.want)
			}
		})
	}
}

func TestGestureType_Action(t *testing.T) {
	tests := []struct {
		gesture GestureType
		want    model.Action
		ok      bool
	}{
		{GestureSwipeLeft, model.ActionPanEast, true},
		{GestureSwipeRight, model.ActionPanWest, true},
		{GestureSwipeUp, model.ActionPanSouth, true},
		{GestureSwipeDown, model.ActionPanNorth, true},
		{GestureLongPress, model.ActionRefresh, true},
		{GestureTap, "", false},
		{GestureNone, "", false},
	}

	for _, tt := range tests {
		got, ok := tt.gesture.Action()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%d.Action() = %v, %v; want %v, %v", tt.gesture, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGestureHandler_Touch(t *testing.T) {
	var got []GestureType
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })

	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	gh.now = func() time.Time { return clock }

	gh.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 100)}})
	clock = clock.Add(50 * time.Millisecond)
	gh.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(20, 100)}})

	// Cancelled touches and stray TouchUp events are ignored
	gh.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(0, 0)}})
	gh.TouchCancel(nil)
	gh.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(0, 200)}})

	if len(got) != 1 || got[0] != GestureSwipeLeft {
		t.Fatalf("gestures = %v, want [swipe left]", got)
	}
}

func TestGestureHandler_Drag(t *testing.T) {
	var got []GestureType
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })

	for i := 0; i < 6; i++ {
		gh.Drag(0, 10)
	}
	gh.DragEnd()

	// A small drag does not trigger anything
	gh.Drag(5, 5)
	gh.DragEnd()

	// DragEnd without a drag is a no-op
	gh.DragEnd()

	if len(got) != 1 || got[0] != GestureSwipeDown {
		t.Fatalf("gestures = %v, want [swipe down]", got)
	}
}

func TestMapSurface_EmitsActions(t *testing.T) {
	var got []model.Action
	s := NewMapSurface(widget.NewLabel("map"), func(a model.Action) { got = append(got, a) })

	s.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 3}})
	s.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -3}})
	s.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DX: 3}})

	s.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 120}})
	s.DragEnd()

	want := []model.Action{model.ActionZoomIn, model.ActionZoomOut, model.ActionPanWest}
	if len(got) != len(want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
