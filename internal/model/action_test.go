package model

import "testing"

func TestAction_IsZoom(t *testing.T) {
	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionZoomIn, true},
		{ActionZoomOut, true},
		{ActionPanNorth, false},
		{ActionPanSouth, false},
		{ActionPanWest, false},
		{ActionPanEast, false},
		{ActionRefresh, false},
	}

	for _, test := range tests {
		result := test.action.IsZoom()
		if result != test.expected {
			t.Errorf("Action(%s).IsZoom() = %v, expected %v", test.action, result, test.expected)
		}
	}
}

func TestAction_IsPan(t *testing.T) {
	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionZoomIn, false},
		{ActionZoomOut, false},
		{ActionPanNorth, true},
		{ActionPanSouth, true},
		{ActionPanWest, true},
		{ActionPanEast, true},
		{ActionRefresh, false},
		{Action("Bogus"), false},
	}

	for _, test := range tests {
		result := test.action.IsPan()
		if result != test.expected {
			t.Errorf("Action(%s).IsPan() = %v, expected %v", test.action, result, test.expected)
		}
	}
}

func TestAction_PanVector(t *testing.T) {
	tests := []struct {
		action Action
		axis   Axis
		dir    Direction
	}{
		{ActionPanNorth, AxisLatitude, Positive},
		{ActionPanSouth, AxisLatitude, Negative},
		{ActionPanWest, AxisLongitude, Negative},
		{ActionPanEast, AxisLongitude, Positive},
	}

	for _, test := range tests {
		axis, dir, ok := test.action.PanVector()
		if !ok {
			t.Fatalf("Action(%s).PanVector() reported not a pan", test.action)
		}
		if axis != test.axis || dir != test.dir {
			t.Errorf("Action(%s).PanVector() = (%s, %d), expected (%s, %d)",
				test.action, axis, dir, test.axis, test.dir)
		}
	}
}

func TestAction_ZoomDelta(t *testing.T) {
	if d := ActionZoomIn.ZoomDelta(); d != 1 {
		t.Errorf("ZoomIn delta = %d, expected 1", d)
	}
	if d := ActionZoomOut.ZoomDelta(); d != -1 {
		t.Errorf("ZoomOut delta = %d, expected -1", d)
	}
	if d := ActionPanEast.ZoomDelta(); d != 0 {
		t.Errorf("PanEast delta = %d, expected 0", d)
	}
}

func TestAllActions(t *testing.T) {
	actions := AllActions()
	if len(actions) != 7 {
		t.Fatalf("Expected 7 actions, got %d", len(actions))
	}

	seen := make(map[Action]bool)
	for _, a := range actions {
		if seen[a] {
			t.Errorf("Duplicate action %s", a)
		}
		seen[a] = true
	}
}
