package model

import "testing"

func TestViewState_Coordinate(t *testing.T) {
	vs := ViewState{Latitude: 55.75, Longitude: 37.61, Zoom: 10}

	if got := vs.Coordinate(AxisLatitude); got != 55.75 {
		t.Errorf("Coordinate(latitude) = %v, expected 55.75", got)
	}
	if got := vs.Coordinate(AxisLongitude); got != 37.61 {
		t.Errorf("Coordinate(longitude) = %v, expected 37.61", got)
	}
}

func TestViewState_WithCoordinate(t *testing.T) {
	vs := ViewState{Latitude: 1, Longitude: 2, Zoom: 3}

	lat := vs.WithCoordinate(AxisLatitude, 10)
	if lat.Latitude != 10 || lat.Longitude != 2 || lat.Zoom != 3 {
		t.Errorf("WithCoordinate(latitude) = %+v", lat)
	}

	lon := vs.WithCoordinate(AxisLongitude, 20)
	if lon.Latitude != 1 || lon.Longitude != 20 || lon.Zoom != 3 {
		t.Errorf("WithCoordinate(longitude) = %+v", lon)
	}

	// Receiver must not change
	if vs.Latitude != 1 || vs.Longitude != 2 {
		t.Errorf("WithCoordinate mutated receiver: %+v", vs)
	}
}

func TestViewState_String(t *testing.T) {
	vs := ViewState{Latitude: 55.751244, Longitude: 37.618423, Zoom: 10}
	expected := "55.751244, 37.618423 @ z10"
	if got := vs.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestDirection_Sign(t *testing.T) {
	if Positive.Sign() != 1 {
		t.Errorf("Positive.Sign() = %v", Positive.Sign())
	}
	if Negative.Sign() != -1 {
		t.Errorf("Negative.Sign() = %v", Negative.Sign())
	}
}

func TestAxis_String(t *testing.T) {
	if AxisLatitude.String() != "latitude" {
		t.Errorf("AxisLatitude.String() = %s", AxisLatitude.String())
	}
	if AxisLongitude.String() != "longitude" {
		t.Errorf("AxisLongitude.String() = %s", AxisLongitude.String())
	}
	if Axis(9).String() != "unknown" {
		t.Errorf("Axis(9).String() = %s", Axis(9).String())
	}
}
