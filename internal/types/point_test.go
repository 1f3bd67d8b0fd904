package types

import "testing"

func TestPoint_String(t *testing.T) {
	p := Point{Lat: 48.8566, Lng: 2.3522}
	if got := p.String(); got != "48.8566,2.3522" {
		t.Errorf("String() = %q, want %q", got, "48.8566,2.3522")
	}
	neg := Point{Lat: -33.8688, Lng: 151.2093}
	if got := neg.String(); got != "-33.8688,151.2093" {
		t.Errorf("String() = %q", got)
	}
}

func TestPoint_IsZero(t *testing.T) {
	if !(Point{}).IsZero() {
		t.Error("expected zero point")
	}
	if (Point{Lat: 0, Lng: 1}).IsZero() {
		t.Error("expected non-zero point")
	}
}
