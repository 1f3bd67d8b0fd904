package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aleoresto/internal/modules/restaurant"
	"aleoresto/internal/types"
)

func TestPhotoURL(t *testing.T) {
	assert.Equal(t,
		"https://maps.googleapis.com/maps/api/place/photo?maxwidth=400&photoreference=abc%2Fdef&key=k",
		PhotoURL("abc/def", 0, "k"))
	assert.Contains(t, PhotoURL("r", 800, "k"), "maxwidth=800")
}

func TestDirectionsLink(t *testing.T) {
	o := types.Point{Lat: 48.8566, Lng: 2.3522}
	d := types.Point{Lat: 48.86, Lng: 2.35}

	tests := []struct {
		mode restaurant.TransportMode
		want string
	}{
		{restaurant.ModeWalking, "walking"},
		{restaurant.ModeTransit, "transit"},
		{restaurant.ModeNoLimit, "driving"},
		{"", "walking"},
	}
	for _, tt := range tests {
		got := DirectionsLink(o, d, tt.mode)
		assert.Equal(t,
			"https://www.google.com/maps/dir/?api=1&origin=48.8566,2.3522&destination=48.86,2.35&travelmode="+tt.want,
			got, "mode %q", tt.mode)
	}
}

func TestEmbedLink(t *testing.T) {
	got := EmbedLink("k&x", types.Point{Lat: 1, Lng: 2}, types.Point{Lat: 3, Lng: 4}, restaurant.ModeBicycling)
	assert.Equal(t, "https://www.google.com/maps/embed/v1/directions?key=k%26x&origin=1,2&destination=3,4&mode=bicycling", got)
}
