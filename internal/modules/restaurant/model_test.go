package restaurant

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aleoresto/internal/types"
)

func TestParseTransportMode(t *testing.T) {
	tests := []struct {
		in      string
		want    TransportMode
		wantErr bool
	}{
		{"", ModeWalking, false},
		{"walking", ModeWalking, false},
		{"Driving", ModeDriving, false},
		{" transit ", ModeTransit, false},
		{"bicycling", ModeBicycling, false},
		{"no-limit", ModeNoLimit, false},
		{"teleport", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTransportMode(tt.in)
		if tt.wantErr {
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestTransportMode_RoutingMode(t *testing.T) {
	assert.Equal(t, ModeDriving, ModeNoLimit.RoutingMode())
	assert.Equal(t, ModeWalking, TransportMode("").RoutingMode())
	assert.Equal(t, ModeTransit, ModeTransit.RoutingMode())
	assert.Equal(t, ModeBicycling, ModeBicycling.RoutingMode())
}

func TestFilters_Query(t *testing.T) {
	f := Filters{Keywords: []string{"sushi", " ", "vegan ", "ramen"}}
	assert.Equal(t, "sushi vegan ramen", f.Query())
	assert.Equal(t, "", Filters{}.Query())
}

func TestRequest_Validate(t *testing.T) {
	valid := Request{
		Location: types.Point{Lat: 45.76, Lng: 4.83},
		Filters:  Filters{Radius: 1000},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"lat out of range", func(r *Request) { r.Location.Lat = 91 }},
		{"lng out of range", func(r *Request) { r.Location.Lng = -181 }},
		{"zero radius", func(r *Request) { r.Filters.Radius = 0 }},
		{"radius too large", func(r *Request) { r.Filters.Radius = MaxRadius + 1 }},
		{"price above 4", func(r *Request) { r.Filters.PriceRange = &PriceRange{Min: 1, Max: 5} }},
		{"price below 1", func(r *Request) { r.Filters.PriceRange = &PriceRange{Min: 0, Max: 2} }},
		{"price min above max", func(r *Request) { r.Filters.PriceRange = &PriceRange{Min: 3, Max: 2} }},
		{"unknown mode", func(r *Request) { r.TransportMode = "rocket" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			var ve *ValidationError
			assert.ErrorAs(t, r.Validate(), &ve)
		})
	}
}

func TestFigure_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NumberFigure(4.5))
	require.NoError(t, err)
	assert.Equal(t, "4.5", string(b))

	b, err = json.Marshal(MissingFigure(DefaultRating))
	require.NoError(t, err)
	assert.Equal(t, `"No Rating Available"`, string(b))
}

func TestUpstreamError(t *testing.T) {
	err := &UpstreamError{Stage: StageDetail, Status: "ZERO_RESULTS"}
	assert.Contains(t, err.Error(), "ZERO_RESULTS")
	assert.Equal(t, "Failed to fetch restaurant details.", err.PublicMessage())
	assert.Equal(t, "Failed to fetch restaurants.", (&UpstreamError{Stage: StageSearch}).PublicMessage())
	assert.Equal(t, "Failed to fetch itinerary.", (&UpstreamError{Stage: StageItinerary}).PublicMessage())
}
