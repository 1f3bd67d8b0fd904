package maps

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aleoresto/internal/modules/restaurant"
	"aleoresto/internal/types"
)

const directionsPath = "/maps/api/directions/json"

const oneRoute = `{
	"status": "OK",
	"routes": [{
		"summary": "Rue de la République",
		"legs": [{
			"distance": {"text": "1.2 km", "value": 1200},
			"duration": {"text": "15 mins", "value": 900},
			"steps": [
				{
					"html_instructions": "Head <b>north</b> on <b>Rue Mercière</b>",
					"distance": {"text": "0.3 km", "value": 300},
					"duration": {"text": "4 mins", "value": 240}
				},
				{
					"html_instructions": "Turn right<div style=\"font-size:0.9em\">Destination will be on the left</div>",
					"distance": {"text": "0.9 km", "value": 900},
					"duration": {"text": "11 mins", "value": 660}
				}
			]
		}]
	}]
}`

func newRoutes(t *testing.T, ms *mapsServer) *RouteService {
	t.Helper()
	client, err := NewClient(testKey, ms.URL, ms.Client())
	require.NoError(t, err)
	return NewRouteService(client, "embed-key", "")
}

func TestFetchItinerary(t *testing.T) {
	ms := newMapsServer(t, map[string]string{directionsPath: oneRoute})
	origin := types.Point{Lat: 45.76, Lng: 4.83}
	dest := types.Point{Lat: 45.7625, Lng: 4.833}

	it, err := newRoutes(t, ms).FetchItinerary(context.Background(), origin, dest, restaurant.ModeWalking)
	require.NoError(t, err)

	assert.Equal(t, "1.2 km", it.DistanceText)
	assert.Equal(t, "15 mins", it.DurationText)
	assert.Equal(t, []restaurant.Step{
		{Instruction: "Head north on Rue Mercière", DistanceText: "0.3 km", DurationText: "4 mins"},
		{Instruction: "Turn right Destination will be on the left", DistanceText: "0.9 km", DurationText: "11 mins"},
	}, it.Steps)
	assert.Equal(t,
		"https://www.google.com/maps/embed/v1/directions?key=embed-key&origin=45.76,4.83&destination=45.7625,4.833&mode=walking",
		it.MapLink)

	q := ms.lastQuery(t)
	assert.Equal(t, "45.76,4.83", q.Get("origin"))
	assert.Equal(t, "45.7625,4.833", q.Get("destination"))
	assert.Equal(t, "walking", q.Get("mode"))
}

func TestFetchItinerary_NoLimitRoutesAsDriving(t *testing.T) {
	ms := newMapsServer(t, map[string]string{directionsPath: oneRoute})
	it, err := newRoutes(t, ms).FetchItinerary(context.Background(),
		types.Point{Lat: 1, Lng: 1}, types.Point{Lat: 1.01, Lng: 1.01}, restaurant.ModeNoLimit)
	require.NoError(t, err)

	assert.Equal(t, "driving", ms.lastQuery(t).Get("mode"))
	assert.Contains(t, it.MapLink, "mode=driving")
}

func TestFetchItinerary_NoRoute(t *testing.T) {
	ms := newMapsServer(t, map[string]string{directionsPath: `{"status": "ZERO_RESULTS", "routes": []}`})
	_, err := newRoutes(t, ms).FetchItinerary(context.Background(),
		types.Point{Lat: 1, Lng: 1}, types.Point{Lat: -1, Lng: -1}, restaurant.ModeTransit)

	var up *restaurant.UpstreamError
	require.True(t, errors.As(err, &up), "got %v", err)
	assert.Equal(t, restaurant.StageItinerary, up.Stage)
}

func TestFetchItinerary_ProviderError(t *testing.T) {
	ms := newMapsServer(t, map[string]string{directionsPath: `{"status": "OVER_QUERY_LIMIT", "error_message": "quota", "routes": []}`})
	_, err := newRoutes(t, ms).FetchItinerary(context.Background(),
		types.Point{Lat: 1, Lng: 1}, types.Point{Lat: 2, Lng: 2}, restaurant.ModeDriving)

	var up *restaurant.UpstreamError
	require.True(t, errors.As(err, &up))
	assert.Equal(t, "OVER_QUERY_LIMIT", up.Status)
	assert.Equal(t, "quota", up.Message)
}
