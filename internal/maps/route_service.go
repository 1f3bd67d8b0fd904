package maps

import (
	"context"

	"googlemaps.github.io/maps"

	"aleoresto/internal/modules/restaurant"
	"aleoresto/internal/types"
)

// RouteService handles interactions with the Google Directions API.
type RouteService struct {
	client   *maps.Client
	embedKey string
	language string
}

// NewRouteService creates a RouteService. embedKey goes into the embeddable map link.
func NewRouteService(client *maps.Client, embedKey, language string) *RouteService {
	return &RouteService{client: client, embedKey: embedKey, language: language}
}

// FetchItinerary routes origin to destination and summarises the first leg
// of the first route.
func (s *RouteService) FetchItinerary(ctx context.Context, origin, destination types.Point, mode restaurant.TransportMode) (restaurant.Itinerary, error) {
	routingMode := mode.RoutingMode()
	r := &maps.DirectionsRequest{
		Origin:      origin.String(),
		Destination: destination.String(),
		Mode:        maps.Mode(routingMode),
		Language:    s.language,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return restaurant.Itinerary{}, upstreamError(restaurant.StageItinerary, err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 || routes[0].Legs[0] == nil {
		return restaurant.Itinerary{}, &restaurant.UpstreamError{
			Stage:   restaurant.StageItinerary,
			Message: "no route found",
		}
	}

	leg := routes[0].Legs[0]
	it := restaurant.Itinerary{
		DistanceText: leg.Distance.HumanReadable,
		DurationText: humanizeDuration(leg.Duration),
		Steps:        make([]restaurant.Step, 0, len(leg.Steps)),
		MapLink:      EmbedLink(s.embedKey, origin, destination, routingMode),
	}
	for _, st := range leg.Steps {
		if st == nil {
			continue
		}
		it.Steps = append(it.Steps, restaurant.Step{
			Instruction:  stripMarkup(st.HTMLInstructions),
			DistanceText: st.Distance.HumanReadable,
			DurationText: humanizeDuration(st.Duration),
		})
	}
	return it, nil
}
