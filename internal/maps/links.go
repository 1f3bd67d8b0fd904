package maps

import (
	"fmt"
	"net/url"

	"aleoresto/internal/modules/restaurant"
	"aleoresto/internal/types"
)

const (
	photoEndpoint     = "https://maps.googleapis.com/maps/api/place/photo"
	directionsWebLink = "https://www.google.com/maps/dir/"
	embedDirections   = "https://www.google.com/maps/embed/v1/directions"

	DefaultPhotoMaxWidth = 400
)

// PhotoURL builds a Place Photo URL for a photo reference. No request is made.
func PhotoURL(ref string, maxWidth int, apiKey string) string {
	if maxWidth <= 0 {
		maxWidth = DefaultPhotoMaxWidth
	}
	return fmt.Sprintf("%s?maxwidth=%d&photoreference=%s&key=%s",
		photoEndpoint, maxWidth, url.QueryEscape(ref), url.QueryEscape(apiKey))
}

// DirectionsLink opens Google Maps directions from origin to destination.
func DirectionsLink(origin, destination types.Point, mode restaurant.TransportMode) string {
	return fmt.Sprintf("%s?api=1&origin=%s&destination=%s&travelmode=%s",
		directionsWebLink, origin, destination, mode.RoutingMode())
}

// EmbedLink is the iframe URL of the Maps Embed API directions view.
func EmbedLink(apiKey string, origin, destination types.Point, mode restaurant.TransportMode) string {
	return fmt.Sprintf("%s?key=%s&origin=%s&destination=%s&mode=%s",
		embedDirections, url.QueryEscape(apiKey), origin, destination, mode.RoutingMode())
}
