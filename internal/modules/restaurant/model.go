// README: Restaurant discovery domain types (filters, candidates, detail, itinerary).
package restaurant

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"aleoresto/internal/types"
)

type TransportMode string

const (
	ModeWalking   TransportMode = "walking"
	ModeBicycling TransportMode = "bicycling"
	ModeDriving   TransportMode = "driving"
	ModeTransit   TransportMode = "transit"
	ModeNoLimit   TransportMode = "no-limit"
)

// ParseTransportMode accepts the client-side mode names. Empty means walking.
func ParseTransportMode(s string) (TransportMode, error) {
	m := TransportMode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case "":
		return ModeWalking, nil
	case ModeWalking, ModeBicycling, ModeDriving, ModeTransit, ModeNoLimit:
		return m, nil
	}
	return "", &ValidationError{Msg: fmt.Sprintf("Invalid transportMode %q.", s)}
}

// RoutingMode is the mode sent to the directions provider.
func (m TransportMode) RoutingMode() TransportMode {
	switch m {
	case "":
		return ModeWalking
	case ModeNoLimit:
		return ModeDriving
	}
	return m
}

const (
	MinPriceLevel = 1
	MaxPriceLevel = 4
	MaxRadius     = 50000
)

// PriceRange is the [min, max] price tier selection. Only Max takes part in filtering.
type PriceRange struct {
	Min int
	Max int
}

type Filters struct {
	Radius     int
	Keywords   []string
	PriceRange *PriceRange
}

// Query joins the keywords into the provider's free-text keyword, keeping order.
func (f Filters) Query() string {
	parts := make([]string, 0, len(f.Keywords))
	for _, k := range f.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			parts = append(parts, k)
		}
	}
	return strings.Join(parts, " ")
}

// Request is one random-pick invocation.
type Request struct {
	Location      types.Point
	Filters       Filters
	TransportMode TransportMode
}

func (r Request) Validate() error {
	if r.Location.Lat < -90 || r.Location.Lat > 90 || r.Location.Lng < -180 || r.Location.Lng > 180 {
		return &ValidationError{Msg: "Invalid input. 'lat' must be within [-90, 90] and 'lng' within [-180, 180]."}
	}
	if r.Filters.Radius <= 0 || r.Filters.Radius > MaxRadius {
		return &ValidationError{Msg: fmt.Sprintf("Invalid input. 'radius' must be between 1 and %d meters.", MaxRadius)}
	}
	if pr := r.Filters.PriceRange; pr != nil {
		if pr.Min < MinPriceLevel || pr.Max > MaxPriceLevel || pr.Min > pr.Max {
			return &ValidationError{Msg: "Invalid input. 'price_range' must be [min, max] with 1 <= min <= max <= 4."}
		}
	}
	switch r.TransportMode {
	case "", ModeWalking, ModeBicycling, ModeDriving, ModeTransit, ModeNoLimit:
	default:
		return &ValidationError{Msg: fmt.Sprintf("Invalid transportMode %q.", r.TransportMode)}
	}
	return nil
}

// Candidate is a nearby-search hit. It only lives for one request.
type Candidate struct {
	PlaceID    string
	Name       string
	Types      []string
	PriceLevel *int
}

const (
	DefaultName        = "Unknown Name"
	DefaultAddress     = "No Address Available"
	DefaultRating      = "No Rating Available"
	DefaultPriceLevel  = "Not Specified"
	DefaultWebsite     = "No Website Available"
	DefaultPhoneNumber = "No Phone Number Available"
)

// Figure is a numeric field that renders as a placeholder string when the provider omitted it.
type Figure struct {
	Value       float64
	Set         bool
	Placeholder string
}

func NumberFigure(v float64) Figure {
	return Figure{Value: v, Set: true}
}

func MissingFigure(placeholder string) Figure {
	return Figure{Placeholder: placeholder}
}

func (f Figure) MarshalJSON() ([]byte, error) {
	if f.Set && !math.IsNaN(f.Value) && !math.IsInf(f.Value, 0) {
		return json.Marshal(f.Value)
	}
	return json.Marshal(f.Placeholder)
}

type RestaurantDetail struct {
	PlaceID       string      `json:"placeId"`
	Name          string      `json:"name"`
	Address       string      `json:"address"`
	Rating        Figure      `json:"rating"`
	PriceLevel    Figure      `json:"priceLevel"`
	Photos        []string    `json:"photos"`
	OpeningHours  []string    `json:"openingHours"`
	IsOpen        bool        `json:"isOpen"`
	Website       string      `json:"website"`
	PlaceURL      string      `json:"placeUrl"`
	GoogleMapsURL string      `json:"googleMapsUrl"`
	Types         []string    `json:"types"`
	Location      types.Point `json:"location"`
	PhoneNumber   string      `json:"phoneNumber"`
}

type Step struct {
	Instruction  string `json:"instruction"`
	DistanceText string `json:"distance"`
	DurationText string `json:"duration"`
}

type Itinerary struct {
	DistanceText string `json:"distance"`
	DurationText string `json:"duration"`
	Steps        []Step `json:"steps"`
	MapLink      string `json:"googleMapsLink"`
}

// Payload is the only output of a successful pick.
type Payload struct {
	Restaurant RestaurantDetail `json:"restaurant"`
	Itinerary  Itinerary        `json:"itinerary"`
}
