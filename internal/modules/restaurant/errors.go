package restaurant

import (
	"errors"
	"fmt"
)

var (
	ErrNoRestaurants  = errors.New("no restaurants found matching preferences")
	ErrNoPriceMatch   = errors.New("no restaurants found matching price range")
	ErrMissingPlaceID = errors.New("selected restaurant has no place id")
)

// ValidationError is a client input problem. Msg is safe to show to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Stage names the upstream capability that failed.
type Stage string

const (
	StageSearch    Stage = "search"
	StageDetail    Stage = "detail"
	StageItinerary Stage = "itinerary"
)

// UpstreamError is a provider failure. Status and Message come from the provider
// and must not reach the caller.
type UpstreamError struct {
	Stage   Stage
	Status  string
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s upstream failure", e.Stage)
	if e.Status != "" {
		msg += ": " + e.Status
	}
	if e.Message != "" {
		msg += " - " + e.Message
	}
	if e.Err != nil && e.Status == "" && e.Message == "" {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// PublicMessage is what the caller sees for this failure.
func (e *UpstreamError) PublicMessage() string {
	switch e.Stage {
	case StageSearch:
		return "Failed to fetch restaurants."
	case StageDetail:
		return "Failed to fetch restaurant details."
	case StageItinerary:
		return "Failed to fetch itinerary."
	}
	return "internal error"
}
