// README: Random pick handler; decodes the caller's location and filters and runs the pipeline.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"aleoresto/internal/modules/restaurant"
	"aleoresto/internal/types"
)

type RandomService interface {
	FindRandom(ctx context.Context, req restaurant.Request) (restaurant.Payload, error)
}

type RandomHandler struct {
	svc RandomService
}

func NewRandomHandler(svc RandomService) *RandomHandler {
	return &RandomHandler{svc: svc}
}

// Pointers tell a missing field apart from a zero value.
type locationDTO struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type filtersDTO struct {
	Radius        *float64 `json:"radius"`
	Keywords      []string `json:"keywords"`
	PriceRange    []int    `json:"price_range"`
	TransportMode string   `json:"transportMode"`
}

type randomRequest struct {
	Location      *locationDTO `json:"location"`
	Filters       *filtersDTO  `json:"filters"`
	TransportMode string       `json:"transportMode"`
}

func (r randomRequest) toDomain() (restaurant.Request, error) {
	if r.Location == nil || r.Location.Lat == nil || r.Location.Lng == nil ||
		r.Filters == nil || r.Filters.Radius == nil {
		return restaurant.Request{}, &restaurant.ValidationError{Msg: msgInvalidInput}
	}

	req := restaurant.Request{
		Location: types.Point{Lat: *r.Location.Lat, Lng: *r.Location.Lng},
		Filters: restaurant.Filters{
			Radius:   int(*r.Filters.Radius),
			Keywords: r.Filters.Keywords,
		},
	}
	switch len(r.Filters.PriceRange) {
	case 0:
	case 2:
		req.Filters.PriceRange = &restaurant.PriceRange{Min: r.Filters.PriceRange[0], Max: r.Filters.PriceRange[1]}
	default:
		return restaurant.Request{}, &restaurant.ValidationError{
			Msg: "Invalid input. 'price_range' must be [min, max] with 1 <= min <= max <= 4.",
		}
	}

	mode := r.TransportMode
	if mode == "" {
		mode = r.Filters.TransportMode
	}
	parsed, err := restaurant.ParseTransportMode(mode)
	if err != nil {
		return restaurant.Request{}, err
	}
	req.TransportMode = parsed
	return req, nil
}

// Pick handles POST /api/random.
func (h *RandomHandler) Pick(c *gin.Context) {
	var body randomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	req, err := body.toDomain()
	if err != nil {
		writeRandomError(c, err)
		return
	}

	payload, err := h.svc.FindRandom(c.Request.Context(), req)
	if err != nil {
		writeRandomError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, payload)
}
