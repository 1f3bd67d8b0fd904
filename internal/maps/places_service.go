package maps

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"aleoresto/internal/cache"
	"aleoresto/internal/modules/restaurant"
	"aleoresto/internal/types"
)

// searchTypes restricts nearby search to food venues. The category filter
// re-checks every result afterwards.
const searchTypes = "restaurant|cafe|bakery|bar|meal_takeaway|meal_delivery"

const DefaultDetailCacheTTL = 10 * time.Minute

var detailFields = []maps.PlaceDetailsFieldMask{
	"place_id",
	"name",
	"formatted_address",
	"geometry",
	"photos",
	"price_level",
	"rating",
	"opening_hours",
	"website",
	"url",
	"types",
	"formatted_phone_number",
}

type PlacesConfig struct {
	// APIKey is embedded in photo URLs.
	APIKey        string
	PhotoMaxWidth int
	Language      string
	// Cache holds raw Place Details results by place id and language. Nil
	// disables caching. Cached open_now can lag by up to CacheTTL.
	Cache    cache.Cache
	CacheTTL time.Duration
	Logger   logrus.FieldLogger
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
	cfg    PlacesConfig
	log    logrus.FieldLogger
}

func NewPlacesService(client *maps.Client, cfg PlacesConfig) *PlacesService {
	if cfg.PhotoMaxWidth <= 0 {
		cfg.PhotoMaxWidth = DefaultPhotoMaxWidth
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultDetailCacheTTL
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PlacesService{client: client, cfg: cfg, log: log}
}

// SearchNearby returns open food venues around q.Location. Results keep the
// provider's order and are not deduplicated.
func (s *PlacesService) SearchNearby(ctx context.Context, q restaurant.SearchQuery) ([]restaurant.Candidate, error) {
	r := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: q.Location.Lat, Lng: q.Location.Lng},
		Radius:   uint(q.Radius),
		Keyword:  q.Keyword,
		Type:     maps.PlaceType(searchTypes),
		OpenNow:  true,
		Language: s.cfg.Language,
	}

	resp, err := s.client.NearbySearch(ctx, r)
	if err != nil {
		upErr := upstreamError(restaurant.StageSearch, err)
		if upErr.Status == "ZERO_RESULTS" {
			return []restaurant.Candidate{}, nil
		}
		return nil, upErr
	}

	out := make([]restaurant.Candidate, 0, len(resp.Results))
	for _, res := range resp.Results {
		c := restaurant.Candidate{
			PlaceID: res.PlaceID,
			Name:    res.Name,
			Types:   res.Types,
		}
		// The client decodes a missing price_level as 0; treat it as unknown.
		if res.PriceLevel > 0 {
			level := res.PriceLevel
			c.PriceLevel = &level
		}
		out = append(out, c)
	}
	return out, nil
}

// FetchDetail resolves the full record for placeID. Absent fields get
// placeholder values so the result is always complete.
func (s *PlacesService) FetchDetail(ctx context.Context, placeID string, origin types.Point, mode restaurant.TransportMode) (restaurant.RestaurantDetail, error) {
	res, err := s.placeDetails(ctx, placeID)
	if err != nil {
		return restaurant.RestaurantDetail{}, err
	}
	loc := types.Point{Lat: res.Geometry.Location.Lat, Lng: res.Geometry.Location.Lng}
	if loc.IsZero() {
		return restaurant.RestaurantDetail{}, &restaurant.UpstreamError{
			Stage:   restaurant.StageDetail,
			Message: "place has no coordinates",
		}
	}
	return s.toDetail(res, loc, origin, mode), nil
}

func (s *PlacesService) placeDetails(ctx context.Context, placeID string) (maps.PlaceDetailsResult, error) {
	key := detailCacheKey(placeID, s.cfg.Language)
	var res maps.PlaceDetailsResult
	if s.cfg.Cache != nil {
		hit, err := s.cfg.Cache.Get(ctx, key, &res)
		if err != nil {
			s.log.WithError(err).Warn("detail cache read failed")
		}
		if hit && res.PlaceID != "" {
			return res, nil
		}
	}

	res, err := s.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID:  placeID,
		Fields:   detailFields,
		Language: s.cfg.Language,
	})
	if err != nil {
		return maps.PlaceDetailsResult{}, upstreamError(restaurant.StageDetail, err)
	}
	// ZERO_RESULTS comes back from the client as an empty result.
	if res.PlaceID == "" {
		return maps.PlaceDetailsResult{}, &restaurant.UpstreamError{
			Stage:  restaurant.StageDetail,
			Status: "ZERO_RESULTS",
		}
	}

	if s.cfg.Cache != nil {
		if err := s.cfg.Cache.Set(ctx, key, res, s.cfg.CacheTTL); err != nil {
			s.log.WithError(err).Warn("detail cache write failed")
		}
	}
	return res, nil
}

func (s *PlacesService) toDetail(res maps.PlaceDetailsResult, loc, origin types.Point, mode restaurant.TransportMode) restaurant.RestaurantDetail {
	d := restaurant.RestaurantDetail{
		PlaceID:       res.PlaceID,
		Name:          orDefault(res.Name, restaurant.DefaultName),
		Address:       orDefault(res.FormattedAddress, restaurant.DefaultAddress),
		Rating:        restaurant.MissingFigure(restaurant.DefaultRating),
		PriceLevel:    restaurant.MissingFigure(restaurant.DefaultPriceLevel),
		Photos:        make([]string, 0, len(res.Photos)),
		OpeningHours:  []string{},
		Website:       orDefault(res.Website, restaurant.DefaultWebsite),
		PlaceURL:      res.URL,
		GoogleMapsURL: DirectionsLink(origin, loc, mode),
		Types:         []string{},
		Location:      loc,
		PhoneNumber:   orDefault(res.FormattedPhoneNumber, restaurant.DefaultPhoneNumber),
	}
	if res.Rating > 0 {
		// Ratings have one decimal; undo float32 widening noise.
		d.Rating = restaurant.NumberFigure(math.Round(float64(res.Rating)*10) / 10)
	}
	if res.PriceLevel > 0 {
		d.PriceLevel = restaurant.NumberFigure(float64(res.PriceLevel))
	}
	for _, p := range res.Photos {
		if p.PhotoReference != "" {
			d.Photos = append(d.Photos, PhotoURL(p.PhotoReference, s.cfg.PhotoMaxWidth, s.cfg.APIKey))
		}
	}
	if oh := res.OpeningHours; oh != nil {
		if len(oh.WeekdayText) > 0 {
			d.OpeningHours = oh.WeekdayText
		}
		d.IsOpen = oh.OpenNow != nil && *oh.OpenNow
	}
	if len(res.Types) > 0 {
		d.Types = res.Types
	}
	return d
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func detailCacheKey(placeID, language string) string {
	if language == "" {
		return "place:" + placeID
	}
	return "place:" + language + ":" + placeID
}
