// README: Google Maps client construction shared by the places and route services.
package maps

import (
	"fmt"
	"net/http"
	"strings"

	"googlemaps.github.io/maps"

	"aleoresto/internal/modules/restaurant"
)

// NewClient builds a Maps web-services client. baseURL is only set in tests.
func NewClient(apiKey, baseURL string, httpClient *http.Client) (*maps.Client, error) {
	opts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if httpClient != nil {
		opts = append(opts, maps.WithHTTPClient(httpClient))
	}
	if baseURL != "" {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return client, nil
}

// upstreamError turns a maps client error into a restaurant.UpstreamError.
// The client reports provider statuses as "maps: STATUS - message".
func upstreamError(stage restaurant.Stage, err error) *restaurant.UpstreamError {
	e := &restaurant.UpstreamError{Stage: stage, Err: err}
	rest, ok := strings.CutPrefix(err.Error(), "maps: ")
	if !ok {
		return e
	}
	status, detail, _ := strings.Cut(rest, " - ")
	if isStatusCode(status) {
		e.Status = status
		e.Message = strings.TrimSpace(detail)
	}
	return e
}

func isStatusCode(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < 'A' || c > 'Z') && c != '_' {
			return false
		}
	}
	return true
}
