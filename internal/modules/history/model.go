// README: Pick history model; one row per served pick, without the caller's location.
package history

import "time"

const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 50
)

type Pick struct {
	ID            int64     `json:"id"`
	PlaceID       string    `json:"placeId"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	TransportMode string    `json:"transportMode"`
	DistanceText  string    `json:"distance"`
	DurationText  string    `json:"duration"`
	PickedAt      time.Time `json:"pickedAt"`
}
