package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the application-side record for an identity-provider account.
// Its ID is the subject of the provider-issued token.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	HomeLat   *float64  `json:"home_lat"`
	HomeLng   *float64  `json:"home_lng"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Home returns the registered home coordinate. The second value is false
// unless both latitude and longitude are set.
func (p *Profile) Home() (Coordinate, bool) {
	if p == nil || p.HomeLat == nil || p.HomeLng == nil {
		return Coordinate{}, false
	}

	return Coordinate{Lat: *p.HomeLat, Lng: *p.HomeLng}, true
}

// SetHome records the home coordinate.
func (p *Profile) SetHome(c Coordinate) {
	lat, lng := c.Lat, c.Lng
	p.HomeLat = &lat
	p.HomeLng = &lng
}

// ClearHome removes the home coordinate, which disables geofencing.
func (p *Profile) ClearHome() {
	p.HomeLat = nil
	p.HomeLng = nil
}

// ProfileSummary is the public subset of a profile shown to a connected counterpart.
type ProfileSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Phone   *string   `json:"phone,omitempty"`
	HomeLat *float64  `json:"home_lat,omitempty"`
	HomeLng *float64  `json:"home_lng,omitempty"`
}
