package site

import "time"

// Site is a physical cleaning location with an optional geofence.
// A site with a nil latitude, longitude or radius can never accept
// a check-in.
type Site struct {
	ID           string
	Name         string
	Address      *string
	Latitude     *float64
	Longitude    *float64
	RadiusMeters *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasGeofence reports whether the site has a complete geofence configuration.
func (s *Site) HasGeofence() bool {
	return s.Latitude != nil && s.Longitude != nil && s.RadiusMeters != nil
}
