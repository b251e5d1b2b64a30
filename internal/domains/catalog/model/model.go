package model

import "workbrew/shared/geo"

const (
	EntityName = "cafe"
)

// Cafe is a catalog entry. The catalog is seeded from a JSON file and held
// in memory; entries are identified by their slug.
type Cafe struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Rating      float64           `json:"rating"`
	ReviewCount int               `json:"review_count"`
	PriceRange  string            `json:"price_range"`
	Amenities   []string          `json:"amenities"`
	Hours       map[string]string `json:"hours"`
	Featured    bool              `json:"featured"`
	Image       string            `json:"image"`
	Description string            `json:"description"`
}

func (c *Cafe) Location() geo.Point {
	return geo.Point{Lat: c.Latitude, Lng: c.Longitude}
}

// HasAmenity reports whether the cafe lists the given amenity.
func (c *Cafe) HasAmenity(amenity string) bool {
	for _, a := range c.Amenities {
		if a == amenity {
			return true
		}
	}

	return false
}

// HasAnyAmenity reports whether the cafe lists at least one of the given
// amenities.
func (c *Cafe) HasAnyAmenity(amenities ...string) bool {
	for _, a := range amenities {
		if c.HasAmenity(a) {
			return true
		}
	}

	return false
}
