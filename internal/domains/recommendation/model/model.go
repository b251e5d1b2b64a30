package model

import "workbrew/internal/domains/catalog/model"

const (
	EntityName = "recommendation"

	// MaxResults caps how many ranked cafes a single request returns.
	MaxResults = 8
)

// Recommendation is one ranked catalog entry with the accumulated score and
// the human-readable reasons behind it.
type Recommendation struct {
	Cafe         model.Cafe
	DistanceKm   float64
	Priority     int
	Reasons      []string
	TimeMatch    bool
	WeatherMatch bool
}
