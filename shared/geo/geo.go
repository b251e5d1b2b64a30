package geo

import "math"

const earthRadiusKm = 6371

// Point is a WGS84 coordinate pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceKm returns the great-circle distance between two points using the
// haversine formula.
func DistanceKm(from, to Point) float64 {
	dLat := radians(to.Lat - from.Lat)
	dLng := radians(to.Lng - from.Lng)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(radians(from.Lat))*math.Cos(radians(to.Lat))*math.Pow(math.Sin(dLng/2), 2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
