package catalog

import "math"

// earthRadiusMiles is the mean Earth radius in statute miles.
const earthRadiusMiles = 3958.8

// DefaultNearbyRadiusMiles is the search radius applied when a proximity
// query does not specify one.
const DefaultNearbyRadiusMiles = 50.0

// HaversineMiles returns the great-circle distance in statute miles
// between two points given in decimal degrees.
func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
