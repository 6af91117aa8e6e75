package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/kerbshare/trustengine/internal/pkg/models"
)

const (
	// earthRadiusKm is the mean radius of the Earth in kilometers
	earthRadiusKm = 6371.0

	metersPerMile = 1609.344
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceMeters calculates the great-circle distance between two points in meters
func DistanceMeters(point1, point2 GeoPoint) float64 {
	return CalculateDistance(point1, point2) * 1000.0
}

// MetersToMiles converts a distance in meters to statute miles
func MetersToMiles(meters float64) float64 {
	return meters / metersPerMile
}

// SpeedMPH derives the implied speed in miles per hour for a movement of
// distanceMeters over elapsedSeconds. Returns 0 for non-positive elapsed
// time; a degenerate interval cannot be evaluated.
func SpeedMPH(distanceMeters, elapsedSeconds float64) float64 {
	if elapsedSeconds <= 0 {
		return 0
	}
	miles := MetersToMiles(distanceMeters)
	hours := elapsedSeconds / 3600.0
	return miles / hours
}

// EncodeLocation converts a GPS ping to a geohash string
func EncodeLocation(ping models.GpsPing, precision uint) string {
	return geohash.EncodeWithPrecision(ping.Latitude, ping.Longitude, precision)
}

// GeoPointFromPing converts a GPS ping to a GeoPoint
func GeoPointFromPing(ping models.GpsPing) GeoPoint {
	return GeoPoint{
		Latitude:  ping.Latitude,
		Longitude: ping.Longitude,
	}
}
