package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/passeio/internal/pkg/models"
)

// EarthRadiusKm is the mean Earth radius used by the Haversine formula
const EarthRadiusKm = 6371.0

// WalkerGeohashPrecision gives cells of roughly 150m
const WalkerGeohashPrecision uint = 7

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// GeoPointFromCoordinate converts a device coordinate to a GeoPoint
func GeoPointFromCoordinate(c models.Coordinate) GeoPoint {
	return GeoPoint{Latitude: c.Latitude, Longitude: c.Longitude}
}

// ParseGeoPoint parses the textual coordinates sent by the marketplace.
// ok is false when either value is not a finite number within range.
func ParseGeoPoint(latitude, longitude string) (GeoPoint, bool) {
	lat, ok := parseDegrees(latitude, 90)
	if !ok {
		return GeoPoint{}, false
	}
	lng, ok := parseDegrees(longitude, 180)
	if !ok {
		return GeoPoint{}, false
	}
	return GeoPoint{Latitude: lat, Longitude: lng}, true
}

func parseDegrees(s string, limit float64) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < -limit || v > limit {
		return 0, false
	}
	return v, true
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

	return EarthRadiusKm * c
}

// FormatDistance renders a distance the way the app displays it, e.g. "1.2 km"
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}

// EncodeGeohash converts a point to a geohash string
func EncodeGeohash(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}
