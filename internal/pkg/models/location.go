package models

// Coordinate is a point in decimal degrees as reported by the device
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
}

// Valid reports whether the coordinate lies within the geographic ranges
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// GeoJSONPoint is a GeoJSON Point geometry. Coordinates are [longitude, latitude].
type GeoJSONPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewGeoJSONPoint builds a Point from a coordinate
func NewGeoJSONPoint(c Coordinate) GeoJSONPoint {
	return GeoJSONPoint{
		Type:        "Point",
		Coordinates: [2]float64{c.Longitude, c.Latitude},
	}
}
