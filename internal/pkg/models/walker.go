package models

// DetailStatus tells whether a walker's detail record was actually fetched
type DetailStatus string

const (
	DetailStatusFetched  DetailStatus = "fetched"
	DetailStatusFallback DetailStatus = "fallback"
)

// RatingStatus distinguishes a real rating from an absent one
type RatingStatus string

const (
	RatingStatusKnown   RatingStatus = "known"
	RatingStatusMissing RatingStatus = "missing"
)

// UnknownDistance is displayed when a walker's distance cannot be computed
const UnknownDistance = "? km"

// WalkerSummary is an entry of the marketplace walker listing.
// Coordinates are kept as the strings the API sends.
type WalkerSummary struct {
	ID        ID       `json:"passeadorId"`
	Name      string   `json:"nome"`
	Email     string   `json:"email,omitempty"`
	Latitude  string   `json:"latitude"`
	Longitude string   `json:"longitude"`
	Rating    *float64 `json:"avaliacao,omitempty"`
}

// WalkerDetail is the per-walker record returned by the marketplace API
type WalkerDetail struct {
	ID        ID       `json:"passeadorId"`
	Name      string   `json:"nome"`
	Photo     *string  `json:"foto"`
	Rating    *float64 `json:"avaliacao"`
	Latitude  string   `json:"latitude,omitempty"`
	Longitude string   `json:"longitude,omitempty"`
}

// Walker is a walker as presented to the tutor, annotated with distance
type Walker struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Latitude     string       `json:"latitude"`
	Longitude    string       `json:"longitude"`
	Photo        *string      `json:"photo"`
	Rating       *float64     `json:"rating"`
	RatingStatus RatingStatus `json:"ratingStatus"`
	DetailStatus DetailStatus `json:"detailStatus"`
	DistanceKm   *float64     `json:"distanceKm"`
	Distance     string       `json:"distance"`
	Geohash      string       `json:"geohash,omitempty"`
}

// HasDistance reports whether a numeric distance was computed
func (w Walker) HasDistance() bool {
	return w.DistanceKm != nil
}
