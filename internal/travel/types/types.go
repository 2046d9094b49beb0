// Package types holds the normalized, provider-agnostic travel data shapes
// returned to callers. All values are plain data owned by the caller.
package types

// TransportOption is one normalized transport connection.
type TransportOption struct {
	Mode           string `json:"mode"`
	Provider       string `json:"provider"`
	Departure      string `json:"departure"`
	Arrival        string `json:"arrival"`
	Duration       string `json:"duration"`
	Price          string `json:"price"`
	PricePerPerson string `json:"pricePerPerson"`
	Class          string `json:"class,omitempty"`
	Availability   string `json:"availability,omitempty"`
}

// Hotel is one normalized lodging option.
type Hotel struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	Price       string   `json:"price"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	Contact     string   `json:"contact"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PointOfInterest is one normalized attraction.
type PointOfInterest struct {
	Name        string      `json:"name"`
	Category    string      `json:"type"`
	Tags        []string    `json:"tags"`
	Rank        float64     `json:"rank"`
	Coordinates Coordinates `json:"coordinates"`
	City        string      `json:"address"`
}

// Bundle is the aggregate travel-data result. Every list is always present,
// possibly empty; Error is advisory text only.
type Bundle struct {
	TransportOptions []TransportOption `json:"transportOptions"`
	Hotels           []Hotel           `json:"hotels"`
	PointsOfInterest []PointOfInterest `json:"pointsOfInterest"`
	Restrictions     string            `json:"restrictions"`
	Error            string            `json:"error,omitempty"`
}

// NewBundle returns a Bundle with all lists initialized so JSON consumers
// never see null fields.
func NewBundle() *Bundle {
	return &Bundle{
		TransportOptions: []TransportOption{},
		Hotels:           []Hotel{},
		PointsOfInterest: []PointOfInterest{},
	}
}
