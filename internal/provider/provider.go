package provider

import (
	"context"
	"fmt"
)

// Category identifies one upstream data domain.
type Category string

const (
	CategoryFlights      Category = "flights"
	CategoryTrains       Category = "trains"
	CategoryHotels       Category = "hotels"
	CategoryPOI          Category = "points-of-interest"
	CategoryRestrictions Category = "restrictions"
	CategoryNameSearch   Category = "name-search"
)

// FailureKind classifies a failed provider call.
type FailureKind string

const (
	KindRateLimited FailureKind = "rate_limited"
	KindForbidden   FailureKind = "forbidden"
	KindTimeout     FailureKind = "timeout"
	KindTransport   FailureKind = "transport"
	KindBadResponse FailureKind = "bad_response"
)

// Error is the typed failure returned by a provider call. It is diagnostic
// only: callers substitute mock data instead of propagating it.
type Error struct {
	Category Category
	Kind     FailureKind
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s call failed (%s): %s", e.Category, e.Kind, e.Message)
}

// Source is the travel-data surface the aggregator consumes. Both the live
// client and the mock provider implement it.
type Source interface {
	// Flights searches flight offers between two airport codes.
	Flights(ctx context.Context, q FlightQuery) (*FlightOffersResponse, error)
	// Trains searches train offers between two station codes.
	Trains(ctx context.Context, q TrainQuery) (*TrainOffersResponse, error)
	// Hotels searches hotel offers for a city code and stay dates.
	Hotels(ctx context.Context, q HotelQuery) (*HotelOffersResponse, error)
	// PointsOfInterest searches attractions around a coordinate.
	PointsOfInterest(ctx context.Context, q POIQuery) (*POIResponse, error)
	// Locations searches location candidates for a free-text name.
	Locations(ctx context.Context, name string) (*LocationsResponse, error)
	// Restrictions returns travel restriction information for a country pair.
	Restrictions(ctx context.Context, originCountry, destCountry string) (*RestrictionsResponse, error)
}
