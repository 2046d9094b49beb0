package provider

import (
	"context"
	"fmt"
)

// DomesticRestrictionsText is the canned restrictions answer for
// same-country travel; no upstream call is made for it.
const DomesticRestrictionsText = "No COVID-19 or visa restrictions for domestic travel within India in 2025."

// Mock produces fixed, schema-valid payloads for every category. It backs
// two paths that must be indistinguishable to the aggregator: degraded mode
// (no usable credentials) and per-call failure substitution. All methods are
// deterministic and ignore most query fields.
type Mock struct {
	trainRoutes map[string][]TrainOffer
}

// MockOption configures a Mock.
type MockOption func(*Mock)

// WithTrainRoutes overrides the train dataset for specific corridors. Keys
// are "ORIGIN-DESTINATION" station code pairs.
func WithTrainRoutes(routes map[string][]TrainOffer) MockOption {
	return func(m *Mock) {
		for k, v := range routes {
			m.trainRoutes[k] = v
		}
	}
}

// NewMock creates a Mock seeded with the known corridor datasets.
func NewMock(opts ...MockOption) *Mock {
	m := &Mock{trainRoutes: defaultTrainRoutes()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Flights returns a single representative flight offer.
func (m *Mock) Flights(_ context.Context, q FlightQuery) (*FlightOffersResponse, error) {
	origin := q.Origin
	if origin == "" {
		origin = "TUV"
	}
	destination := q.Destination
	if destination == "" {
		destination = "MAA"
	}
	at := func(clock string) string {
		if q.DepartureDate == "" {
			return clock
		}
		return q.DepartureDate + "T" + clock
	}

	return &FlightOffersResponse{
		Data: []FlightOffer{
			{
				ID: "1",
				Itineraries: []FlightItinerary{
					{
						Duration: "PT6H15M",
						Segments: []FlightSegment{
							{
								Departure:   FlightEndpoint{IATACode: origin, Terminal: "1", At: at("08:30:00")},
								Arrival:     FlightEndpoint{IATACode: destination, Terminal: "1", At: at("14:45:00")},
								CarrierCode: "AI",
								Number:      "542",
								Duration:    "PT6H15M",
							},
						},
					},
				},
				Price: Price{Currency: "INR", Total: "3400.00", Base: "2800.00"},
			},
		},
		Meta: Meta{Count: 1},
	}, nil
}

// Trains returns the corridor dataset for the queried station pair, falling
// back to a generic two-train dataset for unknown corridors.
func (m *Mock) Trains(_ context.Context, q TrainQuery) (*TrainOffersResponse, error) {
	offers, ok := m.trainRoutes[routeKey(q.OriginCode, q.DestinationCode)]
	source := "route_table"
	if !ok {
		offers = genericTrains()
		source = "generic"
	}

	return &TrainOffersResponse{
		Data: offers,
		Meta: TrainMeta{
			Count:       len(offers),
			Origin:      q.OriginCode,
			Destination: q.DestinationCode,
			Date:        q.Date,
			DataSource:  source,
		},
	}, nil
}

// Hotels returns a single representative hotel offer.
func (m *Mock) Hotels(_ context.Context, q HotelQuery) (*HotelOffersResponse, error) {
	adults := q.Adults
	if adults <= 0 {
		adults = 1
	}

	return &HotelOffersResponse{
		Data: []HotelOffer{
			{
				Hotel: HotelInfo{
					HotelID:   "ADCHENNAI",
					Name:      "The Residency Towers",
					Rating:    "4",
					CityCode:  "MAA",
					Latitude:  13.0827,
					Longitude: 80.2707,
					Address: HotelAddress{
						Lines:       []string{"T. Nagar"},
						PostalCode:  "600017",
						CityName:    "CHENNAI",
						CountryCode: "IN",
					},
					Contact:     HotelContact{Phone: "+91-44-28154444"},
					Description: HotelDescription{Lang: "en", Text: "Located in the heart of Chennai's shopping district"},
					Amenities: []string{
						"SWIMMING_POOL", "SPA", "FITNESS_CENTER", "RESTAURANT",
						"ROOM_SERVICE", "WIFI", "PARKING",
					},
				},
				Available: true,
				Offers: []HotelRate{
					{
						ID:           "offer_1",
						CheckInDate:  q.CheckInDate,
						CheckOutDate: q.CheckOutDate,
						Price:        Price{Currency: "INR", Total: "2596.00", Base: "2200.00"},
					},
				},
			},
		},
		Meta: Meta{Count: 1},
	}, nil
}

// PointsOfInterest returns three representative Chennai attractions.
func (m *Mock) PointsOfInterest(_ context.Context, _ POIQuery) (*POIResponse, error) {
	return &POIResponse{
		Data: []POI{
			{
				ID:       "poi_1",
				Name:     "Marina Beach",
				Category: "BEACH",
				Rank:     "5",
				Tags:     []string{"beach", "relaxation", "sunset", "walking"},
				GeoCode:  Geo{Latitude: 13.0475, Longitude: 80.2824},
				Address:  POIAddress{CityName: "Chennai", CountryCode: "IN"},
			},
			{
				ID:       "poi_2",
				Name:     "Fort St. George",
				Category: "HISTORICAL_SITE",
				Rank:     "4",
				Tags:     []string{"history", "culture", "museum", "colonial"},
				GeoCode:  Geo{Latitude: 13.0836, Longitude: 80.2889},
				Address:  POIAddress{CityName: "Chennai", CountryCode: "IN"},
			},
			{
				ID:       "poi_3",
				Name:     "Kapaleeshwarar Temple",
				Category: "RELIGIOUS_SITE",
				Rank:     "5",
				Tags:     []string{"temple", "culture", "spiritual", "architecture"},
				GeoCode:  Geo{Latitude: 13.0339, Longitude: 80.2619},
				Address:  POIAddress{CityName: "Chennai", CountryCode: "IN"},
			},
		},
		Meta: Meta{Count: 3},
	}, nil
}

// Locations returns no candidates. Name resolution in mock mode falls
// through to the deterministic fallback instead of inventing codes.
func (m *Mock) Locations(_ context.Context, _ string) (*LocationsResponse, error) {
	return &LocationsResponse{Data: []Location{}, Meta: Meta{Count: 0}}, nil
}

// Restrictions returns canned restriction text for the country pair.
func (m *Mock) Restrictions(_ context.Context, originCountry, destCountry string) (*RestrictionsResponse, error) {
	text := DomesticRestrictionsText
	if originCountry != destCountry {
		text = fmt.Sprintf("Check visa and entry requirements for travel from %s to %s.", originCountry, destCountry)
	}

	return &RestrictionsResponse{
		Data: RestrictionsInfo{
			Type:         "travel-restrictions",
			Restrictions: text,
			Requirements: []string{},
			LastUpdated:  "2025-08-21",
		},
	}, nil
}

func routeKey(origin, destination string) string {
	return origin + "-" + destination
}

// defaultTrainRoutes holds realistic data for corridors the upstream will
// never cover. The Rajapalayam-Chennai pair ships by default; callers add
// more via WithTrainRoutes.
func defaultTrainRoutes() map[string][]TrainOffer {
	allWeek := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	rpmToMas := []TrainOffer{
		{
			TrainNumber: "16724",
			TrainName:   "Anantapuri Express",
			Departure:   TrainStop{Station: "Rajapalayam", StationCode: "RPM", Time: "05:45", Platform: "1"},
			Arrival:     TrainStop{Station: "Chennai Central", StationCode: "MAS", Time: "14:30", Platform: "7"},
			Duration:    "8h 45m",
			Distance:    "485 km",
			Classes: map[string]TrainClassFare{
				"SL": {Fare: 185, Available: "Available"},
				"3A": {Fare: 485, Available: "Available"},
				"2A": {Fare: 695, Available: "RAC"},
				"1A": {Fare: 1165, Available: "WL"},
			},
			RunsOn: allWeek,
			Route:  []string{"RPM", "MDU", "DG", "TPJ", "VM", "MAS"},
		},
		{
			TrainNumber: "12694",
			TrainName:   "Pearl City Express",
			Departure:   TrainStop{Station: "Rajapalayam", StationCode: "RPM", Time: "22:15", Platform: "1"},
			Arrival:     TrainStop{Station: "Chennai Central", StationCode: "MAS", Time: "06:45", Platform: "9"},
			Duration:    "8h 30m",
			Distance:    "485 km",
			Classes: map[string]TrainClassFare{
				"SL": {Fare: 185, Available: "Available"},
				"3A": {Fare: 485, Available: "Available"},
				"2A": {Fare: 695, Available: "Available"},
				"1A": {Fare: 1165, Available: "RAC"},
			},
			RunsOn: allWeek,
			Route:  []string{"RPM", "MDU", "DG", "TPJ", "VM", "MAS"},
		},
	}

	masToRpm := []TrainOffer{
		{
			TrainNumber: "16723",
			TrainName:   "Anantapuri Express",
			Departure:   TrainStop{Station: "Chennai Central", StationCode: "MAS", Time: "16:30", Platform: "7"},
			Arrival:     TrainStop{Station: "Rajapalayam", StationCode: "RPM", Time: "01:15", Platform: "1"},
			Duration:    "8h 45m",
			Distance:    "485 km",
			Classes: map[string]TrainClassFare{
				"SL": {Fare: 185, Available: "Available"},
				"3A": {Fare: 485, Available: "Available"},
				"2A": {Fare: 695, Available: "RAC"},
				"1A": {Fare: 1165, Available: "WL"},
			},
			RunsOn: allWeek,
			Route:  []string{"MAS", "VM", "TPJ", "DG", "MDU", "RPM"},
		},
		{
			TrainNumber: "12693",
			TrainName:   "Pearl City Express",
			Departure:   TrainStop{Station: "Chennai Central", StationCode: "MAS", Time: "21:45", Platform: "9"},
			Arrival:     TrainStop{Station: "Rajapalayam", StationCode: "RPM", Time: "06:15", Platform: "1"},
			Duration:    "8h 30m",
			Distance:    "485 km",
			Classes: map[string]TrainClassFare{
				"SL": {Fare: 185, Available: "Available"},
				"3A": {Fare: 485, Available: "Available"},
				"2A": {Fare: 695, Available: "Available"},
				"1A": {Fare: 1165, Available: "RAC"},
			},
			RunsOn: allWeek,
			Route:  []string{"MAS", "VM", "TPJ", "DG", "MDU", "RPM"},
		},
	}

	return map[string][]TrainOffer{
		routeKey("RPM", "MAS"): rpmToMas,
		routeKey("MAS", "RPM"): masToRpm,
	}
}

// genericTrains is the dataset for corridors without route-table coverage.
func genericTrains() []TrainOffer {
	allWeek := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	return []TrainOffer{
		{
			TrainNumber: "12635",
			TrainName:   "Vaigai Express",
			Departure:   TrainStop{Station: "Origin", Time: "08:30", Platform: "1"},
			Arrival:     TrainStop{Station: "Destination", Time: "14:45", Platform: "3"},
			Duration:    "6h 15m",
			Classes: map[string]TrainClassFare{
				"SL": {Fare: 212, Available: "Available"},
				"3A": {Fare: 550, Available: "Available"},
			},
			RunsOn: allWeek,
		},
		{
			TrainNumber: "16128",
			TrainName:   "Guruvayur Express",
			Departure:   TrainStop{Station: "Origin", Time: "15:20", Platform: "2"},
			Arrival:     TrainStop{Station: "Destination", Time: "22:10", Platform: "5"},
			Duration:    "6h 50m",
			Classes: map[string]TrainClassFare{
				"SL": {Fare: 300, Available: "Available"},
				"3A": {Fare: 780, Available: "Available"},
			},
			RunsOn: allWeek,
		},
	}
}
