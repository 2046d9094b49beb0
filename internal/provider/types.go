package provider

// Query parameter sets, one per category. Location names are resolved to
// provider codes before these are built.

// FlightQuery describes a flight-offer search.
type FlightQuery struct {
	Origin        string // airport code
	Destination   string // airport code
	DepartureDate string // YYYY-MM-DD
	ReturnDate    string // YYYY-MM-DD, empty for one-way
	Adults        int
}

// TrainQuery describes a train search between stations.
type TrainQuery struct {
	OriginCode      string
	DestinationCode string
	Date            string // YYYY-MM-DD
	Passengers      int
}

// HotelQuery describes a hotel-offer search.
type HotelQuery struct {
	CityCode     string
	CheckInDate  string
	CheckOutDate string
	Adults       int
	Rooms        int
}

// POIQuery describes a points-of-interest search around a coordinate.
type POIQuery struct {
	Latitude   float64
	Longitude  float64
	RadiusKM   int
	Categories []string
}

// Wire payload types, one set per category. Fields the upstream omits decode
// to zero values; normalization fills in the defaults.

// Meta carries upstream response metadata.
type Meta struct {
	Count int `json:"count"`
}

// Price is the upstream monetary shape. Amounts are decimal strings.
type Price struct {
	Currency  string `json:"currency"`
	Total     string `json:"total"`
	Base      string `json:"base,omitempty"`
	PerPerson string `json:"perPerson,omitempty"`
}

// FlightEndpoint is one end of a flight segment.
type FlightEndpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// FlightSegment is one leg of a flight itinerary.
type FlightSegment struct {
	Departure     FlightEndpoint `json:"departure"`
	Arrival       FlightEndpoint `json:"arrival"`
	CarrierCode   string         `json:"carrierCode"`
	Number        string         `json:"number"`
	Duration      string         `json:"duration"`
	NumberOfStops int            `json:"numberOfStops"`
}

// FlightItinerary is an ordered list of segments.
type FlightItinerary struct {
	Duration string          `json:"duration"`
	Segments []FlightSegment `json:"segments"`
}

// FlightOffer is one priced flight option.
type FlightOffer struct {
	ID          string            `json:"id"`
	Itineraries []FlightItinerary `json:"itineraries"`
	Price       Price             `json:"price"`
}

// FlightOffersResponse is the flight-offers payload.
type FlightOffersResponse struct {
	Data []FlightOffer `json:"data"`
	Meta Meta          `json:"meta"`
}

// TrainStop is a departure or arrival point of a train.
type TrainStop struct {
	Station     string `json:"station"`
	StationCode string `json:"stationCode"`
	Time        string `json:"time"` // HH:MM, date comes from the query
	Platform    string `json:"platform"`
}

// TrainClassFare is the fare and availability of one coach class.
type TrainClassFare struct {
	Fare      int    `json:"fare"`
	Available string `json:"available"`
}

// TrainOffer is one train connection with per-class fares.
type TrainOffer struct {
	TrainNumber string                    `json:"trainNumber"`
	TrainName   string                    `json:"trainName"`
	Departure   TrainStop                 `json:"departure"`
	Arrival     TrainStop                 `json:"arrival"`
	Duration    string                    `json:"duration"`
	Distance    string                    `json:"distance"`
	Classes     map[string]TrainClassFare `json:"classes"`
	RunsOn      []string                  `json:"runsOn"`
	Route       []string                  `json:"route"`
}

// TrainMeta carries train search metadata including the journey date the
// offers apply to.
type TrainMeta struct {
	Count       int    `json:"count"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	DataSource  string `json:"dataSource"`
}

// TrainOffersResponse is the train search payload.
type TrainOffersResponse struct {
	Data []TrainOffer `json:"data"`
	Meta TrainMeta    `json:"meta"`
}

// HotelAddress is the upstream hotel address shape.
type HotelAddress struct {
	Lines       []string `json:"lines"`
	PostalCode  string   `json:"postalCode,omitempty"`
	CityName    string   `json:"cityName"`
	CountryCode string   `json:"countryCode"`
}

// HotelContact holds hotel contact details.
type HotelContact struct {
	Phone string `json:"phone"`
}

// HotelDescription is a localized hotel description.
type HotelDescription struct {
	Lang string `json:"lang,omitempty"`
	Text string `json:"text"`
}

// HotelInfo describes the property itself.
type HotelInfo struct {
	HotelID     string           `json:"hotelId"`
	Name        string           `json:"name"`
	Rating      string           `json:"rating"`
	CityCode    string           `json:"cityCode"`
	Latitude    float64          `json:"latitude,omitempty"`
	Longitude   float64          `json:"longitude,omitempty"`
	Address     HotelAddress     `json:"address"`
	Contact     HotelContact     `json:"contact"`
	Description HotelDescription `json:"description"`
	Amenities   []string         `json:"amenities"`
}

// HotelRate is one bookable offer for a hotel.
type HotelRate struct {
	ID           string `json:"id"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Price        Price  `json:"price"`
}

// HotelOffer pairs a hotel with its offers.
type HotelOffer struct {
	Hotel     HotelInfo   `json:"hotel"`
	Available bool        `json:"available"`
	Offers    []HotelRate `json:"offers"`
}

// HotelOffersResponse is the hotel-offers payload.
type HotelOffersResponse struct {
	Data []HotelOffer `json:"data"`
	Meta Meta         `json:"meta"`
}

// Geo is a latitude/longitude pair.
type Geo struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// POIAddress locates a point of interest in a city.
type POIAddress struct {
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
}

// POI is one point of interest.
type POI struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Rank     string     `json:"rank"`
	Tags     []string   `json:"tags"`
	GeoCode  Geo        `json:"geoCode"`
	Address  POIAddress `json:"address"`
}

// POIResponse is the points-of-interest payload.
type POIResponse struct {
	Data []POI `json:"data"`
	Meta Meta  `json:"meta"`
}

// Location is one name-search candidate.
type Location struct {
	Name        string `json:"name"`
	IATACode    string `json:"iataCode,omitempty"`
	StationCode string `json:"stationCode,omitempty"`
}

// Code returns the provider code of the candidate, preferring the rail
// station code over the IATA code.
func (l Location) Code() string {
	if l.StationCode != "" {
		return l.StationCode
	}
	return l.IATACode
}

// LocationsResponse is the name-search payload.
type LocationsResponse struct {
	Data []Location `json:"data"`
	Meta Meta       `json:"meta"`
}

// RestrictionsInfo is the travel-restrictions payload body.
type RestrictionsInfo struct {
	Type         string   `json:"type"`
	Restrictions string   `json:"restrictions"`
	Requirements []string `json:"requirements"`
	LastUpdated  string   `json:"lastUpdated"`
}

// RestrictionsResponse is the travel-restrictions payload.
type RestrictionsResponse struct {
	Data RestrictionsInfo `json:"data"`
}
