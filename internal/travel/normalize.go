package travel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jashwanth-cse/Dream-Destiny/internal/provider"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel/types"
)

// Normalization converts raw provider payloads into the shared shapes.
// Missing or partial fields become safe defaults; a malformed entry never
// fails the whole list.

func normalizeFlights(resp *provider.FlightOffersResponse, travelers int) []types.TransportOption {
	options := []types.TransportOption{}
	if resp == nil {
		return options
	}

	for _, offer := range resp.Data {
		total := parseAmount(offer.Price.Total)
		for _, itinerary := range offer.Itineraries {
			for _, segment := range itinerary.Segments {
				carrier := strings.TrimSpace(segment.CarrierCode + " " + segment.Number)
				if carrier == "" {
					carrier = "AI"
				}
				options = append(options, types.TransportOption{
					Mode:           "Flight",
					Provider:       carrier,
					Departure:      segment.Departure.At,
					Arrival:        segment.Arrival.At,
					Duration:       itinerary.Duration,
					Price:          fmt.Sprintf("₹%s total", amountOrZero(offer.Price.Total)),
					PricePerPerson: fmt.Sprintf("₹%.0f per person", total/float64(travelers)),
				})
			}
		}
	}
	return options
}

func normalizeTrains(resp *provider.TrainOffersResponse, passengers int) []types.TransportOption {
	options := []types.TransportOption{}
	if resp == nil {
		return options
	}

	for _, train := range resp.Data {
		class, fare := pickTrainClass(train.Classes)
		total := fare.Fare * passengers

		options = append(options, types.TransportOption{
			Mode:           "Train",
			Provider:       strings.TrimSpace(fmt.Sprintf("%s (%s)", train.TrainName, train.TrainNumber)),
			Departure:      stampTime(resp.Meta.Date, train.Departure.Time),
			Arrival:        stampTime(resp.Meta.Date, train.Arrival.Time),
			Duration:       train.Duration,
			Price:          fmt.Sprintf("₹%d total", total),
			PricePerPerson: fmt.Sprintf("₹%d per person", fare.Fare),
			Class:          classLabel(class),
			Availability:   fare.Available,
		})
	}
	return options
}

func normalizeHotels(resp *provider.HotelOffersResponse) []types.Hotel {
	hotels := []types.Hotel{}
	if resp == nil {
		return hotels
	}

	for _, offer := range resp.Data {
		if len(offer.Offers) == 0 {
			continue
		}
		rate := offer.Offers[0]

		location := ""
		if len(offer.Hotel.Address.Lines) > 0 {
			location = offer.Hotel.Address.Lines[0]
		}

		amenities := offer.Hotel.Amenities
		if amenities == nil {
			amenities = []string{}
		}

		hotels = append(hotels, types.Hotel{
			Name:        offer.Hotel.Name,
			Location:    location,
			Rating:      parseAmount(offer.Hotel.Rating),
			Price:       fmt.Sprintf("₹%s/night", amountOrZero(rate.Price.Total)),
			Amenities:   amenities,
			Description: offer.Hotel.Description.Text,
			Contact:     offer.Hotel.Contact.Phone,
		})
	}
	return hotels
}

func normalizePOIs(resp *provider.POIResponse) []types.PointOfInterest {
	pois := []types.PointOfInterest{}
	if resp == nil {
		return pois
	}

	for _, poi := range resp.Data {
		tags := poi.Tags
		if tags == nil {
			tags = []string{}
		}

		pois = append(pois, types.PointOfInterest{
			Name:     poi.Name,
			Category: categoryLabel(poi.Category),
			Tags:     tags,
			Rank:     parseAmount(poi.Rank),
			Coordinates: types.Coordinates{
				Latitude:  poi.GeoCode.Latitude,
				Longitude: poi.GeoCode.Longitude,
			},
			City: poi.Address.CityName,
		})
	}
	return pois
}

// pickTrainClass selects the class used for pricing: sleeper when offered,
// otherwise the cheapest listed class.
func pickTrainClass(classes map[string]provider.TrainClassFare) (string, provider.TrainClassFare) {
	if fare, ok := classes["SL"]; ok {
		return "SL", fare
	}

	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if classes[names[i]].Fare != classes[names[j]].Fare {
			return classes[names[i]].Fare < classes[names[j]].Fare
		}
		return names[i] < names[j]
	})

	if len(names) == 0 {
		return "", provider.TrainClassFare{}
	}
	return names[0], classes[names[0]]
}

func classLabel(code string) string {
	if code == "SL" {
		return "Sleeper"
	}
	return code
}

// categoryLabel turns an upstream category like HISTORICAL_SITE into
// "Historical Site".
func categoryLabel(category string) string {
	words := strings.Split(strings.ToLower(strings.ReplaceAll(category, "_", " ")), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// stampTime combines a journey date with a clock time into a timestamp,
// degrading gracefully when either part is missing.
func stampTime(date, clock string) string {
	switch {
	case date == "":
		return clock
	case clock == "":
		return date
	default:
		return date + "T" + clock + ":00"
	}
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func amountOrZero(s string) string {
	if strings.TrimSpace(s) == "" {
		return "0"
	}
	return s
}
