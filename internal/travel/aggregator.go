// Package travel aggregates transport, lodging, point-of-interest and
// restriction data from the upstream provider into one normalized bundle.
package travel

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jashwanth-cse/Dream-Destiny/internal/obs"
	"github.com/jashwanth-cse/Dream-Destiny/internal/provider"
	"github.com/jashwanth-cse/Dream-Destiny/internal/resolve"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel/types"
)

// poiRadiusKM is the fixed search radius for points of interest.
const poiRadiusKM = 10

// noRestrictionsText is used when the restrictions payload carries no text.
const noRestrictionsText = "No restrictions found."

// Query holds the parameters of one aggregation request. Source and
// Destination are free-text place names; the aggregator resolves them.
type Query struct {
	Source        string
	Destination   string
	StartDate     string // YYYY-MM-DD
	EndDate       string // YYYY-MM-DD
	TransportMode string // flight | train | bus | car
	Travelers     int
	Interests     []string
}

// Aggregator fans out to the provider categories and merges the results.
// It never returns an error: failures are absorbed per section and recorded
// only as an advisory annotation on the bundle.
type Aggregator struct {
	api      provider.Source
	fallback *provider.Mock
	resolver *resolve.Resolver
	timeout  time.Duration
	metrics  *obs.Metrics
	logger   *slog.Logger
}

// NewAggregator creates an Aggregator.
func NewAggregator(api provider.Source, fallback *provider.Mock, resolver *resolve.Resolver, timeout time.Duration, metrics *obs.Metrics, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		api:      api,
		fallback: fallback,
		resolver: resolver,
		timeout:  timeout,
		metrics:  metrics,
		logger:   logger,
	}
}

// TravelData fetches and normalizes all sections concurrently. The returned
// bundle is structurally complete: every list is present even when empty.
func (a *Aggregator) TravelData(ctx context.Context, q Query) *types.Bundle {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	travelers := q.Travelers
	if travelers < 1 {
		travelers = 1
	}

	bundle := types.NewBundle()

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		diags []string
	)

	record := func(section string, err error) {
		a.logger.Warn("section degraded to mock data", "section", section, "error", err)
		mu.Lock()
		diags = append(diags, section+": "+err.Error())
		mu.Unlock()
	}

	wg.Go(func() {
		options := a.transportOptions(ctx, q, travelers, record)
		mu.Lock()
		bundle.TransportOptions = options
		mu.Unlock()
	})

	wg.Go(func() {
		hotels := a.hotels(ctx, q, travelers, record)
		mu.Lock()
		bundle.Hotels = hotels
		mu.Unlock()
	})

	wg.Go(func() {
		pois := a.pointsOfInterest(ctx, q, record)
		mu.Lock()
		bundle.PointsOfInterest = pois
		mu.Unlock()
	})

	wg.Go(func() {
		restrictions := a.restrictions(ctx, q, record)
		mu.Lock()
		bundle.Restrictions = restrictions
		mu.Unlock()
	})

	wg.Wait()

	if len(diags) > 0 {
		bundle.Error = strings.Join(diags, "; ")
	}

	return bundle
}

// transportOptions dispatches on the requested mode. Rail and road modes
// are served from the train dataset; flights hit the flight-offers category.
func (a *Aggregator) transportOptions(ctx context.Context, q Query, travelers int, record func(string, error)) []types.TransportOption {
	if strings.EqualFold(q.TransportMode, "flight") {
		fq := provider.FlightQuery{
			Origin:        a.resolver.AirportCode(q.Source),
			Destination:   a.resolver.AirportCode(q.Destination),
			DepartureDate: q.StartDate,
			ReturnDate:    q.EndDate,
			Adults:        travelers,
		}

		resp, err := a.api.Flights(ctx, fq)
		if err != nil {
			record("transport", err)
			a.metrics.IncMockFallbacks(string(provider.CategoryFlights))
			resp, _ = a.fallback.Flights(ctx, fq)
		}
		return normalizeFlights(resp, travelers)
	}

	tq := provider.TrainQuery{
		OriginCode:      a.resolver.StationCode(ctx, q.Source),
		DestinationCode: a.resolver.StationCode(ctx, q.Destination),
		Date:            q.StartDate,
		Passengers:      travelers,
	}

	resp, err := a.api.Trains(ctx, tq)
	if err != nil {
		record("transport", err)
		a.metrics.IncMockFallbacks(string(provider.CategoryTrains))
		resp, _ = a.fallback.Trains(ctx, tq)
	}
	return normalizeTrains(resp, travelers)
}

func (a *Aggregator) hotels(ctx context.Context, q Query, travelers int, record func(string, error)) []types.Hotel {
	hq := provider.HotelQuery{
		CityCode:     a.resolver.CityCode(q.Destination),
		CheckInDate:  q.StartDate,
		CheckOutDate: q.EndDate,
		Adults:       travelers,
		Rooms:        1,
	}

	resp, err := a.api.Hotels(ctx, hq)
	if err != nil {
		record("hotels", err)
		a.metrics.IncMockFallbacks(string(provider.CategoryHotels))
		resp, _ = a.fallback.Hotels(ctx, hq)
	}
	return normalizeHotels(resp)
}

// pointsOfInterest requires a known coordinate for the destination; without
// one the section is simply empty, which is not an error.
func (a *Aggregator) pointsOfInterest(ctx context.Context, q Query, record func(string, error)) []types.PointOfInterest {
	geo, ok := a.resolver.Coordinates(q.Destination)
	if !ok {
		a.logger.Info("no coordinates known, skipping points of interest", "destination", q.Destination)
		return []types.PointOfInterest{}
	}

	pq := provider.POIQuery{
		Latitude:   geo.Latitude,
		Longitude:  geo.Longitude,
		RadiusKM:   poiRadiusKM,
		Categories: q.Interests,
	}

	resp, err := a.api.PointsOfInterest(ctx, pq)
	if err != nil {
		record("pointsOfInterest", err)
		a.metrics.IncMockFallbacks(string(provider.CategoryPOI))
		resp, _ = a.fallback.PointsOfInterest(ctx, pq)
	}
	return normalizePOIs(resp)
}

// restrictions short-circuits same-country travel with canned text; only
// international pairs reach the restrictions category.
func (a *Aggregator) restrictions(ctx context.Context, q Query, record func(string, error)) string {
	originCountry := a.resolver.Country(q.Source)
	destCountry := a.resolver.Country(q.Destination)

	if originCountry == destCountry {
		return provider.DomesticRestrictionsText
	}

	resp, err := a.api.Restrictions(ctx, originCountry, destCountry)
	if err != nil {
		record("restrictions", err)
		a.metrics.IncMockFallbacks(string(provider.CategoryRestrictions))
		resp, _ = a.fallback.Restrictions(ctx, originCountry, destCountry)
	}

	if resp == nil || resp.Data.Restrictions == "" {
		return noRestrictionsText
	}
	return resp.Data.Restrictions
}
