// Package resolve maps free-text place names to provider-specific codes.
// Resolution is best effort but total: every name resolves to some code.
package resolve

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/jashwanth-cse/Dream-Destiny/internal/provider"
)

// LocationSearcher is the remote name-search tier. The provider client
// satisfies it.
type LocationSearcher interface {
	Locations(ctx context.Context, name string) (*provider.LocationsResponse, error)
}

// Resolver resolves station codes through a tiered strategy: exact table
// lookup, containment match, suffix-stripped lookup, remote search, then a
// deterministic fallback. It also serves the smaller static lookups
// (airports, hotel city codes, coordinates, countries).
type Resolver struct {
	stations    map[string]string
	stationKeys []string // sorted; keeps the containment tie-break deterministic
	searcher    LocationSearcher
	logger      *slog.Logger
}

// NewResolver creates a Resolver. searcher may be nil, in which case the
// remote tier is skipped.
func NewResolver(searcher LocationSearcher, logger *slog.Logger) *Resolver {
	keys := make([]string, 0, len(stationCodes))
	for k := range stationCodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &Resolver{
		stations:    stationCodes,
		stationKeys: keys,
		searcher:    searcher,
		logger:      logger,
	}
}

// qualifier suffixes dropped before the retry lookup.
var stationSuffixes = []string{" junction", " central", " city"}

// StationCode resolves a station name to its provider code. It never fails:
// unknown names fall back to the upper-cased first three characters.
func (r *Resolver) StationCode(ctx context.Context, name string) string {
	key := strings.ToLower(strings.TrimSpace(name))

	if code, ok := r.stations[key]; ok {
		return code
	}

	// Containment match in sorted key order. The order is deterministic but
	// carries no semantic meaning; it only breaks ties.
	for _, k := range r.stationKeys {
		if strings.Contains(key, k) || strings.Contains(k, key) {
			code := r.stations[k]
			r.logger.Info("resolved station via partial match", "name", name, "match", k, "code", code)
			return code
		}
	}

	clean := key
	for _, suffix := range stationSuffixes {
		clean = strings.ReplaceAll(clean, suffix, "")
	}
	if code, ok := r.stations[clean]; ok {
		return code
	}

	if r.searcher != nil {
		if resp, err := r.searcher.Locations(ctx, name); err == nil && len(resp.Data) > 0 {
			if code := resp.Data[0].Code(); code != "" {
				r.logger.Info("resolved station via remote search", "name", name, "code", code)
				return code
			}
		}
	}

	fallback := fallbackCode(name)
	r.logger.Warn("no station code found, using fallback", "name", name, "code", fallback)
	return fallback
}

// fallbackCode is the guaranteed last tier: the first three characters of
// the name, upper-cased.
func fallbackCode(name string) string {
	trimmed := []rune(strings.TrimSpace(name))
	if len(trimmed) > 3 {
		trimmed = trimmed[:3]
	}
	return strings.ToUpper(string(trimmed))
}

// AirportCode returns the IATA airport code for a city, defaulting to
// Chennai when the city is unknown.
func (r *Resolver) AirportCode(city string) string {
	if code, ok := airportCodes[strings.ToLower(strings.TrimSpace(city))]; ok {
		return code
	}
	return "MAA"
}

// CityCode returns the hotel-search city code, defaulting to Chennai.
func (r *Resolver) CityCode(city string) string {
	if code, ok := cityCodes[strings.ToLower(strings.TrimSpace(city))]; ok {
		return code
	}
	return "MAA"
}

// Coordinates returns the coordinate pair for a city. ok is false when the
// city is not in the table; callers leave points of interest empty then.
func (r *Resolver) Coordinates(city string) (provider.Geo, bool) {
	geo, ok := cityCoordinates[strings.ToLower(strings.TrimSpace(city))]
	return geo, ok
}

// Country returns the ISO country code for a place, defaulting to India.
func (r *Resolver) Country(place string) string {
	if c, ok := placeCountries[strings.ToLower(strings.TrimSpace(place))]; ok {
		return c
	}
	return "IN"
}
