package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jashwanth-cse/Dream-Destiny/internal/obs"
	"github.com/jashwanth-cse/Dream-Destiny/internal/token"
)

// Endpoint paths, one fixed versioned shape per category.
const (
	pathFlightOffers = "/v2/shopping/flight-offers"
	pathHotelOffers  = "/v3/shopping/hotel-offers"
	pathPOIs         = "/v1/reference-data/locations/pois"
	pathLocations    = "/v1/reference-data/locations"
	pathRestrictions = "/v1/duty-of-care/diseases/covid19-area-report"
)

// Client issues authenticated requests to the upstream travel provider.
// When the token manager is degraded it serves mock data instead, through
// the same return path, so callers cannot tell the two modes apart.
type Client struct {
	baseURL    string
	tokens     *token.Manager
	httpClient *http.Client
	mock       *Mock
	metrics    *obs.Metrics
	logger     *slog.Logger
}

// NewClient creates a Client.
func NewClient(baseURL string, tokens *token.Manager, mock *Mock, timeout time.Duration, metrics *obs.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
		mock:       mock,
		metrics:    metrics,
		logger:     logger,
	}
}

// Flights searches flight offers.
func (c *Client) Flights(ctx context.Context, q FlightQuery) (*FlightOffersResponse, error) {
	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.DepartureDate)
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("max", "10")
	if q.ReturnDate != "" {
		params.Set("returnDate", q.ReturnDate)
	}

	var out FlightOffersResponse
	if err := c.call(ctx, CategoryFlights, pathFlightOffers, params, &out); err != nil {
		if errors.Is(err, token.ErrDegraded) {
			return c.mock.Flights(ctx, q)
		}
		return nil, err
	}
	return &out, nil
}

// Trains always serves mock data: the upstream has no Indian rail coverage,
// so this is a coverage gap rather than a fallback.
func (c *Client) Trains(ctx context.Context, q TrainQuery) (*TrainOffersResponse, error) {
	return c.mock.Trains(ctx, q)
}

// Hotels searches hotel offers.
func (c *Client) Hotels(ctx context.Context, q HotelQuery) (*HotelOffersResponse, error) {
	params := url.Values{}
	params.Set("cityCode", q.CityCode)
	params.Set("checkInDate", q.CheckInDate)
	params.Set("checkOutDate", q.CheckOutDate)
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("rooms", strconv.Itoa(q.Rooms))
	params.Set("max", "10")

	var out HotelOffersResponse
	if err := c.call(ctx, CategoryHotels, pathHotelOffers, params, &out); err != nil {
		if errors.Is(err, token.ErrDegraded) {
			return c.mock.Hotels(ctx, q)
		}
		return nil, err
	}
	return &out, nil
}

// PointsOfInterest searches attractions around a coordinate.
func (c *Client) PointsOfInterest(ctx context.Context, q POIQuery) (*POIResponse, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(q.Latitude, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(q.Longitude, 'f', 4, 64))
	params.Set("radius", strconv.Itoa(q.RadiusKM))
	params.Set("radiusUnit", "KM")
	if len(q.Categories) > 0 {
		params.Set("categories", strings.Join(q.Categories, ","))
	}

	var out POIResponse
	if err := c.call(ctx, CategoryPOI, pathPOIs, params, &out); err != nil {
		if errors.Is(err, token.ErrDegraded) {
			return c.mock.PointsOfInterest(ctx, q)
		}
		return nil, err
	}
	return &out, nil
}

// Locations searches location candidates by free-text name.
func (c *Client) Locations(ctx context.Context, name string) (*LocationsResponse, error) {
	params := url.Values{}
	params.Set("keyword", name)
	params.Set("subType", "CITY,AIRPORT")

	var out LocationsResponse
	if err := c.call(ctx, CategoryNameSearch, pathLocations, params, &out); err != nil {
		if errors.Is(err, token.ErrDegraded) {
			return c.mock.Locations(ctx, name)
		}
		return nil, err
	}
	return &out, nil
}

// Restrictions fetches travel restriction information for the destination
// country.
func (c *Client) Restrictions(ctx context.Context, originCountry, destCountry string) (*RestrictionsResponse, error) {
	params := url.Values{}
	params.Set("countryCode", destCountry)

	var out RestrictionsResponse
	if err := c.call(ctx, CategoryRestrictions, pathRestrictions, params, &out); err != nil {
		if errors.Is(err, token.ErrDegraded) {
			return c.mock.Restrictions(ctx, originCountry, destCountry)
		}
		return nil, err
	}
	return &out, nil
}

// call performs one authenticated GET and decodes the JSON body into out.
// Failures come back as *Error with a classified kind, except the degraded
// token state which surfaces as token.ErrDegraded for the mock switch.
func (c *Client) call(ctx context.Context, category Category, path string, params url.Values, out any) error {
	tok, err := c.tokens.Token(ctx)
	if err != nil {
		if errors.Is(err, token.ErrDegraded) {
			c.metrics.IncMockFallbacks(string(category))
			return err
		}
		return &Error{Category: category, Kind: KindTransport, Message: err.Error()}
	}

	u := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &Error{Category: category, Kind: KindTransport, Message: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.IncProviderErrors(string(category))
		return classifyTransport(category, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.IncProviderErrors(string(category))
		return classifyStatus(category, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.metrics.IncProviderErrors(string(category))
		return &Error{Category: category, Kind: KindBadResponse, Message: fmt.Sprintf("failed to parse response: %v", err)}
	}

	return nil
}

func classifyTransport(category Category, err error) *Error {
	kind := KindTransport
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		kind = KindTimeout
	} else if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}
	return &Error{Category: category, Kind: kind, Message: err.Error()}
}

func classifyStatus(category Category, resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))

	kind := KindTransport
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		kind = KindRateLimited
	case http.StatusForbidden:
		kind = KindForbidden
	}

	return &Error{
		Category: category,
		Kind:     kind,
		Message:  fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
	}
}
