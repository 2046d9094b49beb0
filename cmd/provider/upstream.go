package main

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jashwanth-cse/Dream-Destiny/internal/provider"
)

// Upstream serves provider-shaped responses from the mock fixtures. Requests
// must carry the Bearer token issued by TokenHandler; latency and failures
// are injected before every category response.
type Upstream struct {
	mock     *provider.Mock
	latency  time.Duration
	failRate float64
	logger   *slog.Logger
}

const fakeToken = "fake-upstream-token"

// NewUpstream creates an Upstream with the given base latency and failure
// probability.
func NewUpstream(latency time.Duration, failRate float64, logger *slog.Logger) *Upstream {
	return &Upstream{
		mock:     provider.NewMock(),
		latency:  latency,
		failRate: failRate,
		logger:   logger,
	}
}

// TokenHandler issues a client-credentials token for any non-empty client.
func (u *Upstream) TokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	if r.PostForm.Get("grant_type") != "client_credentials" || r.PostForm.Get("client_id") == "" {
		http.Error(w, `{"error":"invalid_client"}`, http.StatusUnauthorized)
		return
	}

	u.respond(w, map[string]any{
		"access_token": fakeToken,
		"token_type":   "Bearer",
		"expires_in":   1799,
	})
}

// FlightsHandler serves flight offers.
func (u *Upstream) FlightsHandler(w http.ResponseWriter, r *http.Request) {
	if !u.admit(w, r) {
		return
	}

	adults, _ := strconv.Atoi(r.URL.Query().Get("adults"))
	resp, _ := u.mock.Flights(r.Context(), provider.FlightQuery{
		Origin:        r.URL.Query().Get("originLocationCode"),
		Destination:   r.URL.Query().Get("destinationLocationCode"),
		DepartureDate: r.URL.Query().Get("departureDate"),
		ReturnDate:    r.URL.Query().Get("returnDate"),
		Adults:        adults,
	})
	u.respond(w, resp)
}

// HotelsHandler serves hotel offers.
func (u *Upstream) HotelsHandler(w http.ResponseWriter, r *http.Request) {
	if !u.admit(w, r) {
		return
	}

	adults, _ := strconv.Atoi(r.URL.Query().Get("adults"))
	rooms, _ := strconv.Atoi(r.URL.Query().Get("rooms"))
	resp, _ := u.mock.Hotels(r.Context(), provider.HotelQuery{
		CityCode:     r.URL.Query().Get("cityCode"),
		CheckInDate:  r.URL.Query().Get("checkInDate"),
		CheckOutDate: r.URL.Query().Get("checkOutDate"),
		Adults:       adults,
		Rooms:        rooms,
	})
	u.respond(w, resp)
}

// POIHandler serves points of interest.
func (u *Upstream) POIHandler(w http.ResponseWriter, r *http.Request) {
	if !u.admit(w, r) {
		return
	}

	lat, _ := strconv.ParseFloat(r.URL.Query().Get("latitude"), 64)
	lon, _ := strconv.ParseFloat(r.URL.Query().Get("longitude"), 64)
	radius, _ := strconv.Atoi(r.URL.Query().Get("radius"))

	var categories []string
	if raw := r.URL.Query().Get("categories"); raw != "" {
		categories = strings.Split(raw, ",")
	}

	resp, _ := u.mock.PointsOfInterest(r.Context(), provider.POIQuery{
		Latitude:   lat,
		Longitude:  lon,
		RadiusKM:   radius,
		Categories: categories,
	})
	u.respond(w, resp)
}

// LocationsHandler serves location search results.
func (u *Upstream) LocationsHandler(w http.ResponseWriter, r *http.Request) {
	if !u.admit(w, r) {
		return
	}

	resp, _ := u.mock.Locations(r.Context(), r.URL.Query().Get("keyword"))
	u.respond(w, resp)
}

// RestrictionsHandler serves travel restriction reports.
func (u *Upstream) RestrictionsHandler(w http.ResponseWriter, r *http.Request) {
	if !u.admit(w, r) {
		return
	}

	resp, _ := u.mock.Restrictions(r.Context(), "IN", r.URL.Query().Get("countryCode"))
	u.respond(w, resp)
}

// admit checks auth, applies latency and rolls for an injected failure.
// It reports whether the request should proceed.
func (u *Upstream) admit(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer "+fakeToken {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
		return false
	}

	if u.latency > 0 {
		select {
		case <-time.After(u.latency):
		case <-r.Context().Done():
			return false
		}
	}

	// The global source is safe for concurrent handlers.
	if u.failRate > 0 && rand.Float64() < u.failRate {
		http.Error(w, `{"error":"service unavailable"}`, http.StatusServiceUnavailable)
		return false
	}

	return true
}

func (u *Upstream) respond(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		u.logger.Error("failed to encode response", "error", err)
	}
}
