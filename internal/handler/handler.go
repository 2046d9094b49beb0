// Package handler exposes the travel-data HTTP API.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jashwanth-cse/Dream-Destiny/internal/middleware"
	"github.com/jashwanth-cse/Dream-Destiny/internal/obs"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel/cache"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel/ratelimit"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel/types"
)

const dateLayout = "2006-01-02"

var transportModes = map[string]bool{
	"flight": true,
	"train":  true,
	"bus":    true,
	"car":    true,
}

// Handler serves GET /travel-data.
type Handler struct {
	agg     *travel.Aggregator
	cache   *cache.Cache
	limiter *ratelimit.Limiter
	metrics *obs.Metrics
	logger  *slog.Logger
}

// New creates a Handler over an aggregator, cache and rate limiter.
func New(agg *travel.Aggregator, c *cache.Cache, l *ratelimit.Limiter, m *obs.Metrics, logger *slog.Logger) *Handler {
	return &Handler{agg: agg, cache: c, limiter: l, metrics: m, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}

	ip := middleware.ClientIP(r)
	if !h.limiter.Allow(ip) {
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
		return
	}

	q, err := parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.metrics.IncRequests()

	key := cache.Key(q)
	bundle, hit, err := h.cache.GetOrFetch(r.Context(), key, func() *types.Bundle {
		return h.agg.TravelData(r.Context(), q)
	})
	if err != nil {
		// Only happens when the caller went away while waiting on an
		// in-flight aggregation.
		h.logger.Warn("request abandoned", "error", err)
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
		return
	}
	if hit {
		h.metrics.IncCacheHits()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(bundle); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}

// parseQuery validates the request parameters and builds the travel query.
func parseQuery(r *http.Request) (travel.Query, error) {
	params := r.URL.Query()

	q := travel.Query{
		Source:        strings.TrimSpace(params.Get("source")),
		Destination:   strings.TrimSpace(params.Get("destination")),
		StartDate:     strings.TrimSpace(params.Get("startDate")),
		EndDate:       strings.TrimSpace(params.Get("endDate")),
		TransportMode: strings.ToLower(strings.TrimSpace(params.Get("transportMode"))),
		Travelers:     1,
	}

	if q.Source == "" {
		return q, errBadParam("source is required")
	}
	if q.Destination == "" {
		return q, errBadParam("destination is required")
	}

	if q.StartDate == "" {
		q.StartDate = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, q.StartDate); err != nil {
		return q, errBadParam("startDate must be YYYY-MM-DD")
	}
	if q.EndDate == "" {
		q.EndDate = q.StartDate
	} else if _, err := time.Parse(dateLayout, q.EndDate); err != nil {
		return q, errBadParam("endDate must be YYYY-MM-DD")
	}
	if q.EndDate < q.StartDate {
		return q, errBadParam("endDate must not be before startDate")
	}

	if q.TransportMode == "" {
		q.TransportMode = "train"
	} else if !transportModes[q.TransportMode] {
		return q, errBadParam("transportMode must be one of flight, train, bus, car")
	}

	if raw := params.Get("travelers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return q, errBadParam("travelers must be a positive integer")
		}
		q.Travelers = n
	}

	if raw := params.Get("interests"); raw != "" {
		for _, interest := range strings.Split(raw, ",") {
			if interest = strings.TrimSpace(interest); interest != "" {
				q.Interests = append(q.Interests, interest)
			}
		}
	}

	return q, nil
}

type errBadParam string

func (e errBadParam) Error() string { return string(e) }

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
