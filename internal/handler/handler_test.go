package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jashwanth-cse/Dream-Destiny/internal/obs"
	"github.com/jashwanth-cse/Dream-Destiny/internal/provider"
	"github.com/jashwanth-cse/Dream-Destiny/internal/resolve"
	"github.com/jashwanth-cse/Dream-Destiny/internal/token"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel/cache"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel/ratelimit"
	"github.com/jashwanth-cse/Dream-Destiny/internal/travel/types"
)

// newTestHandler wires a handler over a client running without credentials,
// so every upstream category serves mock data.
func newTestHandler(t *testing.T, perMinute int) *Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := obs.NewMetrics()
	tokens := token.NewManager("http://localhost/token", "", "", time.Second, metrics, logger)
	mock := provider.NewMock()
	client := provider.NewClient("http://localhost", tokens, mock, time.Second, metrics, logger)
	resolver := resolve.NewResolver(client, logger)
	agg := travel.NewAggregator(client, mock, resolver, 5*time.Second, metrics, logger)

	c := cache.NewCache(time.Minute)
	t.Cleanup(c.Close)
	l := ratelimit.NewLimiter(perMinute)
	t.Cleanup(l.Close)

	return New(agg, c, l, metrics, logger)
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = "10.1.2.3:4444"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServeHTTP_ReturnsBundle(t *testing.T) {
	h := newTestHandler(t, 100)

	rec := get(h, "/travel-data?source=Rajapalayam&destination=Chennai&startDate=2025-08-22&endDate=2025-08-24&transportMode=train&travelers=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var bundle types.Bundle
	if err := json.Unmarshal(rec.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("decode bundle: %v", err)
	}
	if len(bundle.TransportOptions) == 0 {
		t.Error("bundle has no transport options")
	}
	if len(bundle.Hotels) == 0 {
		t.Error("bundle has no hotels")
	}
	if bundle.Restrictions == "" {
		t.Error("bundle has no restrictions text")
	}
	if bundle.Error != "" {
		t.Errorf("unexpected bundle error %q", bundle.Error)
	}
}

func TestServeHTTP_DefaultsApplied(t *testing.T) {
	h := newTestHandler(t, 100)

	// No dates, mode or traveler count: today, train, one traveler.
	rec := get(h, "/travel-data?source=Rajapalayam&destination=Chennai")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var bundle types.Bundle
	if err := json.Unmarshal(rec.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("decode bundle: %v", err)
	}
	if len(bundle.TransportOptions) == 0 {
		t.Fatal("bundle has no transport options")
	}
	first := bundle.TransportOptions[0]
	if first.Mode != "Train" {
		t.Errorf("default mode = %q, want Train", first.Mode)
	}
	today := time.Now().Format("2006-01-02")
	if !strings.HasPrefix(first.Departure, today) {
		t.Errorf("departure %q does not default to today %s", first.Departure, today)
	}
}

func TestServeHTTP_ValidationErrors(t *testing.T) {
	h := newTestHandler(t, 1000)

	tests := []struct {
		name   string
		target string
	}{
		{"missing source", "/travel-data?destination=Chennai"},
		{"missing destination", "/travel-data?source=Rajapalayam"},
		{"bad start date", "/travel-data?source=a&destination=b&startDate=22-08-2025"},
		{"bad end date", "/travel-data?source=a&destination=b&startDate=2025-08-22&endDate=soon"},
		{"end before start", "/travel-data?source=a&destination=b&startDate=2025-08-24&endDate=2025-08-22"},
		{"unknown mode", "/travel-data?source=a&destination=b&transportMode=boat"},
		{"zero travelers", "/travel-data?source=a&destination=b&travelers=0"},
		{"non-numeric travelers", "/travel-data?source=a&destination=b&travelers=four"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(h, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body["error"] == "" {
				t.Error("error body has no message")
			}
		})
	}
}

func TestServeHTTP_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, 100)

	req := httptest.NewRequest(http.MethodPost, "/travel-data?source=a&destination=b", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestServeHTTP_RateLimited(t *testing.T) {
	h := newTestHandler(t, 1)

	target := "/travel-data?source=Rajapalayam&destination=Chennai&startDate=2025-08-22"
	if rec := get(h, target); rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}
	rec := get(h, target)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}

	// A different client is not affected.
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = "10.9.9.9:1234"
	other := httptest.NewRecorder()
	h.ServeHTTP(other, req)
	if other.Code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", other.Code)
	}
}

func TestParseQuery_Interests(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/travel-data?source=a&destination=b&interests=beaches,%20temples,,museums", nil)
	q, err := parseQuery(req)
	if err != nil {
		t.Fatalf("parseQuery: %v", err)
	}
	want := []string{"beaches", "temples", "museums"}
	if len(q.Interests) != len(want) {
		t.Fatalf("interests = %v, want %v", q.Interests, want)
	}
	for i := range want {
		if q.Interests[i] != want[i] {
			t.Errorf("interests[%d] = %q, want %q", i, q.Interests[i], want[i])
		}
	}
}
