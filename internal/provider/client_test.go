package provider_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jashwanth-cse/Dream-Destiny/internal/obs"
	"github.com/jashwanth-cse/Dream-Destiny/internal/provider"
	"github.com/jashwanth-cse/Dream-Destiny/internal/token"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// newUpstream returns a fake provider with a working identity endpoint and
// the given handler for everything else.
func newUpstream(t *testing.T, api http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"access_token":"tok","expires_in":3600}`)); err != nil {
			t.Errorf("failed to write token: %v", err)
		}
	})
	mux.HandleFunc("/", api)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server, apiKey, apiSecret string) *provider.Client {
	t.Helper()
	metrics := obs.NewMetrics()
	tokens := token.NewManager(srv.URL+"/v1/security/oauth2/token", apiKey, apiSecret, time.Second, metrics, testLogger())
	return provider.NewClient(srv.URL, tokens, provider.NewMock(), time.Second, metrics, testLogger())
}

func TestClient_FlightsSuccess(t *testing.T) {
	var gotAuth, gotOrigin string
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotOrigin = r.URL.Query().Get("originLocationCode")
		w.Header().Set("Content-Type", "application/json")
		body := `{"data":[{"id":"9","itineraries":[{"duration":"PT2H","segments":[` +
			`{"departure":{"iataCode":"MAA","at":"2025-08-22T08:00:00"},` +
			`"arrival":{"iataCode":"BOM","at":"2025-08-22T10:00:00"},` +
			`"carrierCode":"6E","number":"101"}]}],` +
			`"price":{"currency":"INR","total":"5400.00"}}],"meta":{"count":1}}`
		if _, err := w.Write([]byte(body)); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	})

	c := newClient(t, srv, "key", "secret")

	resp, err := c.Flights(context.Background(), provider.FlightQuery{
		Origin: "MAA", Destination: "BOM", DepartureDate: "2025-08-22", Adults: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer tok" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotOrigin != "MAA" {
		t.Errorf("expected originLocationCode MAA, got %q", gotOrigin)
	}
	if len(resp.Data) != 1 || resp.Data[0].Price.Total != "5400.00" {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestClient_FailureKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   provider.FailureKind
	}{
		{"rate limited", http.StatusTooManyRequests, "slow down", provider.KindRateLimited},
		{"forbidden", http.StatusForbidden, "no subscription", provider.KindForbidden},
		{"server error", http.StatusInternalServerError, "boom", provider.KindTransport},
		{"bad response", http.StatusOK, "not json at all", provider.KindBadResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if _, err := w.Write([]byte(tt.body)); err != nil {
					t.Errorf("failed to write response: %v", err)
				}
			})

			c := newClient(t, srv, "key", "secret")

			_, err := c.Hotels(context.Background(), provider.HotelQuery{
				CityCode: "MAA", CheckInDate: "2025-08-22", CheckOutDate: "2025-08-24", Adults: 2, Rooms: 1,
			})
			if err == nil {
				t.Fatal("expected error")
			}

			var perr *provider.Error
			if !errors.As(err, &perr) {
				t.Fatalf("expected *provider.Error, got %T", err)
			}
			if perr.Kind != tt.want {
				t.Errorf("expected kind %s, got %s", tt.want, perr.Kind)
			}
			if perr.Category != provider.CategoryHotels {
				t.Errorf("expected hotels category, got %s", perr.Category)
			}
		})
	}
}

func TestClient_TimeoutKind(t *testing.T) {
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	metrics := obs.NewMetrics()
	tokens := token.NewManager(srv.URL+"/v1/security/oauth2/token", "key", "secret", time.Second, metrics, testLogger())
	c := provider.NewClient(srv.URL, tokens, provider.NewMock(), 50*time.Millisecond, metrics, testLogger())

	_, err := c.PointsOfInterest(context.Background(), provider.POIQuery{Latitude: 13.08, Longitude: 80.27, RadiusKM: 10})
	if err == nil {
		t.Fatal("expected timeout error")
	}

	var perr *provider.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *provider.Error, got %T", err)
	}
	if perr.Kind != provider.KindTimeout {
		t.Errorf("expected timeout kind, got %s", perr.Kind)
	}
}

func TestClient_DegradedServesMockData(t *testing.T) {
	var apiCalls int
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		http.Error(w, "should not be reached", http.StatusInternalServerError)
	})

	// No credentials: the token manager starts degraded.
	c := newClient(t, srv, "", "")

	resp, err := c.Hotels(context.Background(), provider.HotelQuery{
		CityCode: "MAA", CheckInDate: "2025-08-22", CheckOutDate: "2025-08-24", Adults: 4, Rooms: 1,
	})
	if err != nil {
		t.Fatalf("expected mock substitution, got error: %v", err)
	}

	if apiCalls != 0 {
		t.Errorf("expected no upstream calls in degraded mode, got %d", apiCalls)
	}
	if len(resp.Data) != 1 || resp.Data[0].Hotel.Name != "The Residency Towers" {
		t.Errorf("expected mock hotel payload, got %+v", resp)
	}
	if resp.Data[0].Offers[0].CheckInDate != "2025-08-22" {
		t.Errorf("expected query dates echoed into mock offer, got %q", resp.Data[0].Offers[0].CheckInDate)
	}
}

func TestClient_TrainsAlwaysMock(t *testing.T) {
	var apiCalls int
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
	})

	// Fully configured client: trains still never touch the network.
	c := newClient(t, srv, "key", "secret")

	resp, err := c.Trains(context.Background(), provider.TrainQuery{
		OriginCode: "RPM", DestinationCode: "MAS", Date: "2025-08-22", Passengers: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if apiCalls != 0 {
		t.Errorf("expected no upstream calls for trains, got %d", apiCalls)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 corridor trains, got %d", len(resp.Data))
	}
	if resp.Data[0].TrainName != "Anantapuri Express" {
		t.Errorf("expected corridor dataset, got %q", resp.Data[0].TrainName)
	}
}
